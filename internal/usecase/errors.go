package usecase

import (
	"errors"
	"fmt"
)

// Errors returned to the transport layer. NotFound and rejection errors are
// expected outcomes; StorageError is the only one that signals a fault.
var (
	ErrSauceNotFound      = errors.New("sauce not found")
	ErrVoteRejected       = errors.New("vote rejected")
	ErrInvalidVoter       = errors.New("voter id is required")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
)

// Reasons attached to a VoteRejectedError.
const (
	ReasonAlreadyLiked     = "already liked"
	ReasonAlreadyDisliked  = "already disliked"
	ReasonOppositeVote     = "opposite vote exists"
	ReasonNoExistingVote   = "no existing vote"
	ReasonInvalidDirection = "invalid direction"
)

// VoteRejectedError reports a vote that is not a legal transition from the
// current state. It matches ErrVoteRejected with errors.Is.
type VoteRejectedError struct {
	Reason string
}

func (e *VoteRejectedError) Error() string {
	return fmt.Sprintf("vote rejected: %s", e.Reason)
}

func (e *VoteRejectedError) Is(target error) bool {
	return target == ErrVoteRejected
}

func rejectVote(reason string) error {
	return &VoteRejectedError{Reason: reason}
}

// StorageError wraps a persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageError reports whether err is or wraps a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
