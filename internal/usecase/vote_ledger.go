package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// Results reported to the vote recorder.
const (
	voteResultApplied  = "applied"
	voteResultRejected = "rejected"
	voteResultNotFound = "not_found"
	voteResultError    = "error"
)

func sauceLockKey(sauceID string) string { return "sauce:" + sauceID }

// VoteLedger keeps each user's like/dislike on a sauce and the derived counters.
//
// A user moves between liked, disliked and no vote only through "none": a
// like on a disliked sauce (or the reverse) is rejected and the client has to
// cancel the existing vote first.
type VoteLedger struct {
	sauceRepo    contract.ISauceRepository
	locker       contract.IItemLocker
	cache        contract.ISauceCache
	recorder     usecasecontract.IVoteRecorder
	logger       usecasecontract.IAppLogger
	maxConflicts int
}

var _ usecasecontract.IVoteLedger = (*VoteLedger)(nil)

// NewVoteLedger creates and returns a new VoteLedger instance.
// maxConflicts bounds how many times a lost version race is recomputed.
func NewVoteLedger(sauceRepo contract.ISauceRepository, locker contract.IItemLocker, logger usecasecontract.IAppLogger, maxConflicts int) *VoteLedger {
	if maxConflicts < 1 {
		maxConflicts = 1
	}
	return &VoteLedger{
		sauceRepo:    sauceRepo,
		locker:       locker,
		logger:       logger,
		maxConflicts: maxConflicts,
	}
}

// SetSauceCache wires the cache whose entries are dropped after each committed vote.
func (l *VoteLedger) SetSauceCache(cache contract.ISauceCache) {
	l.cache = cache
}

func (l *VoteLedger) SetRecorder(recorder usecasecontract.IVoteRecorder) {
	l.recorder = recorder
}

// ApplyVote sets userID's vote on sauceID to direction.
//
// It returns ErrSauceNotFound, a *VoteRejectedError when the transition is not
// legal from the current state, or a *StorageError. Nothing is written unless
// the whole new state is committed.
func (l *VoteLedger) ApplyVote(ctx context.Context, sauceID, userID string, direction entity.VoteDirection) (outcome *entity.VoteOutcome, err error) {
	start := time.Now()
	defer func() {
		l.observe(direction, err, time.Since(start))
	}()

	if userID == "" {
		return nil, ErrInvalidVoter
	}
	if !direction.Valid() {
		return nil, rejectVote(ReasonInvalidDirection)
	}

	unlock, err := l.locker.Lock(ctx, sauceLockKey(sauceID))
	if err != nil {
		l.logger.Errorf("failed to lock sauce %s: %v", sauceID, err)
		return nil, &StorageError{Op: "lock sauce", Err: err}
	}
	defer unlock()

	for attempt := 1; ; attempt++ {
		current, err := l.sauceRepo.GetSauceByID(ctx, sauceID)
		if err != nil {
			if errors.Is(err, contract.ErrNotFound) {
				return nil, ErrSauceNotFound
			}
			l.logger.Errorf("failed to load sauce %s: %v", sauceID, err)
			return nil, &StorageError{Op: "load sauce", Err: err}
		}

		next, message, err := transition(current, userID, direction)
		if err != nil {
			return nil, err
		}

		err = l.sauceRepo.SaveVotes(ctx, next)
		if err == nil {
			l.invalidate(ctx, sauceID)
			outcome = &entity.VoteOutcome{Direction: direction, Message: message, Sauce: next}
			l.logger.Debugf("vote on sauce %s by %s: %s", sauceID, userID, describeOutcome(outcome))
			return outcome, nil
		}
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrSauceNotFound
		}
		if errors.Is(err, contract.ErrVersionConflict) && attempt < l.maxConflicts {
			l.logger.Debugf("version conflict on sauce %s, recomputing (attempt %d)", sauceID, attempt)
			continue
		}
		l.logger.Errorf("failed to save votes on sauce %s: %v", sauceID, err)
		return nil, &StorageError{Op: "save votes", Err: err}
	}
}

// GetVoteState returns the vote userID currently holds on sauceID.
func (l *VoteLedger) GetVoteState(ctx context.Context, sauceID, userID string) (entity.VoteState, error) {
	sauce, err := l.sauceRepo.GetSauceByID(ctx, sauceID)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return "", ErrSauceNotFound
		}
		return "", &StorageError{Op: "load sauce", Err: err}
	}
	return entity.StateOf(sauce, userID), nil
}

// transition computes the state after applying direction for userID to a copy
// of current. current itself is never modified.
func transition(current *entity.Sauce, userID string, direction entity.VoteDirection) (*entity.Sauce, string, error) {
	next := current.Clone()
	state := entity.StateOf(current, userID)

	var message string
	switch direction {
	case entity.VoteLike:
		switch state {
		case entity.VoteStateLiked:
			return nil, "", rejectVote(ReasonAlreadyLiked)
		case entity.VoteStateDisliked:
			return nil, "", rejectVote(ReasonOppositeVote)
		}
		next.UsersLiked.Add(userID)
		message = entity.VoteMessageLiked
	case entity.VoteDislike:
		switch state {
		case entity.VoteStateDisliked:
			return nil, "", rejectVote(ReasonAlreadyDisliked)
		case entity.VoteStateLiked:
			return nil, "", rejectVote(ReasonOppositeVote)
		}
		next.UsersDisliked.Add(userID)
		message = entity.VoteMessageDisliked
	case entity.VoteNone:
		switch state {
		case entity.VoteStateLiked:
			next.UsersLiked.Remove(userID)
			message = entity.VoteMessageUnliked
		case entity.VoteStateDisliked:
			next.UsersDisliked.Remove(userID)
			message = entity.VoteMessageUndisliked
		default:
			return nil, "", rejectVote(ReasonNoExistingVote)
		}
	default:
		return nil, "", rejectVote(ReasonInvalidDirection)
	}

	next.SyncCounters()
	return next, message, nil
}

func (l *VoteLedger) invalidate(ctx context.Context, sauceID string) {
	if l.cache == nil {
		return
	}
	if err := l.cache.InvalidateSauce(ctx, sauceID); err != nil {
		l.logger.Warnf("failed to invalidate cached sauce %s: %v", sauceID, err)
	}
	if err := l.cache.InvalidateSauceList(ctx); err != nil {
		l.logger.Warnf("failed to invalidate cached sauce list: %v", err)
	}
}

func (l *VoteLedger) observe(direction entity.VoteDirection, err error, elapsed time.Duration) {
	if l.recorder == nil {
		return
	}
	result := voteResultApplied
	switch {
	case err == nil:
	case errors.Is(err, ErrVoteRejected), errors.Is(err, ErrInvalidVoter):
		result = voteResultRejected
	case errors.Is(err, ErrSauceNotFound):
		result = voteResultNotFound
	default:
		result = voteResultError
	}
	l.recorder.ObserveVote(direction, result, elapsed.Seconds())
}

// describeOutcome renders an outcome for logs.
func describeOutcome(o *entity.VoteOutcome) string {
	return fmt.Sprintf("%s (likes=%d dislikes=%d)", o.Message, o.Sauce.Likes, o.Sauce.Dislikes)
}
