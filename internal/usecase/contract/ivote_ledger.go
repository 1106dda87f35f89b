package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

type IVoteLedger interface {
	ApplyVote(ctx context.Context, sauceID, userID string, direction entity.VoteDirection) (*entity.VoteOutcome, error)
	GetVoteState(ctx context.Context, sauceID, userID string) (entity.VoteState, error)
}

// IVoteRecorder receives the result of every ApplyVote call.
type IVoteRecorder interface {
	ObserveVote(direction entity.VoteDirection, result string, seconds float64)
}
