package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// MockVoteLedger is a testify mock of IVoteLedger.
type MockVoteLedger struct {
	mock.Mock
}

var _ usecasecontract.IVoteLedger = (*MockVoteLedger)(nil)

func (m *MockVoteLedger) ApplyVote(ctx context.Context, sauceID, userID string, direction entity.VoteDirection) (*entity.VoteOutcome, error) {
	args := m.Called(ctx, sauceID, userID, direction)
	outcome, _ := args.Get(0).(*entity.VoteOutcome)
	return outcome, args.Error(1)
}

func (m *MockVoteLedger) GetVoteState(ctx context.Context, sauceID, userID string) (entity.VoteState, error) {
	args := m.Called(ctx, sauceID, userID)
	return args.Get(0).(entity.VoteState), args.Error(1)
}
