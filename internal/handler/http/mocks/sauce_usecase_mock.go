package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// MockSauceUsecase is a testify mock of ISauceUseCase.
type MockSauceUsecase struct {
	mock.Mock
}

var _ usecasecontract.ISauceUseCase = (*MockSauceUsecase)(nil)

func (m *MockSauceUsecase) ListSauces(ctx context.Context) ([]*entity.Sauce, error) {
	args := m.Called(ctx)
	sauces, _ := args.Get(0).([]*entity.Sauce)
	return sauces, args.Error(1)
}

func (m *MockSauceUsecase) GetSauce(ctx context.Context, id string) (*entity.Sauce, error) {
	args := m.Called(ctx, id)
	sauce, _ := args.Get(0).(*entity.Sauce)
	return sauce, args.Error(1)
}

func (m *MockSauceUsecase) CreateSauce(ctx context.Context, ownerID string, details entity.SauceDetails) (*entity.Sauce, error) {
	args := m.Called(ctx, ownerID, details)
	sauce, _ := args.Get(0).(*entity.Sauce)
	return sauce, args.Error(1)
}

func (m *MockSauceUsecase) UpdateSauce(ctx context.Context, id, callerID string, details entity.SauceDetails) (*entity.Sauce, error) {
	args := m.Called(ctx, id, callerID, details)
	sauce, _ := args.Get(0).(*entity.Sauce)
	return sauce, args.Error(1)
}

func (m *MockSauceUsecase) DeleteSauce(ctx context.Context, id, callerID string) error {
	args := m.Called(ctx, id, callerID)
	return args.Error(0)
}
