package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	"github.com/mikiasgoitom/Piiquante/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the UserUsecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailSignup       bool
	SignupErr              error
	ShouldFailLogin        bool
	ShouldFailAuthenticate bool

	// Return values
	MockUser  entity.User
	MockToken string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Email: "test@example.com",
		},
		MockToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	if m.ShouldFailSignup {
		if m.SignupErr != nil {
			return nil, m.SignupErr
		}
		return nil, errors.New("user creation failed")
	}
	user := m.MockUser
	user.Email = email
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (string, string, error) {
	if m.ShouldFailLogin {
		return "", "", usecase.ErrInvalidCredentials
	}
	return m.MockUser.ID, m.MockToken, nil
}

// Authenticate accepts MockToken only.
func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (string, error) {
	if m.ShouldFailAuthenticate || accessToken != m.MockToken {
		return "", usecase.ErrInvalidCredentials
	}
	return m.MockUser.ID, nil
}
