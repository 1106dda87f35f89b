package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

// IUserUseCase defines the interface for account operations.
type IUserUseCase interface {
	Signup(ctx context.Context, email, password string) (*entity.User, error)
	// Login returns the user id and a signed access token.
	Login(ctx context.Context, email, password string) (string, string, error)
	// Authenticate validates an access token and returns the user id it carries.
	Authenticate(ctx context.Context, accessToken string) (string, error)
}
