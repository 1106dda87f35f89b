package contract

import (
	"context"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUser returns ErrDuplicateKey when the email is already registered.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}
