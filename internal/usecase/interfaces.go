package usecase

import (
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
