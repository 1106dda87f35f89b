package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

type ISauceUseCase interface {
	ListSauces(ctx context.Context) ([]*entity.Sauce, error)
	GetSauce(ctx context.Context, id string) (*entity.Sauce, error)
	CreateSauce(ctx context.Context, ownerID string, details entity.SauceDetails) (*entity.Sauce, error)
	UpdateSauce(ctx context.Context, id, callerID string, details entity.SauceDetails) (*entity.Sauce, error)
	DeleteSauce(ctx context.Context, id, callerID string) error
}
