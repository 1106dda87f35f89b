package contract

import (
	"context"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

// ISauceCache defines read-through caching for sauces.
// A miss is reported as (nil, false, nil).
type ISauceCache interface {
	GetSauce(ctx context.Context, id string) (*entity.Sauce, bool, error)
	SetSauce(ctx context.Context, sauce *entity.Sauce) error
	InvalidateSauce(ctx context.Context, id string) error

	GetSauceList(ctx context.Context) ([]*entity.Sauce, bool, error)
	SetSauceList(ctx context.Context, sauces []*entity.Sauce) error
	InvalidateSauceList(ctx context.Context) error
}
