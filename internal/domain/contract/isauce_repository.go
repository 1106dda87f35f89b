package contract

import (
	"context"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

// ISauceRepository defines the interface for sauce persistence.
type ISauceRepository interface {
	CreateSauce(ctx context.Context, sauce *entity.Sauce) error
	// GetSauceByID returns ErrNotFound when no sauce has the id.
	GetSauceByID(ctx context.Context, id string) (*entity.Sauce, error)
	GetSauces(ctx context.Context) ([]*entity.Sauce, error)
	// UpdateSauceDetails overwrites the descriptive fields only; vote state is untouched.
	UpdateSauceDetails(ctx context.Context, id string, details entity.SauceDetails) error
	DeleteSauce(ctx context.Context, id string) error
	// SaveVotes atomically writes counters and voter sets of sauce, provided the
	// stored version still equals sauce.Version. On success sauce.Version is
	// advanced. Returns ErrVersionConflict if another write won, ErrNotFound if
	// the sauce is gone.
	SaveVotes(ctx context.Context, sauce *entity.Sauce) error
}
