package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

// SauceUsecase implements the sauce catalogue operations.
type SauceUsecase struct {
	sauceRepo     contract.ISauceRepository
	cache         contract.ISauceCache
	uuidGenerator contract.IUUIDGenerator
	validator     usecasecontract.IValidator
	logger        usecasecontract.IAppLogger
	loads         singleflight.Group
}

var _ usecasecontract.ISauceUseCase = (*SauceUsecase)(nil)

// NewSauceUseCase creates a new SauceUsecase instance.
func NewSauceUseCase(sauceRepo contract.ISauceRepository, uuidGenerator contract.IUUIDGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *SauceUsecase {
	return &SauceUsecase{
		sauceRepo:     sauceRepo,
		uuidGenerator: uuidGenerator,
		validator:     validator,
		logger:        logger,
	}
}

// SetSauceCache enables read-through caching. Without it every read hits the repository.
func (uc *SauceUsecase) SetSauceCache(cache contract.ISauceCache) {
	uc.cache = cache
}

// ListSauces returns every sauce.
func (uc *SauceUsecase) ListSauces(ctx context.Context) ([]*entity.Sauce, error) {
	if uc.cache != nil {
		if sauces, ok, err := uc.cache.GetSauceList(ctx); err != nil {
			uc.logger.Warnf("sauce list cache read failed: %v", err)
		} else if ok {
			return sauces, nil
		}
	}

	v, err, _ := uc.loads.Do("list", func() (interface{}, error) {
		sauces, err := uc.sauceRepo.GetSauces(ctx)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			if err := uc.cache.SetSauceList(ctx, sauces); err != nil {
				uc.logger.Warnf("sauce list cache write failed: %v", err)
			}
		}
		return sauces, nil
	})
	if err != nil {
		uc.logger.Errorf("failed to list sauces: %v", err)
		return nil, &StorageError{Op: "list sauces", Err: err}
	}
	return v.([]*entity.Sauce), nil
}

// GetSauce returns a single sauce by id.
func (uc *SauceUsecase) GetSauce(ctx context.Context, id string) (*entity.Sauce, error) {
	if uc.cache != nil {
		if sauce, ok, err := uc.cache.GetSauce(ctx, id); err != nil {
			uc.logger.Warnf("sauce cache read failed for %s: %v", id, err)
		} else if ok {
			return sauce, nil
		}
	}

	v, err, _ := uc.loads.Do("sauce:"+id, func() (interface{}, error) {
		sauce, err := uc.sauceRepo.GetSauceByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			if err := uc.cache.SetSauce(ctx, sauce); err != nil {
				uc.logger.Warnf("sauce cache write failed for %s: %v", id, err)
			}
		}
		return sauce, nil
	})
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrSauceNotFound
		}
		uc.logger.Errorf("failed to get sauce %s: %v", id, err)
		return nil, &StorageError{Op: "get sauce", Err: err}
	}
	return v.(*entity.Sauce), nil
}

// CreateSauce publishes a new sauce owned by ownerID, with no votes.
func (uc *SauceUsecase) CreateSauce(ctx context.Context, ownerID string, details entity.SauceDetails) (*entity.Sauce, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if err := uc.validator.ValidateStruct(details); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := time.Now()
	sauce := &entity.Sauce{
		ID:            uc.uuidGenerator.NewUUID(),
		UserID:        ownerID,
		UsersLiked:    entity.NewVoterSet(),
		UsersDisliked: entity.NewVoterSet(),
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	details.Apply(sauce)

	if err := uc.sauceRepo.CreateSauce(ctx, sauce); err != nil {
		uc.logger.Errorf("failed to create sauce: %v", err)
		return nil, &StorageError{Op: "create sauce", Err: err}
	}
	uc.invalidateList(ctx)
	uc.logger.Infof("sauce %s created by %s", sauce.ID, ownerID)
	return sauce, nil
}

// UpdateSauce replaces the descriptive fields of a sauce. Only the owner may do so.
func (uc *SauceUsecase) UpdateSauce(ctx context.Context, id, callerID string, details entity.SauceDetails) (*entity.Sauce, error) {
	if err := uc.validator.ValidateStruct(details); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := uc.ownedSauce(ctx, id, callerID); err != nil {
		return nil, err
	}

	if err := uc.sauceRepo.UpdateSauceDetails(ctx, id, details); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrSauceNotFound
		}
		uc.logger.Errorf("failed to update sauce %s: %v", id, err)
		return nil, &StorageError{Op: "update sauce", Err: err}
	}
	uc.invalidateSauce(ctx, id)

	updated, err := uc.sauceRepo.GetSauceByID(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrSauceNotFound
		}
		return nil, &StorageError{Op: "get sauce", Err: err}
	}
	return updated, nil
}

// DeleteSauce removes a sauce. Only the owner may do so.
func (uc *SauceUsecase) DeleteSauce(ctx context.Context, id, callerID string) error {
	if _, err := uc.ownedSauce(ctx, id, callerID); err != nil {
		return err
	}
	if err := uc.sauceRepo.DeleteSauce(ctx, id); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrSauceNotFound
		}
		uc.logger.Errorf("failed to delete sauce %s: %v", id, err)
		return &StorageError{Op: "delete sauce", Err: err}
	}
	uc.invalidateSauce(ctx, id)
	uc.logger.Infof("sauce %s deleted by %s", id, callerID)
	return nil
}

func (uc *SauceUsecase) ownedSauce(ctx context.Context, id, callerID string) (*entity.Sauce, error) {
	sauce, err := uc.sauceRepo.GetSauceByID(ctx, id)
	if err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, ErrSauceNotFound
		}
		uc.logger.Errorf("failed to get sauce %s: %v", id, err)
		return nil, &StorageError{Op: "get sauce", Err: err}
	}
	if sauce.UserID != callerID {
		return nil, ErrForbidden
	}
	return sauce, nil
}

func (uc *SauceUsecase) invalidateSauce(ctx context.Context, id string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateSauce(ctx, id); err != nil {
		uc.logger.Warnf("failed to invalidate cached sauce %s: %v", id, err)
	}
	uc.invalidateList(ctx)
}

func (uc *SauceUsecase) invalidateList(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateSauceList(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate cached sauce list: %v", err)
	}
}
