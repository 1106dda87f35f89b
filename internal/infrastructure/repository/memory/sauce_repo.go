// Package memory holds process-local repositories used by tests and by the
// memory:// database URI.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

// SauceRepository keeps sauces in a map. Values are cloned on the way in and
// out so callers never share state with the store.
type SauceRepository struct {
	mu     sync.RWMutex
	sauces map[string]*entity.Sauce
}

var _ contract.ISauceRepository = (*SauceRepository)(nil)

func NewSauceRepository() *SauceRepository {
	return &SauceRepository{sauces: make(map[string]*entity.Sauce)}
}

func (r *SauceRepository) CreateSauce(ctx context.Context, sauce *entity.Sauce) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sauces[sauce.ID]; ok {
		return contract.ErrDuplicateKey
	}
	r.sauces[sauce.ID] = sauce.Clone()
	return nil
}

func (r *SauceRepository) GetSauceByID(ctx context.Context, id string) (*entity.Sauce, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sauce, ok := r.sauces[id]
	if !ok {
		return nil, contract.ErrNotFound
	}
	return sauce.Clone(), nil
}

// GetSauces returns all sauces, oldest first.
func (r *SauceRepository) GetSauces(ctx context.Context) ([]*entity.Sauce, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Sauce, 0, len(r.sauces))
	for _, s := range r.sauces {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *SauceRepository) UpdateSauceDetails(ctx context.Context, id string, details entity.SauceDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sauce, ok := r.sauces[id]
	if !ok {
		return contract.ErrNotFound
	}
	details.Apply(sauce)
	sauce.UpdatedAt = time.Now()
	return nil
}

func (r *SauceRepository) DeleteSauce(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sauces[id]; !ok {
		return contract.ErrNotFound
	}
	delete(r.sauces, id)
	return nil
}

func (r *SauceRepository) SaveVotes(ctx context.Context, sauce *entity.Sauce) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.sauces[sauce.ID]
	if !ok {
		return contract.ErrNotFound
	}
	if stored.Version != sauce.Version {
		return contract.ErrVersionConflict
	}
	stored.UsersLiked = sauce.UsersLiked.Clone()
	stored.UsersDisliked = sauce.UsersDisliked.Clone()
	stored.Likes = sauce.Likes
	stored.Dislikes = sauce.Dislikes
	stored.Version++
	stored.UpdatedAt = time.Now()
	sauce.Version = stored.Version
	sauce.UpdatedAt = stored.UpdatedAt
	return nil
}
