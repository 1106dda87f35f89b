package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

const sauceListKey = "sauces:list"

type SauceCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ contract.ISauceCache = (*SauceCacheStore)(nil)

func NewSauceCacheStore(rdb *redis.Client, ttl time.Duration) *SauceCacheStore {
	return &SauceCacheStore{
		rdb: rdb,
		ttl: ttl,
	}
}

func sauceDetailKey(id string) string { return fmt.Sprintf("sauce:id:%s", id) }

// cachedSauce carries the fields the JSON form of a sauce hides.
type cachedSauce struct {
	*entity.Sauce
	Version int64 `json:"version"`
}

func (c *SauceCacheStore) GetSauce(ctx context.Context, id string) (*entity.Sauce, bool, error) {
	b, err := c.rdb.Get(ctx, sauceDetailKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var cs cachedSauce
	if err := json.Unmarshal(b, &cs); err != nil || cs.Sauce == nil {
		return nil, false, nil
	}
	cs.Sauce.Version = cs.Version
	return cs.Sauce, true, nil
}

func (c *SauceCacheStore) SetSauce(ctx context.Context, sauce *entity.Sauce) error {
	data, err := json.Marshal(cachedSauce{Sauce: sauce, Version: sauce.Version})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, sauceDetailKey(sauce.ID), data, c.ttl).Err()
}

func (c *SauceCacheStore) InvalidateSauce(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, sauceDetailKey(id)).Err()
}

func (c *SauceCacheStore) GetSauceList(ctx context.Context) ([]*entity.Sauce, bool, error) {
	b, err := c.rdb.Get(ctx, sauceListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var sauces []*entity.Sauce
	if err := json.Unmarshal(b, &sauces); err != nil {
		return nil, false, nil
	}
	return sauces, true, nil
}

func (c *SauceCacheStore) SetSauceList(ctx context.Context, sauces []*entity.Sauce) error {
	data, err := json.Marshal(sauces)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, sauceListKey, data, c.ttl).Err()
}

func (c *SauceCacheStore) InvalidateSauceList(ctx context.Context) error {
	return c.rdb.Del(ctx, sauceListKey).Err()
}
