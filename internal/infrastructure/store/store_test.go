package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestSauceCacheStore_RoundTrip(t *testing.T) {
	mr, rdb := newTestRedis(t)
	cache := NewSauceCacheStore(rdb, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.GetSauce(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	sauce := &entity.Sauce{ID: "s1", Name: "Ghost", UsersLiked: entity.NewVoterSet("u1"), Version: 4}
	sauce.SyncCounters()
	require.NoError(t, cache.SetSauce(ctx, sauce))
	assert.True(t, mr.Exists("sauce:id:s1"))
	assert.Equal(t, time.Minute, mr.TTL("sauce:id:s1"))

	got, ok, err := cache.GetSauce(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ghost", got.Name)
	assert.Equal(t, int64(4), got.Version)
	assert.Equal(t, 1, got.Likes)
	assert.True(t, got.UsersLiked.Has("u1"))

	require.NoError(t, cache.InvalidateSauce(ctx, "s1"))
	_, ok, err = cache.GetSauce(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSauceCacheStore_List(t *testing.T) {
	_, rdb := newTestRedis(t)
	cache := NewSauceCacheStore(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetSauceList(ctx, []*entity.Sauce{{ID: "a"}, {ID: "b"}}))
	list, ok, err := cache.GetSauceList(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[1].ID)

	require.NoError(t, cache.InvalidateSauceList(ctx))
	_, ok, err = cache.GetSauceList(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSauceCacheStore_CorruptEntryIsMiss(t *testing.T) {
	mr, rdb := newTestRedis(t)
	cache := NewSauceCacheStore(rdb, time.Minute)
	require.NoError(t, mr.Set("sauce:id:s1", "{not json"))

	_, ok, err := cache.GetSauce(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLocker_Exclusion(t *testing.T) {
	_, rdb := newTestRedis(t)
	locker := NewRedisLocker(rdb, 5*time.Second)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "sauce:s1")
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(waitCtx, "sauce:s1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	other, err := locker.Lock(ctx, "sauce:s2")
	require.NoError(t, err)
	other()

	unlock()
	unlock()
	again, err := locker.Lock(ctx, "sauce:s1")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_ReleaseKeepsForeignLease(t *testing.T) {
	mr, rdb := newTestRedis(t)
	locker := NewRedisLocker(rdb, 5*time.Second)

	unlock, err := locker.Lock(context.Background(), "sauce:s1")
	require.NoError(t, err)

	// Another holder took over after our lease expired.
	require.NoError(t, mr.Set("lock:sauce:s1", "someone-else"))
	unlock()

	got, err := mr.Get("lock:sauce:s1")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

func TestRedisLocker_LeaseExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	locker := NewRedisLocker(rdb, time.Second)
	ctx := context.Background()

	_, err := locker.Lock(ctx, "sauce:s1")
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	unlock, err := locker.Lock(ctx, "sauce:s1")
	require.NoError(t, err)
	unlock()
}

func TestLocalLocker(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "a")
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(waitCtx, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlockB, err := locker.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()

	acquired := make(chan struct{})
	go func() {
		release, err := locker.Lock(ctx, "a")
		if err == nil {
			release()
		}
		close(acquired)
	}()

	unlock()
	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired the lock")
	}

	assert.Eventually(t, func() bool {
		locker.mu.Lock()
		defer locker.mu.Unlock()
		return len(locker.slots) == 0
	}, time.Second, 10*time.Millisecond)
}
