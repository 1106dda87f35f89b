package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
)

func seedSauce(t *testing.T, repo *SauceRepository) *entity.Sauce {
	t.Helper()
	sauce := &entity.Sauce{ID: "s1", UserID: "owner", Name: "Mild", Version: 1, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateSauce(context.Background(), sauce))
	return sauce
}

func TestSaveVotes_CompareAndSwap(t *testing.T) {
	repo := NewSauceRepository()
	seedSauce(t, repo)
	ctx := context.Background()

	first, err := repo.GetSauceByID(ctx, "s1")
	require.NoError(t, err)
	stale, err := repo.GetSauceByID(ctx, "s1")
	require.NoError(t, err)

	first.UsersLiked.Add("u1")
	first.SyncCounters()
	require.NoError(t, repo.SaveVotes(ctx, first))
	assert.Equal(t, int64(2), first.Version)

	stale.UsersLiked.Add("u2")
	stale.SyncCounters()
	assert.ErrorIs(t, repo.SaveVotes(ctx, stale), contract.ErrVersionConflict)

	stored, err := repo.GetSauceByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, stored.UsersLiked.IDs())
	assert.Equal(t, 1, stored.Likes)
}

func TestSaveVotes_Missing(t *testing.T) {
	repo := NewSauceRepository()
	err := repo.SaveVotes(context.Background(), &entity.Sauce{ID: "nope"})
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestGetSauceByID_ReturnsCopies(t *testing.T) {
	repo := NewSauceRepository()
	seedSauce(t, repo)
	ctx := context.Background()

	got, err := repo.GetSauceByID(ctx, "s1")
	require.NoError(t, err)
	got.UsersLiked.Add("sneaky")
	got.Name = "changed"

	again, err := repo.GetSauceByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Mild", again.Name)
	assert.False(t, again.UsersLiked.Has("sneaky"))
}

func TestUpdateSauceDetails_LeavesVotes(t *testing.T) {
	repo := NewSauceRepository()
	seedSauce(t, repo)
	ctx := context.Background()

	s, err := repo.GetSauceByID(ctx, "s1")
	require.NoError(t, err)
	s.UsersLiked.Add("u1")
	s.SyncCounters()
	require.NoError(t, repo.SaveVotes(ctx, s))

	require.NoError(t, repo.UpdateSauceDetails(ctx, "s1", entity.SauceDetails{Name: "Hot", Heat: 8}))
	stored, err := repo.GetSauceByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Hot", stored.Name)
	assert.Equal(t, 1, stored.Likes)
	assert.Equal(t, int64(2), stored.Version)

	assert.ErrorIs(t, repo.UpdateSauceDetails(ctx, "nope", entity.SauceDetails{}), contract.ErrNotFound)
}

func TestCreateAndDeleteSauce(t *testing.T) {
	repo := NewSauceRepository()
	seedSauce(t, repo)
	ctx := context.Background()

	assert.ErrorIs(t, repo.CreateSauce(ctx, &entity.Sauce{ID: "s1"}), contract.ErrDuplicateKey)
	require.NoError(t, repo.DeleteSauce(ctx, "s1"))
	assert.ErrorIs(t, repo.DeleteSauce(ctx, "s1"), contract.ErrNotFound)

	sauces, err := repo.GetSauces(ctx)
	require.NoError(t, err)
	assert.Empty(t, sauces)
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	user := &entity.User{ID: "u1", Email: "a@example.com", PasswordHash: "hash"}

	require.NoError(t, repo.CreateUser(ctx, user))
	assert.ErrorIs(t, repo.CreateUser(ctx, &entity.User{ID: "u2", Email: "a@example.com"}), contract.ErrDuplicateKey)

	byEmail, err := repo.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = repo.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}
