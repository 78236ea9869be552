package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/utils"
)

func TestUserRepoCreateAndLookup(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	id, err := repo.Create(ctx, "  Desk@Hotel.Test ", "s3cret-pass", "RECEPTION", 4)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	// Email is normalized, so a differently cased duplicate collides.
	_, err = repo.Create(ctx, "desk@hotel.test", "other-pass", "MANAGER", 4)
	assert.ErrorIs(t, err, ErrEmailExists)

	u, err := repo.GetByEmail(ctx, "DESK@hotel.test")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "desk@hotel.test", u.Email)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
	assert.True(t, utils.VerifyPassword(u.PasswordHash, "s3cret-pass"))

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, u, byID)

	_, err = repo.GetByEmail(ctx, "nobody@hotel.test")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTokenRepoLifecycle(t *testing.T) {
	repo := NewTokenRepo()
	ctx := context.Background()
	exp := time.Now().UTC().Add(time.Hour)

	require.NoError(t, repo.StoreRefresh(ctx, 7, "hash-a", exp))

	uid, err := repo.ValidateRefresh(ctx, "hash-a")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), uid)

	_, err = repo.ValidateRefresh(ctx, "hash-unknown")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, repo.RevokeByHash(ctx, "hash-a"))
	_, err = repo.ValidateRefresh(ctx, "hash-a")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Revoking twice or revoking an unknown hash is harmless.
	assert.NoError(t, repo.RevokeByHash(ctx, "hash-a"))
	assert.NoError(t, repo.RevokeByHash(ctx, "hash-unknown"))
}

func TestTokenRepoExpiry(t *testing.T) {
	repo := NewTokenRepo()
	ctx := context.Background()

	require.NoError(t, repo.StoreRefresh(ctx, 1, "hash-old", time.Now().UTC().Add(-time.Minute)))
	_, err := repo.ValidateRefresh(ctx, "hash-old")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTokenRepoRevokeAllForUser(t *testing.T) {
	repo := NewTokenRepo()
	ctx := context.Background()
	exp := time.Now().UTC().Add(time.Hour)

	require.NoError(t, repo.StoreRefresh(ctx, 1, "hash-1a", exp))
	require.NoError(t, repo.StoreRefresh(ctx, 1, "hash-1b", exp))
	require.NoError(t, repo.StoreRefresh(ctx, 2, "hash-2", exp))

	require.NoError(t, repo.RevokeAllForUser(ctx, 1))

	_, err := repo.ValidateRefresh(ctx, "hash-1a")
	assert.ErrorIs(t, err, ErrTokenNotFound)
	_, err = repo.ValidateRefresh(ctx, "hash-1b")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	uid, err := repo.ValidateRefresh(ctx, "hash-2")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), uid)
}
