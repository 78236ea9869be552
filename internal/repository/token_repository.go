package repository

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
)

// TokenRepo stores refresh token records in memory, keyed by the
// SHA-256 hash of the raw token.  The raw token never reaches this
// store.  Expired and revoked entries are treated as absent by
// ValidateRefresh and reaped lazily on writes.
type TokenRepo struct {
	mu     sync.Mutex
	nextID uint64
	byHash map[string]model.RefreshToken
}

// NewTokenRepo returns an empty token store.
func NewTokenRepo() *TokenRepo {
	return &TokenRepo{nextID: 1, byHash: make(map[string]model.RefreshToken)}
}

// StoreRefresh records a refresh token hash for the user.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, hash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reapLocked()
	r.byHash[hash] = model.RefreshToken{
		ID:        r.nextID,
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	return nil
}

// ValidateRefresh returns the owning user id when the hash matches
// a live token.  Unknown, revoked and expired hashes all yield
// ErrTokenNotFound.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, hash string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, ok := r.byHash[hash]
	if !ok || tok.RevokedAt != nil || !tok.ExpiresAt.After(time.Now().UTC()) {
		return 0, ErrTokenNotFound
	}
	return tok.UserID, nil
}

// RevokeByHash marks the token with the given hash as revoked.
// Revoking an unknown hash is not an error.
func (r *TokenRepo) RevokeByHash(ctx context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tok, ok := r.byHash[hash]
	if !ok || tok.RevokedAt != nil {
		return nil
	}
	now := time.Now().UTC()
	tok.RevokedAt = &now
	r.byHash[hash] = tok
	return nil
}

// RevokeAllForUser revokes every live token belonging to the user.
// Used on logout-everywhere and account deactivation.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	for h, tok := range r.byHash {
		if tok.UserID == userID && tok.RevokedAt == nil {
			tok.RevokedAt = &now
			r.byHash[h] = tok
		}
	}
	return nil
}

// reapLocked drops entries that expired more than a day ago so the
// map does not grow without bound.  Caller must hold r.mu.
func (r *TokenRepo) reapLocked() {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	for h, tok := range r.byHash {
		if tok.ExpiresAt.Before(cutoff) {
			delete(r.byHash, h)
		}
	}
}
