package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/utils"
)

// UserRepo stores staff accounts in memory.  Emails are normalized
// to lower case and enforced unique; ids are assigned from a
// monotonically increasing counter.  All methods are safe for
// concurrent use.
type UserRepo struct {
	mu      sync.RWMutex
	nextID  uint64
	byID    map[uint64]model.User
	byEmail map[string]uint64
}

// NewUserRepo returns an empty user store.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		nextID:  1,
		byID:    make(map[uint64]model.User),
		byEmail: make(map[string]uint64),
	}
}

// Create hashes the password with the given bcrypt cost, stores
// the user and returns its id.  ErrEmailExists is returned when
// the normalized email is already registered.
func (r *UserRepo) Create(ctx context.Context, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byEmail[email]; taken {
		return 0, ErrEmailExists
	}
	now := time.Now().UTC()
	u := model.User{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.nextID++
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	return u.ID, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return r.byID[id], nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}
