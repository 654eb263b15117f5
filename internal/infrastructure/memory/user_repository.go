package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/cartscout/backend/internal/domain"
)

// UserRepository is a thread-safe in-memory account store
type UserRepository struct {
	users map[string]*domain.User // keyed by email
	mutex sync.RWMutex
}

// NewUserRepository creates an empty in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*domain.User),
	}
}

// Save stores a new account, minting an ID if unset
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := *user
	r.users[user.Email] = &stored
	return nil
}

// FindByEmail looks up an account by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// ExistsByEmail reports whether an account with the email exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	_, exists := r.users[email]
	return exists, nil
}
