package usecase

import (
	"context"
	"time"

	"github.com/iho/gobank/internal/domain"
)

// AccountRegistry is the authoritative, concurrency-safe store of accounts by
// account number.
type AccountRegistry interface {
	// Register adds a new account. It fails with domain.ErrAccountNumberTaken
	// on a number collision and with domain.ErrTooManyAccounts when the owner
	// is at the per-user ceiling; both checks are atomic with the insert.
	Register(ctx context.Context, account *domain.Account) error
	Get(ctx context.Context, number string) (*domain.Account, error)
	// OwnedBy returns a snapshot of the owner's accounts, never the live
	// collection.
	OwnedBy(ctx context.Context, ownerID string) ([]*domain.Account, error)
	// All returns a snapshot of every registered account.
	All(ctx context.Context) ([]*domain.Account, error)
}

// NumberGenerator produces candidate account numbers.
type NumberGenerator interface {
	Generate() string
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
