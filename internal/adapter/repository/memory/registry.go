package memory

import (
	"context"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// AccountRegistry is the in-memory account store. Accounts guard their own
// balance and ledger; the registry lock only protects the lookup tables, so
// Register stays atomic with respect to the per-owner ceiling.
type AccountRegistry struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	byOwner  map[string][]*domain.Account
}

// NewAccountRegistry creates an empty registry.
func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{
		accounts: make(map[string]*domain.Account),
		byOwner:  make(map[string][]*domain.Account),
	}
}

// Register adds the account. It fails when the number is already taken or the
// owner already holds the maximum number of accounts; both checks happen under
// one lock so concurrent registrations cannot overshoot either bound.
func (r *AccountRegistry) Register(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Number()]; ok {
		return domain.ErrAccountNumberTaken
	}
	owned := r.byOwner[account.OwnerID()]
	if len(owned) >= domain.MaxAccountsPerUser {
		return domain.ErrTooManyAccounts
	}

	r.accounts[account.Number()] = account
	r.byOwner[account.OwnerID()] = append(owned, account)
	return nil
}

// Get returns the account with the given number.
func (r *AccountRegistry) Get(ctx context.Context, number string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// OwnedBy returns a snapshot of the owner's accounts in registration order.
func (r *AccountRegistry) OwnedBy(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := r.byOwner[ownerID]
	out := make([]*domain.Account, len(owned))
	copy(out, owned)
	return out, nil
}

// All returns a snapshot of every registered account.
func (r *AccountRegistry) All(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}
	return out, nil
}
