package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// MockAccountRegistry is a mock implementation of usecase.AccountRegistry.
// Without overrides it behaves like a plain in-memory registry.
type MockAccountRegistry struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	RegisterFunc func(ctx context.Context, account *domain.Account) error
	GetFunc      func(ctx context.Context, number string) (*domain.Account, error)
	OwnedByFunc  func(ctx context.Context, ownerID string) ([]*domain.Account, error)
	AllFunc      func(ctx context.Context) ([]*domain.Account, error)
}

func NewMockAccountRegistry() *MockAccountRegistry {
	return &MockAccountRegistry{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRegistry) Register(ctx context.Context, account *domain.Account) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.Number()]; ok {
		return domain.ErrAccountNumberTaken
	}
	m.accounts[account.Number()] = account
	return nil
}

func (m *MockAccountRegistry) Get(ctx context.Context, number string) (*domain.Account, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, number)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[number]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRegistry) OwnedBy(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	if m.OwnedByFunc != nil {
		return m.OwnedByFunc(ctx, ownerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Account
	for _, account := range m.accounts {
		if account.OwnerID() == ownerID {
			out = append(out, account)
		}
	}
	return out, nil
}

func (m *MockAccountRegistry) All(ctx context.Context) ([]*domain.Account, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		out = append(out, account)
	}
	return out, nil
}

// MockNumberGenerator is a mock implementation of usecase.NumberGenerator.
// Without an override it yields sequential fixed-length numbers.
type MockNumberGenerator struct {
	mu sync.Mutex
	n  int

	GenerateFunc func() string
}

func NewMockNumberGenerator() *MockNumberGenerator {
	return &MockNumberGenerator{}
}

func (m *MockNumberGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("%010d", m.n)
}

// MockIDGenerator is a mock implementation of domain.IDGenerator.
type MockIDGenerator struct {
	mu sync.Mutex
	n  int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("id-%06d", m.n)
}
