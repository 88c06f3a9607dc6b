package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

func newTestAccount(t *testing.T, number, ownerID string) *domain.Account {
	t.Helper()

	account, err := domain.NewAccount(number, domain.TypeChecking, ownerID, decimal.RequireFromString("1000.00"), NewULIDGenerator())
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	return account
}

func TestAccountRegistry_Register(t *testing.T) {
	registry := NewAccountRegistry()
	ctx := context.Background()

	account := newTestAccount(t, "1111111111", "user-1")
	if err := registry.Register(ctx, account); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("duplicate number", func(t *testing.T) {
		dup := newTestAccount(t, "1111111111", "user-2")
		if err := registry.Register(ctx, dup); !errors.Is(err, domain.ErrAccountNumberTaken) {
			t.Fatalf("expected ErrAccountNumberTaken, got %v", err)
		}
	})

	t.Run("per-owner ceiling", func(t *testing.T) {
		for i := 1; i < domain.MaxAccountsPerUser; i++ {
			a := newTestAccount(t, fmt.Sprintf("22222222%02d", i), "user-1")
			if err := registry.Register(ctx, a); err != nil {
				t.Fatalf("register %d: %v", i, err)
			}
		}

		extra := newTestAccount(t, "3333333333", "user-1")
		if err := registry.Register(ctx, extra); !errors.Is(err, domain.ErrTooManyAccounts) {
			t.Fatalf("expected ErrTooManyAccounts, got %v", err)
		}
	})
}

func TestAccountRegistry_Lookups(t *testing.T) {
	registry := NewAccountRegistry()
	ctx := context.Background()

	first := newTestAccount(t, "1111111111", "user-1")
	second := newTestAccount(t, "2222222222", "user-1")
	other := newTestAccount(t, "3333333333", "user-2")
	for _, a := range []*domain.Account{first, second, other} {
		if err := registry.Register(ctx, a); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	t.Run("get", func(t *testing.T) {
		got, err := registry.Get(ctx, "2222222222")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != second {
			t.Error("expected the registered account instance")
		}

		if _, err := registry.Get(ctx, "0000000000"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("owned by preserves registration order", func(t *testing.T) {
		owned, err := registry.OwnedBy(ctx, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(owned) != 2 || owned[0] != first || owned[1] != second {
			t.Errorf("unexpected owned accounts: %v", owned)
		}

		none, err := registry.OwnedBy(ctx, "user-9")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(none) != 0 {
			t.Errorf("expected no accounts, got %d", len(none))
		}
	})

	t.Run("all", func(t *testing.T) {
		all, err := registry.All(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("expected 3 accounts, got %d", len(all))
		}
	})
}

func TestAccountRegistry_ConcurrentRegistration(t *testing.T) {
	registry := NewAccountRegistry()
	ctx := context.Background()

	const owners = 2000
	perOwner := domain.MaxAccountsPerUser

	var wg sync.WaitGroup
	errs := make(chan error, owners*perOwner)

	for o := 0; o < owners; o++ {
		for i := 0; i < perOwner; i++ {
			wg.Add(1)
			go func(o, i int) {
				defer wg.Done()
				account := newTestAccount(t, fmt.Sprintf("%06d%04d", o, i), fmt.Sprintf("owner-%d", o))
				errs <- registry.Register(ctx, account)
			}(o, i)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent register failed: %v", err)
		}
	}

	all, err := registry.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != owners*perOwner {
		t.Fatalf("expected %d accounts, got %d", owners*perOwner, len(all))
	}

	seen := make(map[string]struct{}, len(all))
	for _, account := range all {
		if _, dup := seen[account.Number()]; dup {
			t.Fatalf("duplicate account number %s", account.Number())
		}
		seen[account.Number()] = struct{}{}
	}
}

func TestAccountRegistry_ConcurrentCeiling(t *testing.T) {
	registry := NewAccountRegistry()
	ctx := context.Background()

	attempts := 3 * domain.MaxAccountsPerUser
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			account := newTestAccount(t, fmt.Sprintf("77777777%02d", i), "owner-1")
			results <- registry.Register(ctx, account)
		}(i)
	}
	wg.Wait()
	close(results)

	accepted := 0
	for err := range results {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, domain.ErrTooManyAccounts):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if accepted != domain.MaxAccountsPerUser {
		t.Fatalf("expected exactly %d accepted registrations, got %d", domain.MaxAccountsPerUser, accepted)
	}
}
