package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// maxAccountNumberAttempts bounds the retry loop on account number collisions.
const maxAccountNumberAttempts = 10

// AccountUseCase handles account lifecycle and read operations.
type AccountUseCase struct {
	registry AccountRegistry
	numbers  NumberGenerator
	ids      domain.IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(registry AccountRegistry, numbers NumberGenerator, ids domain.IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		registry: registry,
		numbers:  numbers,
		ids:      ids,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	OwnerID        string
	AccountType    string
	InitialDeposit decimal.Decimal
}

// CreateAccount validates the request, allocates a unique account number and
// registers the new account. Number collisions are retried a bounded number of
// times; exhaustion surfaces as a system error.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	accountType, err := domain.ParseAccountType(input.AccountType)
	if err != nil {
		return nil, err
	}

	var account *domain.Account
	attempt := func() error {
		candidate, err := domain.NewAccount(uc.numbers.Generate(), accountType, input.OwnerID, input.InitialDeposit, uc.ids)
		if err != nil {
			return backoff.Permanent(err)
		}

		if err := uc.registry.Register(ctx, candidate); err != nil {
			if errors.Is(err, domain.ErrAccountNumberTaken) {
				return err
			}
			return backoff.Permanent(err)
		}

		account = candidate
		return nil
	}

	err = backoff.Retry(attempt, backoff.WithMaxRetries(&backoff.ZeroBackOff{}, maxAccountNumberAttempts))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNumberTaken) {
			return nil, domain.ErrAccountNumbersExhausted
		}
		return nil, err
	}

	metrics.AccountsCreated.Inc()

	return account, nil
}

// GetAccount retrieves an account by its number.
func (uc *AccountUseCase) GetAccount(ctx context.Context, number string) (*domain.Account, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.ErrEmptyAccountNumber
	}

	return uc.registry.Get(ctx, number)
}

// GetOwnedAccount retrieves an account and verifies the caller owns it.
func (uc *AccountUseCase) GetOwnedAccount(ctx context.Context, number, ownerID string) (*domain.Account, error) {
	return ownedAccount(ctx, uc.registry, number, ownerID)
}

// ListAccounts returns a snapshot of the owner's accounts.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, domain.ErrEmptyOwner
	}

	return uc.registry.OwnedBy(ctx, ownerID)
}

// TransactionHistory returns the full ledger of an owned account.
func (uc *AccountUseCase) TransactionHistory(ctx context.Context, number, ownerID string) ([]domain.Transaction, error) {
	account, err := ownedAccount(ctx, uc.registry, number, ownerID)
	if err != nil {
		return nil, err
	}

	return account.Transactions(), nil
}

// TransactionsInRange returns the ledger entries of an owned account with
// timestamps in the inclusive range [start, end].
func (uc *AccountUseCase) TransactionsInRange(ctx context.Context, number, ownerID string, start, end time.Time) ([]domain.Transaction, error) {
	account, err := ownedAccount(ctx, uc.registry, number, ownerID)
	if err != nil {
		return nil, err
	}

	return account.TransactionsInRange(start, end)
}

// ownedAccount resolves an account by number and verifies ownership.
func ownedAccount(ctx context.Context, registry AccountRegistry, number, ownerID string) (*domain.Account, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domain.ErrEmptyAccountNumber
	}

	account, err := registry.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	if account.OwnerID() != ownerID {
		return nil, domain.ErrNotAccountOwner
	}

	return account, nil
}
