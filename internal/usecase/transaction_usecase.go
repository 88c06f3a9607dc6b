package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// TransactionUseCase validates and applies caller-initiated transactions.
//
// Ownership and amount checks happen here; the daily-limit check runs inside
// the account's own critical section so that concurrent requests cannot
// jointly slip past the limit.
type TransactionUseCase struct {
	registry AccountRegistry
	now      func() time.Time
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(registry AccountRegistry) *TransactionUseCase {
	return &TransactionUseCase{
		registry: registry,
		now:      time.Now,
	}
}

// TransactionInput represents a deposit or withdrawal request.
type TransactionInput struct {
	AccountNumber string
	OwnerID       string
	Amount        decimal.Decimal
}

// Deposit credits the account after ownership, bounds and daily-limit checks.
func (uc *TransactionUseCase) Deposit(ctx context.Context, input TransactionInput) (domain.Transaction, error) {
	return uc.transact(ctx, domain.KindDeposit, input)
}

// Withdraw debits the account after ownership, bounds, daily-limit and
// minimum-balance checks.
func (uc *TransactionUseCase) Withdraw(ctx context.Context, input TransactionInput) (domain.Transaction, error) {
	return uc.transact(ctx, domain.KindWithdrawal, input)
}

func (uc *TransactionUseCase) transact(ctx context.Context, kind domain.TransactionKind, input TransactionInput) (domain.Transaction, error) {
	account, err := ownedAccount(ctx, uc.registry, input.AccountNumber, input.OwnerID)
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues(string(kind), "rejected").Inc()
		return domain.Transaction{}, err
	}

	tx, err := account.TransactWithinDailyLimit(kind, input.Amount, uc.now())
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues(string(kind), "rejected").Inc()
		return domain.Transaction{}, err
	}

	metrics.TransactionsTotal.WithLabelValues(string(kind), "accepted").Inc()
	metrics.TransactionAmount.WithLabelValues(string(kind)).Observe(tx.Amount.InexactFloat64())

	return tx, nil
}
