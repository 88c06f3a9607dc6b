package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// StatementUseCase assembles structured statement data for an account.
// Rendering is left entirely to clients.
type StatementUseCase struct {
	registry AccountRegistry
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(registry AccountRegistry) *StatementUseCase {
	return &StatementUseCase{registry: registry}
}

// StatementInput represents a statement request.
type StatementInput struct {
	AccountNumber string
	OwnerID       string
	Start         time.Time
	End           time.Time
}

// Statement holds the entries of a date range together with opening/closing
// balances and per-kind totals.
type Statement struct {
	AccountNumber    string
	AccountType      domain.AccountType
	Start            time.Time
	End              time.Time
	OpeningBalance   decimal.Decimal
	ClosingBalance   decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TotalInterest    decimal.Decimal
	Transactions     []domain.Transaction
}

// Generate builds the statement for an owned account over [start, end].
func (uc *StatementUseCase) Generate(ctx context.Context, input StatementInput) (*Statement, error) {
	account, err := ownedAccount(ctx, uc.registry, input.AccountNumber, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Start.IsZero() || input.End.IsZero() {
		return nil, domain.ErrMissingDateBound
	}
	if input.Start.After(input.End) {
		return nil, domain.ErrInvalidDateRange
	}

	stmt := &Statement{
		AccountNumber:    account.Number(),
		AccountType:      account.Type(),
		Start:            input.Start,
		End:              input.End,
		OpeningBalance:   decimal.Zero,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TotalInterest:    decimal.Zero,
	}

	// One ledger snapshot serves both the opening balance and the range, so
	// the two can never disagree.
	for _, tx := range account.Transactions() {
		switch {
		case tx.Timestamp.Before(input.Start):
			stmt.OpeningBalance = tx.BalanceAfter
		case !tx.Timestamp.After(input.End):
			stmt.Transactions = append(stmt.Transactions, tx)

			switch tx.Kind {
			case domain.KindDeposit:
				stmt.TotalDeposits = stmt.TotalDeposits.Add(tx.Amount)
			case domain.KindWithdrawal:
				stmt.TotalWithdrawals = stmt.TotalWithdrawals.Add(tx.Amount)
			case domain.KindInterest:
				stmt.TotalInterest = stmt.TotalInterest.Add(tx.Amount)
			}
		}
	}

	stmt.ClosingBalance = stmt.OpeningBalance
	if n := len(stmt.Transactions); n > 0 {
		stmt.ClosingBalance = stmt.Transactions[n-1].BalanceAfter
	}

	return stmt, nil
}
