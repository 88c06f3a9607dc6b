package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind identifies what a ledger entry records.
type TransactionKind string

// Wire-stable kind identifiers.
const (
	KindDeposit    TransactionKind = "Deposit"
	KindWithdrawal TransactionKind = "Withdrawal"
	KindInterest   TransactionKind = "Interest"
)

// IsValid reports whether k is a known transaction kind.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindDeposit, KindWithdrawal, KindInterest:
		return true
	}
	return false
}

// Description returns the informational text recorded with entries of this kind.
func (k TransactionKind) Description() string {
	switch k {
	case KindDeposit:
		return "Deposit transaction"
	case KindWithdrawal:
		return "Withdrawal transaction"
	case KindInterest:
		return "Interest credit"
	default:
		return "Transaction"
	}
}

// Transaction is an immutable ledger entry. BalanceAfter is a snapshot of the
// owning account's balance immediately after the entry was applied, never
// recomputed later.
type Transaction struct {
	ID           string
	Timestamp    time.Time
	Kind         TransactionKind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Description  string
}

// IDGenerator mints unique transaction IDs.
type IDGenerator interface {
	Generate() string
}
