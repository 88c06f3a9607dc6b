package domain

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType distinguishes interest-bearing savings accounts from checking
// accounts. Fixed at creation.
type AccountType string

const (
	TypeSavings  AccountType = "SAVINGS"
	TypeChecking AccountType = "CHECKING"
)

// ParseAccountType normalizes and validates a caller-supplied account type.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(s))) {
	case TypeSavings:
		return TypeSavings, nil
	case TypeChecking:
		return TypeChecking, nil
	}
	return "", ErrInvalidAccountType
}

// Account is the aggregate owning a balance and its append-only ledger.
//
// Every mutation runs under the account's mutex: rule checks that depend on
// current state, the balance update, and the ledger append form one critical
// section. Two accounts can always be mutated in parallel; operations on the
// same account are totally ordered.
type Account struct {
	number      string
	accountType AccountType
	ownerID     string
	createdAt   time.Time

	idGen IDGenerator
	clock func() time.Time

	mu      sync.Mutex
	balance decimal.Decimal
	ledger  []Transaction
}

// NewAccount creates an account and records the initial deposit as its first
// ledger entry.
func NewAccount(number string, accountType AccountType, ownerID string, initialDeposit decimal.Decimal, idGen IDGenerator) (*Account, error) {
	if strings.TrimSpace(number) == "" {
		return nil, ErrEmptyAccountNumber
	}
	if !accountType.isValid() {
		return nil, ErrInvalidAccountType
	}
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrEmptyOwner
	}

	deposit := RoundMoney(initialDeposit)
	if deposit.LessThan(MinimumBalance) {
		return nil, ErrInitialDepositTooSmall
	}

	a := &Account{
		number:      number,
		accountType: accountType,
		ownerID:     ownerID,
		idGen:       idGen,
		clock:       time.Now,
	}
	a.createdAt = a.clock()
	a.applyLocked(KindDeposit, deposit)

	return a, nil
}

func (t AccountType) isValid() bool {
	return t == TypeSavings || t == TypeChecking
}

func (a *Account) Number() string    { return a.number }
func (a *Account) Type() AccountType { return a.accountType }
func (a *Account) OwnerID() string   { return a.ownerID }

// CreatedAt returns the account creation time.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// Transactions returns a copy of the ledger in insertion order.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Transaction, len(a.ledger))
	copy(out, a.ledger)

	return out
}

// Deposit credits amount and appends a Deposit entry.
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	amount, err := normalizeAmount(amount)
	if err != nil {
		return Transaction{}, err
	}

	return a.applyLocked(KindDeposit, amount), nil
}

// Withdraw debits amount and appends a Withdrawal entry. The resulting balance
// may never drop below the minimum balance.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	amount, err := normalizeAmount(amount)
	if err != nil {
		return Transaction{}, err
	}

	if a.balance.Sub(amount).LessThan(MinimumBalance) {
		return Transaction{}, ErrBelowMinimumBalance
	}

	return a.applyLocked(KindWithdrawal, amount), nil
}

// TransactWithinDailyLimit applies a caller-initiated deposit or withdrawal,
// checking the daily transaction limit in the same critical section as the
// balance mutation. now selects the calendar day the limit is summed over.
//
// The daily total counts entries of every kind, including interest credits.
func (a *Account) TransactWithinDailyLimit(kind TransactionKind, amount decimal.Decimal, now time.Time) (Transaction, error) {
	if kind != KindDeposit && kind != KindWithdrawal {
		return Transaction{}, ErrInvalidTransactionKind
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	amount, err := normalizeAmount(amount)
	if err != nil {
		return Transaction{}, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	total := a.sumBetweenLocked(dayStart, dayEnd)
	if total.Add(amount).GreaterThan(DailyTransactionLimit) {
		return Transaction{}, ErrDailyLimitExceeded
	}

	if kind == KindWithdrawal && a.balance.Sub(amount).LessThan(MinimumBalance) {
		return Transaction{}, ErrBelowMinimumBalance
	}

	return a.applyLocked(kind, amount), nil
}

// AccrueMonthlyInterest credits one month of interest. It is a no-op on
// checking accounts, on non-positive balances, and when the rounded interest
// is zero; applied reports whether an entry was recorded.
func (a *Account) AccrueMonthlyInterest() (tx Transaction, applied bool) {
	if a.accountType != TypeSavings {
		return Transaction{}, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.balance.IsPositive() {
		return Transaction{}, false
	}

	interest := MonthlyInterest(a.balance)
	if !interest.IsPositive() {
		return Transaction{}, false
	}

	return a.applyLocked(KindInterest, interest), true
}

// TransactionsInRange returns ledger entries with timestamps in the inclusive
// range [start, end], in chronological order.
func (a *Account) TransactionsInRange(start, end time.Time) ([]Transaction, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrMissingDateBound
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var out []Transaction
	for _, tx := range a.ledger {
		if !tx.Timestamp.Before(start) && !tx.Timestamp.After(end) {
			out = append(out, tx)
		}
	}

	return out, nil
}

// applyLocked mutates the balance and appends the paired ledger entry. Callers
// hold a.mu (NewAccount excepted, where the account is not yet shared).
func (a *Account) applyLocked(kind TransactionKind, amount decimal.Decimal) Transaction {
	switch kind {
	case KindWithdrawal:
		a.balance = a.balance.Sub(amount)
	default:
		a.balance = a.balance.Add(amount)
	}

	tx := Transaction{
		ID:           a.idGen.Generate(),
		Timestamp:    a.clock(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: a.balance,
		Description:  kind.Description(),
	}
	a.ledger = append(a.ledger, tx)

	return tx
}

func (a *Account) sumBetweenLocked(start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range a.ledger {
		if !tx.Timestamp.Before(start) && !tx.Timestamp.After(end) {
			total = total.Add(tx.Amount)
		}
	}

	return total
}

// normalizeAmount rounds amount to the monetary scale and validates bounds.
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = RoundMoney(amount)
	if err := ValidateTransactionAmount(amount); err != nil {
		return decimal.Decimal{}, err
	}

	return amount, nil
}
