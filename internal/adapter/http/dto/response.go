package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Number      string          `json:"number"`
	AccountType string          `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Number:      a.Number(),
		AccountType: string(a.Type()),
		Balance:     a.Balance(),
		CreatedAt:   a.CreatedAt(),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// TransactionResponse represents a ledger entry in API responses.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Timestamp    time.Time       `json:"timestamp"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Description  string          `json:"description"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(tx domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:           tx.ID,
		Timestamp:    tx.Timestamp,
		Kind:         string(tx.Kind),
		Amount:       tx.Amount,
		BalanceAfter: tx.BalanceAfter,
		Description:  tx.Description,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, tx := range txs {
		result[i] = TransactionFromDomain(tx)
	}
	return result
}

// StatementResponse represents a statement in API responses.
type StatementResponse struct {
	AccountNumber    string                 `json:"account_number"`
	AccountType      string                 `json:"account_type"`
	Start            time.Time              `json:"start"`
	End              time.Time              `json:"end"`
	OpeningBalance   decimal.Decimal        `json:"opening_balance"`
	ClosingBalance   decimal.Decimal        `json:"closing_balance"`
	TotalDeposits    decimal.Decimal        `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal        `json:"total_withdrawals"`
	TotalInterest    decimal.Decimal        `json:"total_interest"`
	Transactions     []*TransactionResponse `json:"transactions"`
}

// StatementFromUseCase converts a statement to a response.
func StatementFromUseCase(s *usecase.Statement) *StatementResponse {
	return &StatementResponse{
		AccountNumber:    s.AccountNumber,
		AccountType:      string(s.AccountType),
		Start:            s.Start,
		End:              s.End,
		OpeningBalance:   s.OpeningBalance,
		ClosingBalance:   s.ClosingBalance,
		TotalDeposits:    s.TotalDeposits,
		TotalWithdrawals: s.TotalWithdrawals,
		TotalInterest:    s.TotalInterest,
		Transactions:     TransactionsFromDomain(s.Transactions),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
