package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/usecase"
)

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username: r.Username,
		Password: r.Password,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAccountRequest represents a request to open an account.
type CreateAccountRequest struct {
	AccountType    string          `json:"account_type"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
}

// ToUseCaseInput converts to use case input for the given owner.
func (r *CreateAccountRequest) ToUseCaseInput(ownerID string) usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		OwnerID:        ownerID,
		AccountType:    r.AccountType,
		InitialDeposit: r.InitialDeposit,
	}
}

// TransactionRequest represents a deposit or withdrawal request.
type TransactionRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input for the given account and owner.
func (r *TransactionRequest) ToUseCaseInput(number, ownerID string) usecase.TransactionInput {
	return usecase.TransactionInput{
		AccountNumber: number,
		OwnerID:       ownerID,
		Amount:        r.Amount,
	}
}

// StatementRequest represents a statement request.
type StatementRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ToUseCaseInput converts to use case input for the given account and owner.
func (r *StatementRequest) ToUseCaseInput(number, ownerID string) usecase.StatementInput {
	return usecase.StatementInput{
		AccountNumber: number,
		OwnerID:       ownerID,
		Start:         r.Start,
		End:           r.End,
	}
}
