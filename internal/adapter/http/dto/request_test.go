package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/usecase"
)

func TestCreateAccountRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateAccountRequest{
		AccountType:    "savings",
		InitialDeposit: decimal.RequireFromString("1000.00"),
	}

	got := req.ToUseCaseInput("user-1")
	if got.OwnerID != "user-1" || got.AccountType != "savings" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if !got.InitialDeposit.Equal(decimal.RequireFromString("1000.00")) {
		t.Fatalf("unexpected deposit: %s", got.InitialDeposit)
	}
}

func TestTransactionRequest_ToUseCaseInput(t *testing.T) {
	req := &TransactionRequest{Amount: decimal.RequireFromString("42.50")}

	got := req.ToUseCaseInput("5550001111", "user-1")
	want := usecase.TransactionInput{
		AccountNumber: "5550001111",
		OwnerID:       "user-1",
		Amount:        decimal.RequireFromString("42.50"),
	}
	if got.AccountNumber != want.AccountNumber || got.OwnerID != want.OwnerID || !got.Amount.Equal(want.Amount) {
		t.Fatalf("ToUseCaseInput() = %+v, want %+v", got, want)
	}
}
