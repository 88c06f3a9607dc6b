package domain

import "testing"

func TestTransactionKind_IsValid(t *testing.T) {
	for _, kind := range []TransactionKind{KindDeposit, KindWithdrawal, KindInterest} {
		if !kind.IsValid() {
			t.Errorf("expected %s to be valid", kind)
		}
	}

	if TransactionKind("Transfer").IsValid() {
		t.Error("expected unknown kind to be invalid")
	}
}

func TestTransactionKind_Description(t *testing.T) {
	tests := []struct {
		kind TransactionKind
		want string
	}{
		{KindDeposit, "Deposit transaction"},
		{KindWithdrawal, "Withdrawal transaction"},
		{KindInterest, "Interest credit"},
		{TransactionKind("Other"), "Transaction"},
	}

	for _, tt := range tests {
		if got := tt.kind.Description(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.kind, tt.want, got)
		}
	}
}
