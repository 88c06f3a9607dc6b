package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	Deposit(ctx context.Context, input usecase.TransactionInput) (domain.Transaction, error)
	Withdraw(ctx context.Context, input usecase.TransactionInput) (domain.Transaction, error)
}

// TransactionHandler handles deposit and withdrawal requests.
type TransactionHandler struct {
	transactionUC TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// Deposit credits the account.
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, h.transactionUC.Deposit)
}

// Withdraw debits the account.
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.transact(w, r, h.transactionUC.Withdraw)
}

func (h *TransactionHandler) transact(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, input usecase.TransactionInput) (domain.Transaction, error),
) {
	ownerID, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req dto.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := apply(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "number"), ownerID))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}
