package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobank/internal/adapter/http/dto"
	"github.com/iho/gobank/internal/adapter/http/middleware"
	"github.com/iho/gobank/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	Generate(ctx context.Context, input usecase.StatementInput) (*usecase.Statement, error)
}

// StatementHandler handles statement requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Get generates a statement over the start/end query parameters.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.OwnerFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	start, err := parseTimeQuery(r, "start")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start parameter", err.Error())
		return
	}
	end, err := parseTimeQuery(r, "end")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end parameter", err.Error())
		return
	}

	stmt, err := h.statementUC.Generate(r.Context(), usecase.StatementInput{
		AccountNumber: chi.URLParam(r, "number"),
		OwnerID:       ownerID,
		Start:         start,
		End:           end,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromUseCase(stmt))
}
