package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/gobank/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation error", domain.ErrAmountNotPositive, http.StatusBadRequest},
		{"daily limit", domain.ErrDailyLimitExceeded, http.StatusBadRequest},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"minimum balance", domain.ErrBelowMinimumBalance, http.StatusUnprocessableEntity},
		{"not the owner", domain.ErrNotAccountOwner, http.StatusForbidden},
		{"number space exhausted", domain.ErrAccountNumbersExhausted, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestParseTimeQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/history?start=2025-01-02T15:04:05Z", nil)
	got, err := parseTimeQuery(req, "start")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	req = httptest.NewRequest(http.MethodGet, "/history", nil)
	got, err = parseTimeQuery(req, "start")
	if err != nil || !got.IsZero() {
		t.Fatalf("expected zero time for missing parameter, got %s err=%v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/history?start=yesterday", nil)
	if _, err := parseTimeQuery(req, "start"); err == nil {
		t.Fatalf("expected error for malformed timestamp")
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, map[string]string{"status": "ok"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if decoded["status"] != "ok" {
		t.Fatalf("unexpected body: %v", decoded)
	}
}
