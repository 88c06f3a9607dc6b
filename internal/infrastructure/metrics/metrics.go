package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AccountsCreated counts successfully created accounts.
	AccountsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gobank_accounts_created_total",
			Help: "Total number of accounts created",
		},
	)

	// TransactionsTotal counts processed transactions by kind and outcome.
	TransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gobank_transactions_total",
			Help: "Total number of processed transactions",
		},
		[]string{"kind", "status"},
	)

	// TransactionAmount observes accepted transaction amounts by kind.
	TransactionAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gobank_transaction_amount",
			Help:    "Accepted transaction amounts",
			Buckets: prometheus.ExponentialBuckets(1, 10, 7),
		},
		[]string{"kind"},
	)

	// InterestRuns counts completed interest accrual sweeps.
	InterestRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gobank_interest_runs_total",
			Help: "Total number of interest accrual sweeps",
		},
	)

	// InterestEntries counts interest ledger entries recorded across sweeps.
	InterestEntries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gobank_interest_entries_total",
			Help: "Total number of interest credits recorded",
		},
	)

	// UsersRegistered counts registered users.
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gobank_users_registered_total",
			Help: "Total number of registered users",
		},
	)
)
