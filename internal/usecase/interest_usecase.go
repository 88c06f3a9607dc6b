package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// InterestUseCase applies monthly interest across the registry.
type InterestUseCase struct {
	registry AccountRegistry
	logger   zerolog.Logger
}

// NewInterestUseCase creates a new InterestUseCase.
func NewInterestUseCase(registry AccountRegistry, logger zerolog.Logger) *InterestUseCase {
	return &InterestUseCase{
		registry: registry,
		logger:   logger,
	}
}

// AccrueForAllSavings walks a snapshot of all registered accounts and credits
// monthly interest on each savings account. A failure on one account is
// logged and does not stop the remaining accounts.
func (uc *InterestUseCase) AccrueForAllSavings(ctx context.Context) error {
	accounts, err := uc.registry.All(ctx)
	if err != nil {
		return err
	}

	applied := 0
	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if account.Type() != domain.TypeSavings {
			continue
		}

		tx, ok := account.AccrueMonthlyInterest()
		if !ok {
			continue
		}

		applied++
		metrics.InterestEntries.Inc()
		uc.logger.Debug().
			Str("account", account.Number()).
			Str("interest", tx.Amount.String()).
			Str("balance", tx.BalanceAfter.String()).
			Msg("interest credited")
	}

	metrics.InterestRuns.Inc()
	uc.logger.Info().
		Int("accounts", len(accounts)).
		Int("credited", applied).
		Msg("interest accrual sweep completed")

	return nil
}
