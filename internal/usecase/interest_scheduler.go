package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/gobank/internal/domain"
)

// InterestScheduler runs the monthly-interest sweep once per day. The first
// run fires at the next midnight; later runs re-fire on a fixed interval.
type InterestScheduler struct {
	interest *InterestUseCase
	logger   zerolog.Logger
	interval time.Duration
	now      func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewInterestScheduler creates a scheduler with the daily interval.
func NewInterestScheduler(interest *InterestUseCase, logger zerolog.Logger) *InterestScheduler {
	return &InterestScheduler{
		interest: interest,
		logger:   logger,
		interval: 24 * time.Hour,
		now:      time.Now,
	}
}

// Start launches the background schedule. It returns immediately.
func (s *InterestScheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	delay := nextMidnightDelay(s.now())
	s.logger.Info().
		Dur("first_run_in", delay).
		Dur("interval", s.interval).
		Msg("interest scheduler started")

	go s.run(ctx, delay)
}

func (s *InterestScheduler) run(ctx context.Context, delay time.Duration) {
	defer close(s.done)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		// Errors do not stop the schedule; the sweep is simply tried again
		// on the next firing.
		if err := s.interest.AccrueForAllSavings(ctx); err != nil {
			s.logger.Error().Err(err).Msg("interest accrual sweep failed")
		}

		timer.Reset(s.interval)
	}
}

// Stop cancels the schedule and waits for an in-flight sweep to finish,
// bounded by timeout.
func (s *InterestScheduler) Stop(timeout time.Duration) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("%w: interest scheduler did not stop within %s", domain.ErrSystem, timeout)
	}
}

// nextMidnightDelay returns the time remaining until the next local midnight.
func nextMidnightDelay(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}
