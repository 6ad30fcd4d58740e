package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/orbitwatch/debris-tracker/internal/adapter"
	"github.com/orbitwatch/debris-tracker/internal/logger"
	"github.com/orbitwatch/debris-tracker/internal/store"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// RetentionSweeperConfig holds configuration for the retention sweeper
type RetentionSweeperConfig struct {
	ThresholdDays  int           // Observations older than this are deleted
	SweepInterval  time.Duration // Time to sleep between sweep cycles
	WorkerPoolSize int           // Concurrent deletion workers
}

// retentionSweeper implements the Sweeper interface for observation retention.
// Each cycle it deletes observations submitted before the retention cutoff and
// records the outcome as a cleanup job.
type retentionSweeper struct {
	config    *RetentionSweeperConfig
	store     store.Store
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewRetentionSweeper creates a new retention sweeper
func NewRetentionSweeper(config *RetentionSweeperConfig, st store.Store, clock adapter.Clock) Sweeper {
	return &retentionSweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *retentionSweeper) Name() string {
	return "retention-sweeper"
}

// Start begins the sweeper's main loop
func (s *retentionSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting retention sweeper",
		zap.Int("threshold_days", s.config.ThresholdDays),
		zap.Duration("sweep_interval", s.config.SweepInterval),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Retention sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Retention sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *retentionSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *retentionSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping retention sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Retention sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Retention sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *retentionSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	cutoff := startTime.Add(-time.Duration(s.config.ThresholdDays) * 24 * time.Hour)

	// Fetch expired observations with retry; the listing is the one step that
	// must succeed for the cycle to do anything
	expired, err := s.listExpiredWithRetry(ctx, cutoff)
	if err != nil {
		// Skip this cycle, the next one retries from scratch
		logger.ErrorCtx(ctx, fmt.Errorf("failed to list expired observations: %w", err),
			zap.Time("cutoff", cutoff),
		)
		if !s.sleep(ctx, s.config.SweepInterval) {
			return ctx.Err()
		}
		return nil
	}

	if len(expired) == 0 {
		logger.InfoCtx(ctx, "No expired observations, waiting for next cycle")
		if !s.sleep(ctx, s.config.SweepInterval) {
			return ctx.Err()
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found expired observations",
		zap.Int("count", len(expired)),
		zap.Time("cutoff", cutoff),
	)

	// Deletions are per-item; one failure does not stop the sweep
	var deletedCount, failedCount atomic.Int32

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(len(expired)),
		pond.WithContext(ctx),
	)
	for _, observation := range expired {
		s.pool.Submit(func() {
			if err := s.store.DeleteObservation(ctx, observation.ID); err != nil {
				failedCount.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("observation_id", observation.ID))
				return
			}
			deletedCount.Add(1)
		})
	}

	// Wait for all deletions to complete
	s.pool.StopAndWait()

	s.recordCleanupJob(ctx, len(expired), int(deletedCount.Load()), int(failedCount.Load()))

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", duration),
		zap.Int("total_expired", len(expired)),
		zap.Int32("deleted", deletedCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	if !s.sleep(ctx, s.config.SweepInterval) {
		return ctx.Err()
	}

	return nil
}

// listExpiredWithRetry fetches expired observations with exponential backoff
func (s *retentionSweeper) listExpiredWithRetry(ctx context.Context, cutoff time.Time) ([]schema.Observation, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = 1 * time.Minute
	b.MaxElapsedTime = 5 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	backoffWithContext := backoff.WithContext(b, ctx)

	var expired []schema.Observation
	operation := func() error {
		var err error
		expired, err = s.store.ListObservationsBefore(ctx, cutoff)
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Expired observation listing failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return nil, fmt.Errorf("failed after %d attempts: %w", attemptCount, err)
	}

	return expired, nil
}

// recordCleanupJob persists the sweep outcome as a cleanup job so it shows up
// in the batch job history; the record is advisory, so failures are logged
// and swallowed
func (s *retentionSweeper) recordCleanupJob(ctx context.Context, total, deleted, failed int) {
	job := &schema.BatchJob{
		ID:      ulid.Make().String(),
		Kind:    schema.BatchJobCleanup,
		Total:   total,
		Success: deleted,
		Failed:  failed,
		Errors:  datatypes.JSON([]byte("[]")),
	}

	if err := s.store.CreateBatchJob(ctx, job); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("job_id", job.ID))
	}
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (s *retentionSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
