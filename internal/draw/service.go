package draw

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/tinklepaw-gacha/internal/concurrency"
	"github.com/osse101/tinklepaw-gacha/internal/domain"
	"github.com/osse101/tinklepaw-gacha/internal/logger"
	"github.com/osse101/tinklepaw-gacha/internal/metrics"
	"github.com/osse101/tinklepaw-gacha/internal/repository"
)

// Service defines the interface for draw operations
type Service interface {
	// ExecuteBatch runs up to 10 pulls sequentially. Business failures that
	// leave a meaningful record are reported inside the outcome; an error is
	// returned only for a fatal abort (*FatalError) or an abandoned context.
	ExecuteBatch(ctx context.Context, req domain.DrawRequest) (*domain.BatchOutcome, error)
}

type service struct {
	proc        repository.DrawProcedure
	fatalPolicy FatalPolicy
	sleep       func(ctx context.Context, d time.Duration) error
	// batches from one member run one at a time so they do not contend
	// for that member's state row
	memberLocks *concurrency.LockManager
}

// NewService creates a new draw orchestrator
func NewService(proc repository.DrawProcedure, fatalPolicy FatalPolicy) Service {
	if fatalPolicy == "" {
		fatalPolicy = FatalPolicyAbort
	}
	return &service{
		proc:        proc,
		fatalPolicy: fatalPolicy,
		sleep:       sleepContext,
		memberLocks: concurrency.NewLockManager(),
	}
}

// ExecuteBatch implements Service
func (s *service) ExecuteBatch(ctx context.Context, req domain.DrawRequest) (*domain.BatchOutcome, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgExecuteBatchCalled, "user_id", req.UserID, "pool_id", req.PoolID, "amount", req.Amount)

	if req.UserID == "" {
		return nil, domain.ErrMissingIdentity
	}

	unlock, err := s.memberLocks.Lock(ctx, req.UserID)
	if err != nil {
		metrics.DrawBatchesTotal.WithLabelValues(metrics.OutcomeCancelled).Inc()
		log.Warn(LogMsgBatchLockAbandoned, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrContextWaitForBatch, err)
	}
	defer unlock()

	amount := req.ClampedAmount()
	if amount != req.Amount {
		log.Debug(LogMsgAmountClamped, "requested", req.Amount, "clamped", amount)
	}

	results := make([]domain.DrawUnitOutcome, 0, amount)
	for i := 0; i < amount; i++ {
		unit := i + 1

		outcome, err := s.drawUnit(ctx, req, unit)
		if err == nil {
			results = append(results, *outcome)
			metrics.DrawUnitsTotal.WithLabelValues(string(outcome.Rarity)).Inc()
			continue
		}

		var ue *unitError
		if !errors.As(err, &ue) {
			metrics.DrawBatchesTotal.WithLabelValues(metrics.OutcomeCancelled).Inc()
			log.Warn(LogMsgBatchAbandoned, "unit", unit, "completed", len(results), "error", err)
			return nil, fmt.Errorf("%s %d: %w", ErrContextDrawUnitAbandoned, unit, err)
		}

		if ue.class == ClassFatal {
			return s.handleFatal(ctx, results, unit, amount, ue)
		}

		warning := exhaustedWarning(unit, amount, ue)
		metrics.DrawBatchesTotal.WithLabelValues(metrics.OutcomePartial).Inc()
		log.Warn(LogMsgBatchPartial,
			"unit", unit,
			"completed", len(results),
			"requested", amount,
			"class", ue.class,
			"retries", ue.retries,
			"error", ue.err)
		return domain.NewBatchOutcome(results, amount, &warning), nil
	}

	metrics.DrawBatchesTotal.WithLabelValues(metrics.OutcomeComplete).Inc()
	log.Info(LogMsgBatchCompleted, "completed", len(results))
	return domain.NewBatchOutcome(results, amount, nil), nil
}

// drawUnit calls the remote until the unit succeeds, fails for good, or ctx ends.
func (s *service) drawUnit(ctx context.Context, req domain.DrawRequest, unit int) (*domain.DrawUnitOutcome, error) {
	log := logger.FromContext(ctx)
	retries := 0

	for {
		outcome, err := s.proc.Draw(ctx, req.UserID, req.PoolID)
		if err == nil && outcome == nil {
			log.Warn(LogMsgEmptyRemoteResponse, "unit", unit)
			err = ErrEmptyDrawResult
		}
		if err == nil {
			metrics.DrawUnitAttempts.Observe(float64(retries + 1))
			return outcome, nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		class := Classify(err)
		if !class.Retryable() || retries >= MaxRetriesPerUnit {
			metrics.DrawUnitAttempts.Observe(float64(retries + 1))
			return nil, &unitError{class: class, retries: retries, err: err}
		}

		retries++
		delay := Delay(class, retries, retryAfter(err))
		metrics.DrawRetriesTotal.WithLabelValues(string(class)).Inc()
		log.Debug(LogMsgRetryingUnit,
			"unit", unit,
			"class", class,
			"retry", retries,
			"delay", delay,
			"error", err)

		if err := s.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func (s *service) handleFatal(ctx context.Context, results []domain.DrawUnitOutcome, unit, amount int, ue *unitError) (*domain.BatchOutcome, error) {
	log := logger.FromContext(ctx)

	if s.fatalPolicy == FatalPolicyPartial {
		warning := fmt.Sprintf(WarningFormatFatal, unit, amount, ue.err.Error())
		metrics.DrawBatchesTotal.WithLabelValues(metrics.OutcomePartial).Inc()
		log.Warn(LogMsgBatchPartial, "unit", unit, "completed", len(results), "class", ue.class, "error", ue.err)
		return domain.NewBatchOutcome(results, amount, &warning), nil
	}

	metrics.DrawBatchesTotal.WithLabelValues(metrics.OutcomeFatal).Inc()
	log.Warn(LogMsgBatchAbortedFatal, "unit", unit, "requested", amount, "error", ue.err)
	if len(results) > 0 {
		// These pulls are committed upstream even though the caller never sees them.
		itemIDs := make([]string, 0, len(results))
		for _, r := range results {
			itemIDs = append(itemIDs, r.ItemID)
		}
		log.Warn(LogMsgDiscardedCommitted, "count", len(results), "item_ids", itemIDs)
	}

	return nil, &FatalError{
		Unit:      unit,
		Requested: amount,
		Discarded: results,
		Err:       ue.err,
	}
}

func exhaustedWarning(unit, amount int, ue *unitError) string {
	if ue.retries == 0 {
		return fmt.Sprintf(WarningFormatUnclassified, unit, amount, ue.err.Error())
	}
	return fmt.Sprintf(WarningFormatExhausted, unit, amount, ue.retries, ue.err.Error())
}
