package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
)

const (
	defaultWarmLimit   = 500
	defaultWarmWorkers = 4
	maxWarmWorkers     = 32
)

type WarmInput struct {
	Limit      int
	MaxWorkers int
}

type WarmResult struct {
	CandidateCount int   `json:"candidateCount"`
	WarmedCount    int   `json:"warmedCount"`
	FailedCount    int   `json:"failedCount"`
	WorkerCount    int   `json:"workerCount"`
	DurationMs     int64 `json:"durationMs"`
}

// WarmLearningPaths precomputes the cached learning path of completed users.
// Per-user load failures are counted, not returned.
func (s *OnboardingService) WarmLearningPaths(ctx context.Context, input WarmInput) (result WarmResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OnboardingService.WarmLearningPaths", "")
	defer func() { endUsecaseSpan(span, err) }()

	if input.Limit < 0 || input.MaxWorkers < 0 {
		return WarmResult{}, fmt.Errorf("%w: limit and max_workers must be >= 0", ErrInvalidInput)
	}
	limit := input.Limit
	if limit == 0 {
		limit = defaultWarmLimit
	}
	workerCount := input.MaxWorkers
	if workerCount == 0 {
		workerCount = s.warmWorkers
	}
	workerCount = min(workerCount, maxWarmWorkers)

	start := s.now()
	records, err := s.records.ListCompleted(ctx, limit)
	if err != nil {
		return WarmResult{}, storeFailure(err, "list completed onboarding records")
	}

	result = WarmResult{
		CandidateCount: len(records),
		WorkerCount:    workerCount,
	}
	if len(records) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var warmed atomic.Int32
	var failed atomic.Int32
	var workers sync.WaitGroup
	for _, rec := range records {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := s.warmOne(ctx, rec); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "warm learning path failed", "user_id", rec.UserID, "error", err)
				return
			}
			warmed.Add(1)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return WarmResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.WarmedCount = int(warmed.Load())
	result.FailedCount = int(failed.Load())
	result.DurationMs = s.now().Sub(start).Milliseconds()

	s.logger.InfoContext(ctx, "learning path warm finished",
		"candidates", result.CandidateCount,
		"warmed", result.WarmedCount,
		"failed", result.FailedCount,
		"duration", time.Duration(result.DurationMs)*time.Millisecond,
	)
	return result, nil
}

func (s *OnboardingService) warmOne(ctx context.Context, rec onboarding.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.cachedLearningPath(ctx, rec.UserID)
	return err
}
