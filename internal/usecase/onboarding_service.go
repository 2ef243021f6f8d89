package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/personalization"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/preference"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/cache"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/logging"
)

type Status struct {
	IsCompleted          bool
	CurrentStep          int
	CompletionPercentage int
	Record               onboarding.Record
}

type Progress struct {
	CurrentStep          int
	CompletionPercentage int
	Record               onboarding.Record
}

type Completion struct {
	Recommendations onboarding.Recommendations
	LearningPath    personalization.LearningPath
	Record          onboarding.Record
}

type OnboardingService struct {
	records     onboarding.Repository
	preferences preference.Repository
	paths       *cache.Loader[personalization.LearningPath]
	logger      *logging.Logger
	now         func() time.Time
	warmWorkers int
}

func NewOnboardingService(
	records onboarding.Repository,
	preferences preference.Repository,
	pathStore cache.Store,
	logger *logging.Logger,
) *OnboardingService {
	if logger == nil {
		logger = logging.Default()
	}
	return &OnboardingService{
		records:     records,
		preferences: preferences,
		paths:       cache.NewLoader[personalization.LearningPath](pathStore),
		logger:      logger,
		now:         time.Now,
		warmWorkers: defaultWarmWorkers,
	}
}

// WithWarmWorkers sets the worker count used by WarmLearningPaths when the
// caller does not ask for one. Non-positive values keep the current default.
func (s *OnboardingService) WithWarmWorkers(n int) *OnboardingService {
	if n > 0 {
		s.warmWorkers = n
	}
	return s
}

func learningPathCacheKey(userID string) string {
	return "learning_path:" + userID
}

// GetStatus returns the user's record, creating the zero-state record on first access.
func (s *OnboardingService) GetStatus(ctx context.Context, userID string) (status Status, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OnboardingService.GetStatus", userID)
	defer func() { endUsecaseSpan(span, err) }()

	userID, err = normalizeUserID(userID)
	if err != nil {
		return Status{}, err
	}

	rec, err := s.records.GetOrCreate(ctx, userID)
	if err != nil {
		return Status{}, storeFailure(err, "get or create onboarding record")
	}

	return Status{
		IsCompleted:          rec.IsCompleted,
		CurrentStep:          rec.CurrentStep,
		CompletionPercentage: onboarding.CompletionPercentage(rec.CurrentStep),
		Record:               rec,
	}, nil
}

// SaveProgress merges a partial update into the latest stored record.
func (s *OnboardingService) SaveProgress(ctx context.Context, userID string, patch onboarding.Patch) (progress Progress, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OnboardingService.SaveProgress", userID)
	defer func() { endUsecaseSpan(span, err) }()

	userID, err = normalizeUserID(userID)
	if err != nil {
		return Progress{}, err
	}
	if err := patch.Validate(); err != nil {
		return Progress{}, err
	}

	now := s.now().UTC()
	rec, err := s.records.Update(ctx, userID, func(current onboarding.Record, exists bool) (onboarding.Record, error) {
		if !exists {
			current = onboarding.NewRecord(userID, now)
		}
		next := patch.Apply(current)
		next.UpdatedAt = now
		return next, nil
	})
	if err != nil {
		return Progress{}, storeFailure(err, "save onboarding progress")
	}
	s.invalidateLearningPath(ctx, userID)

	return Progress{
		CurrentStep:          rec.CurrentStep,
		CompletionPercentage: onboarding.CompletionPercentage(rec.CurrentStep),
		Record:               rec,
	}, nil
}

// Complete merges the final answers, derives recommendations and writes them
// in one atomic update, then propagates the normalized preferences.
//
// On a record that already carries recommendations the patch is ignored and
// the stored record is returned unchanged. A skipped record is completed
// normally.
func (s *OnboardingService) Complete(ctx context.Context, userID string, patch onboarding.Patch) (completion Completion, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OnboardingService.Complete", userID)
	defer func() { endUsecaseSpan(span, err) }()

	userID, err = normalizeUserID(userID)
	if err != nil {
		return Completion{}, err
	}
	if err := patch.Validate(); err != nil {
		return Completion{}, err
	}

	now := s.now().UTC()
	pathGen := s.paths.Generation(learningPathCacheKey(userID))
	var rejected error
	rec, err := s.records.Update(ctx, userID, func(current onboarding.Record, exists bool) (onboarding.Record, error) {
		if !exists {
			current = onboarding.NewRecord(userID, now)
		}
		if current.IsCompleted && !current.Skipped && current.Recommendations != nil {
			return current, nil
		}
		next := patch.Apply(current)
		next.UpdatedAt = now

		if err := onboarding.RequireCompletionFields(next.Profile); err != nil {
			rejected = err
			return onboarding.Record{}, err
		}
		next.Skipped = false
		next.MarkCompleted(now)
		recs := personalization.Recommend(next.Profile)
		next.Recommendations = &recs
		return next, nil
	})
	if rejected != nil {
		return Completion{}, rejected
	}
	if err != nil {
		return Completion{}, storeFailure(err, "complete onboarding")
	}

	path := personalization.GenerateLearningPath(rec.Profile)
	if err := s.paths.Prime(ctx, learningPathCacheKey(userID), pathGen, path); err != nil {
		s.logger.WarnContext(ctx, "prime learning path cache failed", "user_id", userID, "error", err)
	}

	if err := s.preferences.Upsert(ctx, preference.FromOnboarding(rec, now)); err != nil {
		return Completion{}, storeFailure(err, "upsert learning preferences")
	}

	s.logger.InfoContext(ctx, "onboarding completed",
		"user_id", userID,
		"skill_level", rec.Profile.SkillLevel,
		"learning_paths", len(rec.Recommendations.SuggestedLearningPaths),
	)

	return Completion{
		Recommendations: *rec.Recommendations.Clone(),
		LearningPath:    path,
		Record:          rec,
	}, nil
}

// Skip completes the wizard with the fixed default profile. No
// recommendations are derived and preferences are left untouched.
func (s *OnboardingService) Skip(ctx context.Context, userID string) (rec onboarding.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OnboardingService.Skip", userID)
	defer func() { endUsecaseSpan(span, err) }()

	userID, err = normalizeUserID(userID)
	if err != nil {
		return onboarding.Record{}, err
	}

	now := s.now().UTC()
	rec, err = s.records.Update(ctx, userID, func(current onboarding.Record, exists bool) (onboarding.Record, error) {
		if !exists {
			current = onboarding.NewRecord(userID, now)
		}
		if current.IsCompleted {
			return current, nil
		}
		next := current.Clone()
		next.Profile = onboarding.SkipProfile()
		next.Skipped = true
		next.Recommendations = nil
		next.MarkCompleted(now)
		next.UpdatedAt = now
		return next, nil
	})
	if err != nil {
		return onboarding.Record{}, storeFailure(err, "skip onboarding")
	}
	s.invalidateLearningPath(ctx, userID)

	return rec, nil
}

// GetLearningPath computes the plan for a completed user, served from cache
// when available.
func (s *OnboardingService) GetLearningPath(ctx context.Context, userID string) (path personalization.LearningPath, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OnboardingService.GetLearningPath", userID)
	defer func() { endUsecaseSpan(span, err) }()

	userID, err = normalizeUserID(userID)
	if err != nil {
		return personalization.LearningPath{}, err
	}

	return s.cachedLearningPath(ctx, userID)
}

// cachedLearningPath serves the cached plan or derives it from the stored
// record. A plan derived from a record that changed mid-load is returned but
// not cached.
func (s *OnboardingService) cachedLearningPath(ctx context.Context, userID string) (personalization.LearningPath, error) {
	return s.paths.GetOrLoad(ctx, learningPathCacheKey(userID), func(ctx context.Context) (personalization.LearningPath, error) {
		rec, exists, err := s.records.GetByUserID(ctx, userID)
		if err != nil {
			return personalization.LearningPath{}, storeFailure(err, "get onboarding record")
		}
		if !exists || !rec.IsCompleted {
			return personalization.LearningPath{}, fmt.Errorf("%w: complete onboarding before requesting a learning path", ErrNotReady)
		}
		return personalization.GenerateLearningPath(rec.Profile), nil
	})
}

func (s *OnboardingService) invalidateLearningPath(ctx context.Context, userID string) {
	if err := s.paths.Invalidate(ctx, learningPathCacheKey(userID)); err != nil {
		s.logger.WarnContext(ctx, "invalidate learning path cache failed", "user_id", userID, "error", err)
	}
}

func normalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	return userID, nil
}
