package wizard

import (
	"context"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/usecase"
)

// Saver persists wizard state. *usecase.OnboardingService satisfies it for
// in-process use and onboardingapi.Client over HTTP.
type Saver interface {
	SaveProgress(ctx context.Context, userID string, patch onboarding.Patch) (usecase.Progress, error)
	Complete(ctx context.Context, userID string, patch onboarding.Patch) (usecase.Completion, error)
	Skip(ctx context.Context, userID string) (onboarding.Record, error)
}

// Snapshot is the draft state captured when a save is scheduled.
type Snapshot struct {
	UserID  string
	Step    int
	Profile onboarding.Profile
}

func (s Snapshot) Patch() onboarding.Patch {
	return onboarding.PatchFromProfile(s.Step, s.Profile)
}

// AnswersPatch carries the draft answers but leaves the stored step alone.
// Only navigation saves move the step.
func (s Snapshot) AnswersPatch() onboarding.Patch {
	patch := s.Patch()
	patch.CurrentStep = onboarding.Unchanged[int]()
	return patch
}
