package preference

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
)

func TestFromOnboarding(t *testing.T) {
	now := time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC)
	rec := onboarding.NewRecord("user-7", now)
	rec.Profile.SkillLevel = onboarding.SkillIntermediate
	rec.Profile.PrimaryLanguage = "Go"
	rec.Profile.PreferredLanguages = []string{"go", "rust", " ", "Rust", "python"}
	rec.Profile.Goals = []string{"backend apis", "", "interview prep"}
	rec.Profile.LearningStyle = onboarding.StyleCodeReview
	rec.Profile.TimeCommitment = 12

	got := FromOnboarding(rec, now)

	wantLanguages := []Language{
		{Code: "Go", IsPrimary: true},
		{Code: "rust"},
		{Code: "python"},
	}
	if diff := cmp.Diff(wantLanguages, got.Languages); diff != "" {
		t.Fatalf("unexpected languages (-want +got):\n%s", diff)
	}

	wantGoals := []Goal{
		{Name: "backend apis", Priority: 1},
		{Name: "interview prep", Priority: 2},
	}
	if diff := cmp.Diff(wantGoals, got.Goals); diff != "" {
		t.Fatalf("unexpected goals (-want +got):\n%s", diff)
	}

	if got.WeeklyHours != 12 || got.LearningPace != onboarding.PaceModerate {
		t.Fatalf("unexpected pace/hours: %s/%d", got.LearningPace, got.WeeklyHours)
	}
	if got.CommunicationStyle != onboarding.CommunicationBalanced || got.ProfileVisibility != onboarding.VisibilityPublic {
		t.Fatalf("expected defaults to carry over, got %s/%s", got.CommunicationStyle, got.ProfileVisibility)
	}
	if !got.UpdatedAt.Equal(now) || got.UserID != "user-7" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
}
