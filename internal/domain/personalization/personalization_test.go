package personalization

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
)

func scenarioProfile() onboarding.Profile {
	p := onboarding.DefaultProfile()
	p.SkillLevel = onboarding.SkillBeginner
	p.PrimaryLanguage = "python"
	p.Goals = []string{"problem-solving"}
	p.LearningStyle = onboarding.StyleBoth
	p.PreferredLanguages = []string{"python"}
	p.LearningPace = onboarding.PaceModerate
	p.TimeCommitment = 5
	return p
}

func TestGenerateLearningPath_BeginnerModerate(t *testing.T) {
	path := GenerateLearningPath(scenarioProfile())

	if path.EstimatedDurationWeeks != 12 {
		t.Fatalf("expected 12 weeks, got %d", path.EstimatedDurationWeeks)
	}
	want := []Module{
		{Title: "python Fundamentals", Type: ModuleCourse, EstimatedHours: 8},
		{Title: "problem-solving", Type: ModuleProject, EstimatedHours: 6},
	}
	if diff := cmp.Diff(want, path.Modules); diff != "" {
		t.Fatalf("unexpected modules (-want +got):\n%s", diff)
	}
	if path.TotalHours != 14 || path.WeeklyHours != 5 {
		t.Fatalf("unexpected totals: total=%d weekly=%d", path.TotalHours, path.WeeklyHours)
	}
}

func TestGenerateLearningPath_NonBeginnerHasNoCourse(t *testing.T) {
	p := scenarioProfile()
	p.SkillLevel = onboarding.SkillAdvanced
	p.Goals = []string{"ship a compiler", "write a database"}

	path := GenerateLearningPath(p)
	if len(path.Modules) != 2 {
		t.Fatalf("expected 2 project modules, got %+v", path.Modules)
	}
	for i, m := range path.Modules {
		if m.Type != ModuleProject || m.Title != p.Goals[i] {
			t.Fatalf("module %d out of order: %+v", i, m)
		}
	}
}

func TestEstimateDurationWeeks(t *testing.T) {
	tests := []struct {
		name  string
		pace  onboarding.LearningPace
		hours int
		want  int
	}{
		{name: "intensive high commitment", pace: onboarding.PaceIntensive, hours: 12, want: 7},
		{name: "relaxed low commitment", pace: onboarding.PaceRelaxed, hours: 3, want: 23},
		{name: "relaxed normal", pace: onboarding.PaceRelaxed, hours: 5, want: 18},
		{name: "moderate at ten", pace: onboarding.PaceModerate, hours: 10, want: 10},
		{name: "intensive low", pace: onboarding.PaceIntensive, hours: 1, want: 11},
		{name: "unknown pace", pace: "", hours: 5, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDurationWeeks(tt.pace, tt.hours); got != tt.want {
				t.Fatalf("EstimateDurationWeeks(%q, %d) = %d, want %d", tt.pace, tt.hours, got, tt.want)
			}
		})
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	p := scenarioProfile()
	first := Recommend(p)
	second := Recommend(p.Clone())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("recommendations differ across runs (-first +second):\n%s", diff)
	}
}

func TestWelcomeMessage(t *testing.T) {
	p := scenarioProfile()
	got := WelcomeMessage(p)
	want := "Welcome to your coding journey! We're excited to help you build a strong foundation. " +
		"You'll get the best of both worlds with AI mentorship and code reviews. " +
		"Let's start with python! " +
		"We've tailored your experience to help you achieve your goals."
	if got != want {
		t.Fatalf("unexpected welcome message:\n got: %q\nwant: %q", got, want)
	}

	p.Goals = nil
	if strings.Contains(WelcomeMessage(p), "achieve your goals") {
		t.Fatalf("goals fragment should be omitted without goals")
	}
}

func TestSuggestChallenges(t *testing.T) {
	p := scenarioProfile()
	p.SkillLevel = onboarding.SkillIntermediate
	p.PrimaryLanguage = "go"

	got := SuggestChallenges(p)
	want := []string{
		"data-structures-go",
		"sorting-algorithms-go",
		"oop-concepts-go",
		"api-integration-go",
		"testing-basics-go",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected challenges (-want +got):\n%s", diff)
	}
}

func TestSuggestLearningPaths(t *testing.T) {
	tests := []struct {
		name  string
		skill onboarding.SkillLevel
		goals []string
		want  []string
	}{
		{
			name:  "defaults only",
			skill: onboarding.SkillBeginner,
			goals: []string{"problem-solving"},
			want:  []string{"programming-fundamentals", "problem-solving-basics"},
		},
		{
			name:  "case insensitive and multi match",
			skill: onboarding.SkillIntermediate,
			goals: []string{"Build WEB apps"},
			want: []string{
				"web-development-fundamentals",
				"mobile-development-basics",
				"intermediate-algorithms",
				"software-design-principles",
			},
		},
		{
			name:  "deduplicated and truncated",
			skill: onboarding.SkillAdvanced,
			goals: []string{"frontend", "web", "backend server", "data science", "algorithm interview", "mobile"},
			want: []string{
				"web-development-fundamentals",
				"backend-development-path",
				"data-science-foundations",
				"algorithm-interview-prep",
				"mobile-development-basics",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scenarioProfile()
			p.SkillLevel = tt.skill
			p.Goals = tt.goals
			if diff := cmp.Diff(tt.want, SuggestLearningPaths(p)); diff != "" {
				t.Fatalf("unexpected paths (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSuggestFeatures(t *testing.T) {
	tests := []struct {
		style onboarding.LearningStyle
		want  []string
	}{
		{
			style: onboarding.StyleAIMentorship,
			want:  []string{"ai-tutor", "interactive-lessons", "concept-explanations", "progress-tracking", "achievement-system", "coding-playground"},
		},
		{
			style: onboarding.StyleCodeReview,
			want:  []string{"code-challenges", "peer-review", "automated-feedback", "progress-tracking", "achievement-system", "coding-playground"},
		},
		{
			style: onboarding.StyleBoth,
			want:  []string{"ai-tutor", "interactive-lessons", "concept-explanations", "code-challenges", "peer-review", "automated-feedback"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SuggestFeatures(tt.style)); diff != "" {
				t.Fatalf("unexpected features (-want +got):\n%s", diff)
			}
		})
	}
}
