package onboarding

import "testing"

func TestCanProceed(t *testing.T) {
	complete := Profile{
		SkillLevel:         SkillIntermediate,
		PrimaryLanguage:    "go",
		Goals:              []string{"backend services"},
		LearningStyle:      StyleCodeReview,
		PreferredLanguages: []string{"go"},
		TimeCommitment:     5,
	}

	tests := []struct {
		name   string
		step   int
		mutate func(*Profile)
		want   bool
	}{
		{name: "introduction always passes", step: StepIntroduction, mutate: func(p *Profile) { *p = Profile{} }, want: true},
		{name: "skill level answered", step: StepSkillLevel, mutate: func(*Profile) {}, want: true},
		{name: "skill level missing", step: StepSkillLevel, mutate: func(p *Profile) { p.SkillLevel = "" }, want: false},
		{name: "primary language blank", step: StepSkillLevel, mutate: func(p *Profile) { p.PrimaryLanguage = "  " }, want: false},
		{name: "goals present", step: StepGoals, mutate: func(*Profile) {}, want: true},
		{name: "goals empty", step: StepGoals, mutate: func(p *Profile) { p.Goals = []string{} }, want: false},
		{name: "learning style missing", step: StepLearningStyle, mutate: func(p *Profile) { p.LearningStyle = "" }, want: false},
		{name: "preferences answered", step: StepPreferences, mutate: func(*Profile) {}, want: true},
		{name: "preferred languages empty", step: StepPreferences, mutate: func(p *Profile) { p.PreferredLanguages = nil }, want: false},
		{name: "time commitment zero", step: StepPreferences, mutate: func(p *Profile) { p.TimeCommitment = 0 }, want: false},
		{name: "profile setup optional", step: StepProfileSetup, mutate: func(p *Profile) { *p = Profile{} }, want: true},
		{name: "completion always passes", step: StepCompletion, mutate: func(p *Profile) { *p = Profile{} }, want: true},
		{name: "negative step", step: -1, mutate: func(*Profile) {}, want: false},
		{name: "step past the end", step: StepCount, mutate: func(*Profile) {}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profile := complete.Clone()
			tc.mutate(&profile)

			first := CanProceed(tc.step, profile)
			second := CanProceed(tc.step, profile)
			if first != second {
				t.Fatalf("expected pure result, got %v then %v", first, second)
			}
			if first != tc.want {
				t.Fatalf("CanProceed(%d) = %v, want %v", tc.step, first, tc.want)
			}
		})
	}
}

func TestCompletionPercentage(t *testing.T) {
	cases := map[int]int{
		-2: 0,
		0:  0,
		1:  14,
		2:  29,
		3:  43,
		4:  57,
		5:  71,
		6:  86,
		7:  100,
		12: 100,
	}
	for step, want := range cases {
		if got := CompletionPercentage(step); got != want {
			t.Fatalf("CompletionPercentage(%d) = %d, want %d", step, got, want)
		}
	}
}
