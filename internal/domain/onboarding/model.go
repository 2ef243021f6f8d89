package onboarding

import (
	"slices"
	"time"
)

// Wizard steps in display order.
const (
	StepIntroduction = iota
	StepSkillLevel
	StepGoals
	StepLearningStyle
	StepPreferences
	StepProfileSetup
	StepCompletion

	StepCount = StepCompletion + 1
	LastStep  = StepCount - 1
)

const (
	MinTimeCommitment = 1
	MaxTimeCommitment = 40
	MaxBioLength      = 500

	DefaultTimeCommitment = 5
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	default:
		return false
	}
}

type LearningStyle string

const (
	StyleAIMentorship LearningStyle = "ai-mentorship"
	StyleCodeReview   LearningStyle = "code-review"
	StyleBoth         LearningStyle = "both"
)

func (s LearningStyle) Valid() bool {
	switch s {
	case StyleAIMentorship, StyleCodeReview, StyleBoth:
		return true
	default:
		return false
	}
}

type LearningPace string

const (
	PaceRelaxed   LearningPace = "relaxed"
	PaceModerate  LearningPace = "moderate"
	PaceIntensive LearningPace = "intensive"
)

func (p LearningPace) Valid() bool {
	switch p {
	case PaceRelaxed, PaceModerate, PaceIntensive:
		return true
	default:
		return false
	}
}

type CommunicationStyle string

const (
	CommunicationConcise  CommunicationStyle = "concise"
	CommunicationDetailed CommunicationStyle = "detailed"
	CommunicationBalanced CommunicationStyle = "balanced"
)

func (c CommunicationStyle) Valid() bool {
	switch c {
	case CommunicationConcise, CommunicationDetailed, CommunicationBalanced:
		return true
	default:
		return false
	}
}

type ProfileVisibility string

const (
	VisibilityPublic      ProfileVisibility = "public"
	VisibilityPrivate     ProfileVisibility = "private"
	VisibilityFriendsOnly ProfileVisibility = "friends-only"
)

func (v ProfileVisibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityFriendsOnly:
		return true
	default:
		return false
	}
}

// Profile holds the answers collected by the wizard. Empty strings mean unset.
type Profile struct {
	SkillLevel         SkillLevel
	PrimaryLanguage    string
	Goals              []string
	LearningStyle      LearningStyle
	PreferredLanguages []string
	LearningPace       LearningPace
	TimeCommitment     int
	CommunicationStyle CommunicationStyle
	Bio                string
	Avatar             string
	ProfileVisibility  ProfileVisibility
}

// DefaultProfile is the initial draft: nothing answered, defaults applied.
func DefaultProfile() Profile {
	return Profile{
		Goals:              []string{},
		PreferredLanguages: []string{},
		LearningPace:       PaceModerate,
		TimeCommitment:     DefaultTimeCommitment,
		CommunicationStyle: CommunicationBalanced,
		ProfileVisibility:  VisibilityPublic,
	}
}

const SkipLanguage = "javascript"

// SkipProfile is written when a user skips the wizard.
func SkipProfile() Profile {
	p := DefaultProfile()
	p.SkillLevel = SkillBeginner
	p.PrimaryLanguage = SkipLanguage
	p.PreferredLanguages = []string{SkipLanguage}
	p.Goals = []string{"Learn programming basics"}
	p.LearningStyle = StyleBoth
	return p
}

func (p Profile) Clone() Profile {
	out := p
	out.Goals = cloneStrings(p.Goals)
	out.PreferredLanguages = cloneStrings(p.PreferredLanguages)
	return out
}

// Recommendations is written once on completion and never changed afterwards.
type Recommendations struct {
	WelcomeMessage         string   `json:"welcome_message"`
	SuggestedChallenges    []string `json:"suggested_challenges"`
	SuggestedLearningPaths []string `json:"suggested_learning_paths"`
	SuggestedFeatures      []string `json:"suggested_features"`
}

func (r *Recommendations) Clone() *Recommendations {
	if r == nil {
		return nil
	}
	return &Recommendations{
		WelcomeMessage:         r.WelcomeMessage,
		SuggestedChallenges:    cloneStrings(r.SuggestedChallenges),
		SuggestedLearningPaths: cloneStrings(r.SuggestedLearningPaths),
		SuggestedFeatures:      cloneStrings(r.SuggestedFeatures),
	}
}

type Record struct {
	UserID          string
	CurrentStep     int
	Profile         Profile
	IsCompleted     bool
	CompletedAt     *time.Time
	Skipped         bool
	Recommendations *Recommendations
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewRecord returns the zero-state record created lazily for a user.
func NewRecord(userID string, now time.Time) Record {
	return Record{
		UserID:      userID,
		CurrentStep: StepIntroduction,
		Profile:     DefaultProfile(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r Record) Clone() Record {
	out := r
	out.Profile = r.Profile.Clone()
	out.Recommendations = r.Recommendations.Clone()
	if r.CompletedAt != nil {
		completedAt := *r.CompletedAt
		out.CompletedAt = &completedAt
	}
	return out
}

// MarkCompleted pins the record to the last step.
func (r *Record) MarkCompleted(now time.Time) {
	completedAt := now
	r.CurrentStep = LastStep
	r.IsCompleted = true
	r.CompletedAt = &completedAt
}

// CompletionPercentage is round(100 * step / StepCount), clamped to [0, 100].
func CompletionPercentage(step int) int {
	if step <= 0 {
		return 0
	}
	pct := (200*step + StepCount) / (2 * StepCount)
	return min(pct, 100)
}

// ClampStep keeps a step index inside the wizard range.
func ClampStep(step int) int {
	return max(StepIntroduction, min(step, LastStep))
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
