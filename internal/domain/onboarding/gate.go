package onboarding

import "strings"

// CanProceed reports whether the answers collected so far allow leaving step.
// The step only selects the predicate; the result depends on nothing else.
func CanProceed(step int, p Profile) bool {
	switch step {
	case StepIntroduction, StepProfileSetup, StepCompletion:
		return true
	case StepSkillLevel:
		return p.SkillLevel != "" && strings.TrimSpace(p.PrimaryLanguage) != ""
	case StepGoals:
		return len(p.Goals) > 0
	case StepLearningStyle:
		return p.LearningStyle != ""
	case StepPreferences:
		return len(p.PreferredLanguages) > 0 && p.TimeCommitment > 0
	default:
		return false
	}
}

// StepName is used in logs and by the wizard CLI.
func StepName(step int) string {
	switch step {
	case StepIntroduction:
		return "introduction"
	case StepSkillLevel:
		return "skill-level"
	case StepGoals:
		return "goals"
	case StepLearningStyle:
		return "learning-style"
	case StepPreferences:
		return "preferences"
	case StepProfileSetup:
		return "profile-setup"
	case StepCompletion:
		return "completion"
	default:
		return "unknown"
	}
}
