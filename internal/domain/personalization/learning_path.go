package personalization

import (
	"math"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
)

type ModuleType string

const (
	ModuleCourse  ModuleType = "course"
	ModuleProject ModuleType = "project"
)

const (
	baseWeeks             = 12.0
	fundamentalsHours     = 8
	goalProjectHours      = 6
	highCommitmentHours   = 10
	lowCommitmentHours    = 3
	highCommitmentAdjust  = 0.8
	lowCommitmentAdjust   = 1.3
	defaultCommitmentRate = 1.0
)

var paceMultiplier = map[onboarding.LearningPace]float64{
	onboarding.PaceRelaxed:   1.5,
	onboarding.PaceModerate:  1.0,
	onboarding.PaceIntensive: 0.7,
}

type Module struct {
	Title          string     `json:"title"`
	Type           ModuleType `json:"type"`
	EstimatedHours int        `json:"estimated_hours"`
}

type LearningPath struct {
	EstimatedDurationWeeks int                     `json:"estimated_duration_weeks"`
	Modules                []Module                `json:"modules"`
	SkillLevel             onboarding.SkillLevel   `json:"skill_level"`
	LearningPace           onboarding.LearningPace `json:"learning_pace"`
	WeeklyHours            int                     `json:"weekly_hours"`
	TotalHours             int                     `json:"total_hours"`
}

// GenerateLearningPath builds the module plan and duration estimate for a
// completed profile.
func GenerateLearningPath(p onboarding.Profile) LearningPath {
	modules := make([]Module, 0, len(p.Goals)+1)
	if p.SkillLevel == onboarding.SkillBeginner {
		modules = append(modules, Module{
			Title:          p.PrimaryLanguage + " Fundamentals",
			Type:           ModuleCourse,
			EstimatedHours: fundamentalsHours,
		})
	}
	for _, goal := range p.Goals {
		modules = append(modules, Module{
			Title:          goal,
			Type:           ModuleProject,
			EstimatedHours: goalProjectHours,
		})
	}

	total := 0
	for _, m := range modules {
		total += m.EstimatedHours
	}

	return LearningPath{
		EstimatedDurationWeeks: EstimateDurationWeeks(p.LearningPace, p.TimeCommitment),
		Modules:                modules,
		SkillLevel:             p.SkillLevel,
		LearningPace:           p.LearningPace,
		WeeklyHours:            p.TimeCommitment,
		TotalHours:             total,
	}
}

// EstimateDurationWeeks is round(12 × pace multiplier × time adjustment), at
// least one week. Unknown paces count as moderate.
func EstimateDurationWeeks(pace onboarding.LearningPace, weeklyHours int) int {
	multiplier, ok := paceMultiplier[pace]
	if !ok {
		multiplier = paceMultiplier[onboarding.PaceModerate]
	}

	adjust := defaultCommitmentRate
	switch {
	case weeklyHours >= highCommitmentHours:
		adjust = highCommitmentAdjust
	case weeklyHours <= lowCommitmentHours:
		adjust = lowCommitmentAdjust
	}

	weeks := int(math.Round(baseWeeks * multiplier * adjust))
	return max(weeks, 1)
}
