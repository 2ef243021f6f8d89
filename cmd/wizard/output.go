package main

import (
	"fmt"
	"io"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/personalization"
	"github.com/riskibarqy/skillpath-onboarding/internal/usecase"
	"gopkg.in/yaml.v3"
)

type profileView struct {
	SkillLevel         string   `yaml:"skillLevel,omitempty"`
	PrimaryLanguage    string   `yaml:"primaryLanguage,omitempty"`
	Goals              []string `yaml:"goals"`
	LearningStyle      string   `yaml:"learningStyle,omitempty"`
	PreferredLanguages []string `yaml:"preferredLanguages"`
	LearningPace       string   `yaml:"learningPace"`
	TimeCommitment     int      `yaml:"timeCommitment"`
	CommunicationStyle string   `yaml:"communicationStyle"`
	Bio                string   `yaml:"bio,omitempty"`
	Avatar             string   `yaml:"avatar,omitempty"`
	ProfileVisibility  string   `yaml:"profileVisibility"`
}

type recommendationsView struct {
	WelcomeMessage         string   `yaml:"welcomeMessage"`
	SuggestedChallenges    []string `yaml:"suggestedChallenges"`
	SuggestedLearningPaths []string `yaml:"suggestedLearningPaths"`
	SuggestedFeatures      []string `yaml:"suggestedFeatures"`
}

type recordView struct {
	UserID          string               `yaml:"userId,omitempty"`
	CurrentStep     int                  `yaml:"currentStep"`
	IsCompleted     bool                 `yaml:"isCompleted"`
	Skipped         bool                 `yaml:"skipped,omitempty"`
	Profile         profileView          `yaml:"profile"`
	Recommendations *recommendationsView `yaml:"recommendations,omitempty"`
}

type statusView struct {
	CompletionPercentage int        `yaml:"completionPercentage"`
	Record               recordView `yaml:"onboarding"`
}

type progressView struct {
	CurrentStep          int `yaml:"currentStep"`
	CompletionPercentage int `yaml:"completionPercentage"`
}

type moduleView struct {
	Title          string `yaml:"title"`
	Type           string `yaml:"type"`
	EstimatedHours int    `yaml:"estimatedHours"`
}

type learningPathView struct {
	EstimatedDurationWeeks int          `yaml:"estimatedDurationWeeks"`
	SkillLevel             string       `yaml:"skillLevel"`
	LearningPace           string       `yaml:"learningPace"`
	WeeklyHours            int          `yaml:"weeklyHours"`
	TotalHours             int          `yaml:"totalHours"`
	Modules                []moduleView `yaml:"modules"`
}

type completionView struct {
	Recommendations recommendationsView `yaml:"recommendations"`
	LearningPath    learningPathView    `yaml:"learningPath"`
}

func render(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render output: %w", err)
	}
	return enc.Close()
}

func newProfileView(p onboarding.Profile) profileView {
	return profileView{
		SkillLevel:         string(p.SkillLevel),
		PrimaryLanguage:    p.PrimaryLanguage,
		Goals:              nonNil(p.Goals),
		LearningStyle:      string(p.LearningStyle),
		PreferredLanguages: nonNil(p.PreferredLanguages),
		LearningPace:       string(p.LearningPace),
		TimeCommitment:     p.TimeCommitment,
		CommunicationStyle: string(p.CommunicationStyle),
		Bio:                p.Bio,
		Avatar:             p.Avatar,
		ProfileVisibility:  string(p.ProfileVisibility),
	}
}

func newRecommendationsView(r onboarding.Recommendations) recommendationsView {
	return recommendationsView{
		WelcomeMessage:         r.WelcomeMessage,
		SuggestedChallenges:    nonNil(r.SuggestedChallenges),
		SuggestedLearningPaths: nonNil(r.SuggestedLearningPaths),
		SuggestedFeatures:      nonNil(r.SuggestedFeatures),
	}
}

func newRecordView(rec onboarding.Record) recordView {
	out := recordView{
		UserID:      rec.UserID,
		CurrentStep: rec.CurrentStep,
		IsCompleted: rec.IsCompleted,
		Skipped:     rec.Skipped,
		Profile:     newProfileView(rec.Profile),
	}
	if rec.Recommendations != nil {
		recs := newRecommendationsView(*rec.Recommendations)
		out.Recommendations = &recs
	}
	return out
}

func newStatusView(s usecase.Status) statusView {
	return statusView{
		CompletionPercentage: s.CompletionPercentage,
		Record:               newRecordView(s.Record),
	}
}

func newLearningPathView(p personalization.LearningPath) learningPathView {
	modules := make([]moduleView, 0, len(p.Modules))
	for _, m := range p.Modules {
		modules = append(modules, moduleView{
			Title:          m.Title,
			Type:           string(m.Type),
			EstimatedHours: m.EstimatedHours,
		})
	}
	return learningPathView{
		EstimatedDurationWeeks: p.EstimatedDurationWeeks,
		SkillLevel:             string(p.SkillLevel),
		LearningPace:           string(p.LearningPace),
		WeeklyHours:            p.WeeklyHours,
		TotalHours:             p.TotalHours,
		Modules:                modules,
	}
}

func newCompletionView(c usecase.Completion) completionView {
	return completionView{
		Recommendations: newRecommendationsView(c.Recommendations),
		LearningPath:    newLearningPathView(c.LearningPath),
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
