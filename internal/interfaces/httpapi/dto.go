package httpapi

import (
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/personalization"
	"github.com/riskibarqy/skillpath-onboarding/internal/usecase"
)

// onboardingPatchRequest is the body of progress and complete. An omitted key
// leaves the stored answer unchanged and null clears it.
type onboardingPatchRequest struct {
	CurrentStep        onboarding.Field[int]                           `json:"currentStep"`
	SkillLevel         onboarding.Field[onboarding.SkillLevel]         `json:"skillLevel"`
	PrimaryLanguage    onboarding.Field[string]                        `json:"primaryLanguage"`
	Goals              onboarding.Field[[]string]                      `json:"goals"`
	LearningStyle      onboarding.Field[onboarding.LearningStyle]      `json:"learningStyle"`
	PreferredLanguages onboarding.Field[[]string]                      `json:"preferredLanguages"`
	LearningPace       onboarding.Field[onboarding.LearningPace]       `json:"learningPace"`
	TimeCommitment     onboarding.Field[int]                           `json:"timeCommitment"`
	CommunicationStyle onboarding.Field[onboarding.CommunicationStyle] `json:"communicationStyle"`
	Bio                onboarding.Field[string]                        `json:"bio"`
	Avatar             onboarding.Field[string]                        `json:"avatar"`
	ProfileVisibility  onboarding.Field[onboarding.ProfileVisibility]  `json:"profileVisibility"`
}

func (r onboardingPatchRequest) toPatch() onboarding.Patch {
	return onboarding.Patch{
		CurrentStep:        r.CurrentStep,
		SkillLevel:         r.SkillLevel,
		PrimaryLanguage:    r.PrimaryLanguage,
		Goals:              r.Goals,
		LearningStyle:      r.LearningStyle,
		PreferredLanguages: r.PreferredLanguages,
		LearningPace:       r.LearningPace,
		TimeCommitment:     r.TimeCommitment,
		CommunicationStyle: r.CommunicationStyle,
		Bio:                r.Bio,
		Avatar:             r.Avatar,
		ProfileVisibility:  r.ProfileVisibility,
	}
}

type warmLearningPathsRequest struct {
	Limit      int `json:"limit" validate:"gte=0,lte=10000"`
	MaxWorkers int `json:"maxWorkers" validate:"gte=0,lte=32"`
}

type onboardingRecordDTO struct {
	UserID             string              `json:"userId"`
	CurrentStep        int                 `json:"currentStep"`
	SkillLevel         string              `json:"skillLevel,omitempty"`
	PrimaryLanguage    string              `json:"primaryLanguage,omitempty"`
	Goals              []string            `json:"goals"`
	LearningStyle      string              `json:"learningStyle,omitempty"`
	PreferredLanguages []string            `json:"preferredLanguages"`
	LearningPace       string              `json:"learningPace"`
	TimeCommitment     int                 `json:"timeCommitment"`
	CommunicationStyle string              `json:"communicationStyle"`
	Bio                string              `json:"bio"`
	Avatar             string              `json:"avatar,omitempty"`
	ProfileVisibility  string              `json:"profileVisibility"`
	IsCompleted        bool                `json:"isCompleted"`
	CompletedAt        string              `json:"completedAt,omitempty"`
	Skipped            bool                `json:"skipped"`
	Recommendations    *recommendationsDTO `json:"recommendations,omitempty"`
	CreatedAt          string              `json:"createdAt"`
	UpdatedAt          string              `json:"updatedAt"`
}

type recommendationsDTO struct {
	WelcomeMessage         string   `json:"welcomeMessage"`
	SuggestedChallenges    []string `json:"suggestedChallenges"`
	SuggestedLearningPaths []string `json:"suggestedLearningPaths"`
	SuggestedFeatures      []string `json:"suggestedFeatures"`
}

type statusDTO struct {
	IsCompleted          bool                `json:"isCompleted"`
	CurrentStep          int                 `json:"currentStep"`
	CompletionPercentage int                 `json:"completionPercentage"`
	Data                 onboardingRecordDTO `json:"data"`
}

type progressDTO struct {
	CurrentStep          int                 `json:"currentStep"`
	CompletionPercentage int                 `json:"completionPercentage"`
	Data                 onboardingRecordDTO `json:"data"`
}

type completionDTO struct {
	Recommendations recommendationsDTO  `json:"recommendations"`
	LearningPath    learningPathDTO     `json:"learningPath"`
	Data            onboardingRecordDTO `json:"data"`
}

type learningPathDTO struct {
	EstimatedDurationWeeks int                     `json:"estimatedDurationWeeks"`
	Modules                []learningPathModuleDTO `json:"modules"`
	SkillLevel             string                  `json:"skillLevel"`
	LearningPace           string                  `json:"learningPace"`
	WeeklyHours            int                     `json:"weeklyHours"`
	TotalHours             int                     `json:"totalHours"`
}

type learningPathModuleDTO struct {
	Title          string `json:"title"`
	Type           string `json:"type"`
	EstimatedHours int    `json:"estimatedHours"`
}

func recordToDTO(rec onboarding.Record) onboardingRecordDTO {
	p := rec.Profile
	out := onboardingRecordDTO{
		UserID:             rec.UserID,
		CurrentStep:        rec.CurrentStep,
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
		IsCompleted:        rec.IsCompleted,
		Skipped:            rec.Skipped,
		CreatedAt:          formatTime(rec.CreatedAt),
		UpdatedAt:          formatTime(rec.UpdatedAt),
	}
	if rec.CompletedAt != nil {
		out.CompletedAt = formatTime(*rec.CompletedAt)
	}
	if rec.Recommendations != nil {
		dto := recommendationsToDTO(*rec.Recommendations)
		out.Recommendations = &dto
	}
	return out
}

func recommendationsToDTO(r onboarding.Recommendations) recommendationsDTO {
	return recommendationsDTO{
		WelcomeMessage:         r.WelcomeMessage,
		SuggestedChallenges:    nonNil(r.SuggestedChallenges),
		SuggestedLearningPaths: nonNil(r.SuggestedLearningPaths),
		SuggestedFeatures:      nonNil(r.SuggestedFeatures),
	}
}

func learningPathToDTO(path personalization.LearningPath) learningPathDTO {
	modules := make([]learningPathModuleDTO, 0, len(path.Modules))
	for _, m := range path.Modules {
		modules = append(modules, learningPathModuleDTO{
			Title:          m.Title,
			Type:           string(m.Type),
			EstimatedHours: m.EstimatedHours,
		})
	}
	return learningPathDTO{
		EstimatedDurationWeeks: path.EstimatedDurationWeeks,
		Modules:                modules,
		SkillLevel:             string(path.SkillLevel),
		LearningPace:           string(path.LearningPace),
		WeeklyHours:            path.WeeklyHours,
		TotalHours:             path.TotalHours,
	}
}

func statusToDTO(s usecase.Status) statusDTO {
	return statusDTO{
		IsCompleted:          s.IsCompleted,
		CurrentStep:          s.CurrentStep,
		CompletionPercentage: s.CompletionPercentage,
		Data:                 recordToDTO(s.Record),
	}
}

func progressToDTO(p usecase.Progress) progressDTO {
	return progressDTO{
		CurrentStep:          p.CurrentStep,
		CompletionPercentage: p.CompletionPercentage,
		Data:                 recordToDTO(p.Record),
	}
}

func completionToDTO(c usecase.Completion) completionDTO {
	return completionDTO{
		Recommendations: recommendationsToDTO(c.Recommendations),
		LearningPath:    learningPathToDTO(c.LearningPath),
		Data:            recordToDTO(c.Record),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
