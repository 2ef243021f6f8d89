package onboardingapi

import (
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/personalization"
)

type envelope[T any] struct {
	APIVersion string     `json:"apiVersion"`
	Data       T          `json:"data"`
	Error      *errorBody `json:"error"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors"`
}

type errorItem struct {
	Domain   string `json:"domain"`
	Reason   string `json:"reason"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

type recordWire struct {
	UserID             string               `json:"userId"`
	CurrentStep        int                  `json:"currentStep"`
	SkillLevel         string               `json:"skillLevel"`
	PrimaryLanguage    string               `json:"primaryLanguage"`
	Goals              []string             `json:"goals"`
	LearningStyle      string               `json:"learningStyle"`
	PreferredLanguages []string             `json:"preferredLanguages"`
	LearningPace       string               `json:"learningPace"`
	TimeCommitment     int                  `json:"timeCommitment"`
	CommunicationStyle string               `json:"communicationStyle"`
	Bio                string               `json:"bio"`
	Avatar             string               `json:"avatar"`
	ProfileVisibility  string               `json:"profileVisibility"`
	IsCompleted        bool                 `json:"isCompleted"`
	CompletedAt        string               `json:"completedAt"`
	Skipped            bool                 `json:"skipped"`
	Recommendations    *recommendationsWire `json:"recommendations"`
	CreatedAt          string               `json:"createdAt"`
	UpdatedAt          string               `json:"updatedAt"`
}

type recommendationsWire struct {
	WelcomeMessage         string   `json:"welcomeMessage"`
	SuggestedChallenges    []string `json:"suggestedChallenges"`
	SuggestedLearningPaths []string `json:"suggestedLearningPaths"`
	SuggestedFeatures      []string `json:"suggestedFeatures"`
}

type statusWire struct {
	IsCompleted          bool       `json:"isCompleted"`
	CurrentStep          int        `json:"currentStep"`
	CompletionPercentage int        `json:"completionPercentage"`
	Data                 recordWire `json:"data"`
}

type progressWire struct {
	CurrentStep          int        `json:"currentStep"`
	CompletionPercentage int        `json:"completionPercentage"`
	Data                 recordWire `json:"data"`
}

type completionWire struct {
	Recommendations recommendationsWire `json:"recommendations"`
	LearningPath    learningPathWire    `json:"learningPath"`
	Data            recordWire          `json:"data"`
}

type learningPathWire struct {
	EstimatedDurationWeeks int          `json:"estimatedDurationWeeks"`
	Modules                []moduleWire `json:"modules"`
	SkillLevel             string       `json:"skillLevel"`
	LearningPace           string       `json:"learningPace"`
	WeeklyHours            int          `json:"weeklyHours"`
	TotalHours             int          `json:"totalHours"`
}

type moduleWire struct {
	Title          string `json:"title"`
	Type           string `json:"type"`
	EstimatedHours int    `json:"estimatedHours"`
}

// encodePatch renders Set fields as values, Cleared fields as null and omits
// Unchanged fields.
func encodePatch(p onboarding.Patch) map[string]any {
	out := make(map[string]any, 12)
	putField(out, "currentStep", p.CurrentStep)
	putField(out, "skillLevel", p.SkillLevel)
	putField(out, "primaryLanguage", p.PrimaryLanguage)
	putField(out, "goals", p.Goals)
	putField(out, "learningStyle", p.LearningStyle)
	putField(out, "preferredLanguages", p.PreferredLanguages)
	putField(out, "learningPace", p.LearningPace)
	putField(out, "timeCommitment", p.TimeCommitment)
	putField(out, "communicationStyle", p.CommunicationStyle)
	putField(out, "bio", p.Bio)
	putField(out, "avatar", p.Avatar)
	putField(out, "profileVisibility", p.ProfileVisibility)
	return out
}

func putField[T any](out map[string]any, key string, f onboarding.Field[T]) {
	switch {
	case f.IsSet():
		out[key] = f.Value()
	case f.IsCleared():
		out[key] = nil
	}
}

func (w recordWire) toRecord() onboarding.Record {
	rec := onboarding.Record{
		UserID:      w.UserID,
		CurrentStep: w.CurrentStep,
		Profile: onboarding.Profile{
			SkillLevel:         onboarding.SkillLevel(w.SkillLevel),
			PrimaryLanguage:    w.PrimaryLanguage,
			Goals:              w.Goals,
			LearningStyle:      onboarding.LearningStyle(w.LearningStyle),
			PreferredLanguages: w.PreferredLanguages,
			LearningPace:       onboarding.LearningPace(w.LearningPace),
			TimeCommitment:     w.TimeCommitment,
			CommunicationStyle: onboarding.CommunicationStyle(w.CommunicationStyle),
			Bio:                w.Bio,
			Avatar:             w.Avatar,
			ProfileVisibility:  onboarding.ProfileVisibility(w.ProfileVisibility),
		},
		IsCompleted: w.IsCompleted,
		Skipped:     w.Skipped,
		CreatedAt:   parseTime(w.CreatedAt),
		UpdatedAt:   parseTime(w.UpdatedAt),
	}
	if completedAt := parseTime(w.CompletedAt); !completedAt.IsZero() {
		rec.CompletedAt = &completedAt
	}
	if w.Recommendations != nil {
		recs := w.Recommendations.toRecommendations()
		rec.Recommendations = &recs
	}
	return rec
}

func (w recommendationsWire) toRecommendations() onboarding.Recommendations {
	return onboarding.Recommendations{
		WelcomeMessage:         w.WelcomeMessage,
		SuggestedChallenges:    w.SuggestedChallenges,
		SuggestedLearningPaths: w.SuggestedLearningPaths,
		SuggestedFeatures:      w.SuggestedFeatures,
	}
}

func (w learningPathWire) toLearningPath() personalization.LearningPath {
	modules := make([]personalization.Module, 0, len(w.Modules))
	for _, m := range w.Modules {
		modules = append(modules, personalization.Module{
			Title:          m.Title,
			Type:           personalization.ModuleType(m.Type),
			EstimatedHours: m.EstimatedHours,
		})
	}
	return personalization.LearningPath{
		EstimatedDurationWeeks: w.EstimatedDurationWeeks,
		Modules:                modules,
		SkillLevel:             onboarding.SkillLevel(w.SkillLevel),
		LearningPace:           onboarding.LearningPace(w.LearningPace),
		WeeklyHours:            w.WeeklyHours,
		TotalHours:             w.TotalHours,
	}
}

func parseTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
