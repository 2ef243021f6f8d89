package preference

import (
	"strings"
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
)

type Language struct {
	Code      string `json:"code"`
	IsPrimary bool   `json:"is_primary"`
}

type Goal struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// Record is the normalized learning-preferences view derived from a completed
// onboarding record.
type Record struct {
	UserID             string
	SkillLevel         onboarding.SkillLevel
	Languages          []Language
	LearningPace       onboarding.LearningPace
	WeeklyHours        int
	LearningStyle      onboarding.LearningStyle
	Goals              []Goal
	CommunicationStyle onboarding.CommunicationStyle
	ProfileVisibility  onboarding.ProfileVisibility
	UpdatedAt          time.Time
}

// FromOnboarding normalizes a record: the primary language comes first and is
// flagged, languages are deduplicated case-insensitively, and goals are
// prioritized in stored order starting at 1.
func FromOnboarding(rec onboarding.Record, now time.Time) Record {
	p := rec.Profile

	languages := make([]Language, 0, len(p.PreferredLanguages)+1)
	seen := make(map[string]struct{}, len(p.PreferredLanguages)+1)
	addLanguage := func(code string, primary bool) {
		code = strings.TrimSpace(code)
		key := strings.ToLower(code)
		if code == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		languages = append(languages, Language{Code: code, IsPrimary: primary})
	}
	addLanguage(p.PrimaryLanguage, true)
	for _, code := range p.PreferredLanguages {
		addLanguage(code, false)
	}

	goals := make([]Goal, 0, len(p.Goals))
	for _, name := range p.Goals {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		goals = append(goals, Goal{Name: name, Priority: len(goals) + 1})
	}

	return Record{
		UserID:             rec.UserID,
		SkillLevel:         p.SkillLevel,
		Languages:          languages,
		LearningPace:       p.LearningPace,
		WeeklyHours:        p.TimeCommitment,
		LearningStyle:      p.LearningStyle,
		Goals:              goals,
		CommunicationStyle: p.CommunicationStyle,
		ProfileVisibility:  p.ProfileVisibility,
		UpdatedAt:          now,
	}
}
