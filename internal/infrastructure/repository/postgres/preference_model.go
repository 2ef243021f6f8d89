package postgres

import (
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/preference"
	qb "github.com/riskibarqy/skillpath-onboarding/internal/platform/querybuilder"
)

const preferenceTable = "learning_preferences"

type preferenceTableModel struct {
	UserID             string                            `db:"user_id"`
	SkillLevel         string                            `db:"skill_level"`
	Languages          jsonColumn[[]preference.Language] `db:"languages"`
	LearningPace       string                            `db:"learning_pace"`
	WeeklyHours        int                               `db:"weekly_hours"`
	LearningStyle      string                            `db:"learning_style"`
	Goals              jsonColumn[[]preference.Goal]     `db:"goals"`
	CommunicationStyle string                            `db:"communication_style"`
	ProfileVisibility  string                            `db:"profile_visibility"`
	UpdatedAt          time.Time                         `db:"updated_at"`
}

var preferenceColumns = qb.Columns(preferenceTableModel{})

func preferenceRowFromRecord(rec preference.Record) preferenceTableModel {
	return preferenceTableModel{
		UserID:             rec.UserID,
		SkillLevel:         string(rec.SkillLevel),
		Languages:          newJSONColumn(append([]preference.Language{}, rec.Languages...)),
		LearningPace:       string(rec.LearningPace),
		WeeklyHours:        rec.WeeklyHours,
		LearningStyle:      string(rec.LearningStyle),
		Goals:              newJSONColumn(append([]preference.Goal{}, rec.Goals...)),
		CommunicationStyle: string(rec.CommunicationStyle),
		ProfileVisibility:  string(rec.ProfileVisibility),
		UpdatedAt:          rec.UpdatedAt,
	}
}

func preferenceRecordFromRow(row preferenceTableModel) preference.Record {
	return preference.Record{
		UserID:             row.UserID,
		SkillLevel:         onboarding.SkillLevel(row.SkillLevel),
		Languages:          row.Languages.V,
		LearningPace:       onboarding.LearningPace(row.LearningPace),
		WeeklyHours:        row.WeeklyHours,
		LearningStyle:      onboarding.LearningStyle(row.LearningStyle),
		Goals:              row.Goals.V,
		CommunicationStyle: onboarding.CommunicationStyle(row.CommunicationStyle),
		ProfileVisibility:  onboarding.ProfileVisibility(row.ProfileVisibility),
		UpdatedAt:          row.UpdatedAt,
	}
}
