package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	qb "github.com/riskibarqy/skillpath-onboarding/internal/platform/querybuilder"
)

const onboardingTable = "onboarding_profiles"

type onboardingRecordTableModel struct {
	UserID             string                                 `db:"user_id"`
	CurrentStep        int                                    `db:"current_step"`
	SkillLevel         sql.NullString                         `db:"skill_level"`
	PrimaryLanguage    sql.NullString                         `db:"primary_language"`
	Goals              pq.StringArray                         `db:"goals"`
	LearningStyle      sql.NullString                         `db:"learning_style"`
	PreferredLanguages pq.StringArray                         `db:"preferred_languages"`
	LearningPace       string                                 `db:"learning_pace"`
	TimeCommitment     int                                    `db:"time_commitment"`
	CommunicationStyle string                                 `db:"communication_style"`
	Bio                string                                 `db:"bio"`
	Avatar             sql.NullString                         `db:"avatar"`
	ProfileVisibility  string                                 `db:"profile_visibility"`
	IsCompleted        bool                                   `db:"is_completed"`
	CompletedAt        *time.Time                             `db:"completed_at"`
	Skipped            bool                                   `db:"skipped"`
	Recommendations    jsonColumn[onboarding.Recommendations] `db:"recommendations"`
	CreatedAt          time.Time                              `db:"created_at"`
	UpdatedAt          time.Time                              `db:"updated_at"`
}

var onboardingColumns = qb.Columns(onboardingRecordTableModel{})

func onboardingRowFromRecord(rec onboarding.Record) onboardingRecordTableModel {
	p := rec.Profile
	row := onboardingRecordTableModel{
		UserID:             rec.UserID,
		CurrentStep:        rec.CurrentStep,
		SkillLevel:         nullString(string(p.SkillLevel)),
		PrimaryLanguage:    nullString(p.PrimaryLanguage),
		Goals:              stringArray(p.Goals),
		LearningStyle:      nullString(string(p.LearningStyle)),
		PreferredLanguages: stringArray(p.PreferredLanguages),
		LearningPace:       string(p.LearningPace),
		TimeCommitment:     p.TimeCommitment,
		CommunicationStyle: string(p.CommunicationStyle),
		Bio:                p.Bio,
		Avatar:             nullString(p.Avatar),
		ProfileVisibility:  string(p.ProfileVisibility),
		IsCompleted:        rec.IsCompleted,
		CompletedAt:        rec.CompletedAt,
		Skipped:            rec.Skipped,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
	if rec.Recommendations != nil {
		row.Recommendations = newJSONColumn(*rec.Recommendations.Clone())
	}
	return row
}

func onboardingRecordFromRow(row onboardingRecordTableModel) onboarding.Record {
	rec := onboarding.Record{
		UserID:      row.UserID,
		CurrentStep: onboarding.ClampStep(row.CurrentStep),
		Profile: onboarding.Profile{
			SkillLevel:         onboarding.SkillLevel(row.SkillLevel.String),
			PrimaryLanguage:    row.PrimaryLanguage.String,
			Goals:              append([]string{}, row.Goals...),
			LearningStyle:      onboarding.LearningStyle(row.LearningStyle.String),
			PreferredLanguages: append([]string{}, row.PreferredLanguages...),
			LearningPace:       onboarding.LearningPace(row.LearningPace),
			TimeCommitment:     row.TimeCommitment,
			CommunicationStyle: onboarding.CommunicationStyle(row.CommunicationStyle),
			Bio:                row.Bio,
			Avatar:             row.Avatar.String,
			ProfileVisibility:  onboarding.ProfileVisibility(row.ProfileVisibility),
		},
		IsCompleted: row.IsCompleted,
		CompletedAt: row.CompletedAt,
		Skipped:     row.Skipped,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Recommendations.Valid {
		recs := row.Recommendations.V
		rec.Recommendations = recs.Clone()
	}
	return rec
}

func stringArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(append([]string(nil), values...))
}
