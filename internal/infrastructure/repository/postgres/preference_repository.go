package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/preference"
	qb "github.com/riskibarqy/skillpath-onboarding/internal/platform/querybuilder"
)

type PreferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID string) (preference.Record, bool, error) {
	query, args, err := qb.Select(preferenceColumns...).
		From(preferenceTable).
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return preference.Record{}, false, fmt.Errorf("build get learning preferences query: %w", err)
	}

	var row preferenceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return preference.Record{}, false, nil
		}
		return preference.Record{}, false, fmt.Errorf("get learning preferences: %w", err)
	}

	return preferenceRecordFromRow(row), true, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, rec preference.Record) error {
	query, args, err := qb.InsertModel(preferenceTable, preferenceRowFromRecord(rec), `ON CONFLICT (user_id)
DO UPDATE SET
    skill_level = EXCLUDED.skill_level,
    languages = EXCLUDED.languages,
    learning_pace = EXCLUDED.learning_pace,
    weekly_hours = EXCLUDED.weekly_hours,
    learning_style = EXCLUDED.learning_style,
    goals = EXCLUDED.goals,
    communication_style = EXCLUDED.communication_style,
    profile_visibility = EXCLUDED.profile_visibility,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert learning preferences query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert learning preferences: %w", err)
	}
	return nil
}
