package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	qb "github.com/riskibarqy/skillpath-onboarding/internal/platform/querybuilder"
)

type OnboardingRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewOnboardingRepository(db *sqlx.DB) *OnboardingRepository {
	return &OnboardingRepository{db: db, now: time.Now}
}

func (r *OnboardingRepository) GetByUserID(ctx context.Context, userID string) (onboarding.Record, bool, error) {
	query, args, err := qb.Select(onboardingColumns...).
		From(onboardingTable).
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return onboarding.Record{}, false, fmt.Errorf("build get onboarding record query: %w", err)
	}

	var row onboardingRecordTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return onboarding.Record{}, false, nil
		}
		return onboarding.Record{}, false, fmt.Errorf("get onboarding record: %w", err)
	}

	return onboardingRecordFromRow(row), true, nil
}

func (r *OnboardingRepository) GetOrCreate(ctx context.Context, userID string) (onboarding.Record, error) {
	if _, err := r.insertZeroState(ctx, r.db, userID); err != nil {
		return onboarding.Record{}, err
	}

	rec, exists, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return onboarding.Record{}, err
	}
	if !exists {
		return onboarding.Record{}, fmt.Errorf("get or create onboarding record: row missing after insert")
	}
	return rec, nil
}

// Update locks the user's row for the duration of fn so concurrent writers
// always merge into the latest stored value.
func (r *OnboardingRepository) Update(ctx context.Context, userID string, fn onboarding.MutateFunc) (onboarding.Record, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return onboarding.Record{}, fmt.Errorf("begin tx for onboarding update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	created, err := r.insertZeroState(ctx, tx, userID)
	if err != nil {
		return onboarding.Record{}, err
	}

	query, args, err := qb.Select(onboardingColumns...).
		From(onboardingTable).
		Where(qb.Eq("user_id", userID)).
		ForUpdate().
		ToSQL()
	if err != nil {
		return onboarding.Record{}, fmt.Errorf("build lock onboarding record query: %w", err)
	}

	var row onboardingRecordTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return onboarding.Record{}, fmt.Errorf("lock onboarding record: %w", err)
	}

	current := onboardingRecordFromRow(row)
	if created {
		current = onboarding.Record{}
	}
	next, err := fn(current, !created)
	if err != nil {
		return onboarding.Record{}, err
	}
	next.UserID = userID
	if next.CreatedAt.IsZero() {
		next.CreatedAt = row.CreatedAt
	}

	query, args, err = qb.UpdateModel(onboardingTable, onboardingRowFromRecord(next), []string{"user_id", "created_at"}, qb.Eq("user_id", userID))
	if err != nil {
		return onboarding.Record{}, fmt.Errorf("build update onboarding record query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return onboarding.Record{}, fmt.Errorf("update onboarding record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return onboarding.Record{}, fmt.Errorf("commit onboarding update: %w", err)
	}
	return next, nil
}

func (r *OnboardingRepository) ListCompleted(ctx context.Context, limit int) ([]onboarding.Record, error) {
	query, args, err := qb.Select(onboardingColumns...).
		From(onboardingTable).
		Where(qb.Eq("is_completed", true)).
		OrderBy("updated_at DESC", "user_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list completed onboarding query: %w", err)
	}

	var rows []onboardingRecordTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list completed onboarding records: %w", err)
	}

	out := make([]onboarding.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, onboardingRecordFromRow(row))
	}
	return out, nil
}

// insertZeroState creates the lazily initialized record and reports whether
// this call created it.
func (r *OnboardingRepository) insertZeroState(ctx context.Context, exec sqlx.ExecerContext, userID string) (bool, error) {
	zero := onboarding.NewRecord(userID, r.now().UTC())
	query, args, err := qb.InsertModel(onboardingTable, onboardingRowFromRecord(zero), "ON CONFLICT (user_id) DO NOTHING")
	if err != nil {
		return false, fmt.Errorf("build insert onboarding record query: %w", err)
	}

	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("insert onboarding record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert onboarding record rows affected: %w", err)
	}
	return affected == 1, nil
}
