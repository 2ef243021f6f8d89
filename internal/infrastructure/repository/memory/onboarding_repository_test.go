package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/sourcegraph/conc"
)

func TestOnboardingRepository_GetOrCreateIsLazyAndStable(t *testing.T) {
	repo := NewOnboardingRepository()
	ctx := context.Background()

	if _, ok, _ := repo.GetByUserID(ctx, "u1"); ok {
		t.Fatalf("expected no record before first access")
	}

	first, err := repo.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if first.CurrentStep != onboarding.StepIntroduction || first.IsCompleted {
		t.Fatalf("unexpected zero-state record: %+v", first)
	}

	second, err := repo.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected existing record to be returned")
	}
}

func TestOnboardingRepository_UpdateErrorLeavesRecord(t *testing.T) {
	repo := NewOnboardingRepository()
	ctx := context.Background()
	boom := errors.New("boom")

	if _, err := repo.Update(ctx, "u1", func(cur onboarding.Record, exists bool) (onboarding.Record, error) {
		cur = onboarding.NewRecord("u1", time.Now())
		cur.CurrentStep = 2
		return cur, nil
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	_, err := repo.Update(ctx, "u1", func(cur onboarding.Record, _ bool) (onboarding.Record, error) {
		return onboarding.Record{}, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected mutate error, got %v", err)
	}

	rec, _, _ := repo.GetByUserID(ctx, "u1")
	if rec.CurrentStep != 2 {
		t.Fatalf("failed update must not change the record, got step %d", rec.CurrentStep)
	}
}

func TestOnboardingRepository_UpdateSerializesPerUser(t *testing.T) {
	repo := NewOnboardingRepository()
	ctx := context.Background()

	var wg conc.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Go(func() {
			_, _ = repo.Update(ctx, "u1", func(cur onboarding.Record, exists bool) (onboarding.Record, error) {
				if !exists {
					cur = onboarding.NewRecord("u1", time.Now())
				}
				cur.Profile.TimeCommitment++
				return cur, nil
			})
		})
	}
	wg.Wait()

	rec, _, _ := repo.GetByUserID(ctx, "u1")
	if want := onboarding.DefaultTimeCommitment + 50; rec.Profile.TimeCommitment != want {
		t.Fatalf("lost updates: got %d want %d", rec.Profile.TimeCommitment, want)
	}
}

func TestOnboardingRepository_ListCompleted(t *testing.T) {
	repo := NewOnboardingRepository()
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		updatedAt := base.Add(time.Duration(i) * time.Hour)
		completed := id != "b"
		_, _ = repo.Update(ctx, id, func(cur onboarding.Record, _ bool) (onboarding.Record, error) {
			cur = onboarding.NewRecord(id, updatedAt)
			if completed {
				cur.MarkCompleted(updatedAt)
			}
			return cur, nil
		})
	}

	got, err := repo.ListCompleted(ctx, 10)
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(got) != 2 || got[0].UserID != "c" || got[1].UserID != "a" {
		t.Fatalf("unexpected completed records: %+v", got)
	}

	limited, _ := repo.ListCompleted(ctx, 1)
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}
}
