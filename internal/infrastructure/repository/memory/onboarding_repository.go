package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
)

type OnboardingRepository struct {
	mu    sync.RWMutex
	items map[string]onboarding.Record
	locks sync.Map
	now   func() time.Time
}

func NewOnboardingRepository() *OnboardingRepository {
	return &OnboardingRepository{
		items: make(map[string]onboarding.Record),
		now:   time.Now,
	}
}

func (r *OnboardingRepository) GetByUserID(_ context.Context, userID string) (onboarding.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[userID]
	if !ok {
		return onboarding.Record{}, false, nil
	}
	return rec.Clone(), true, nil
}

func (r *OnboardingRepository) GetOrCreate(ctx context.Context, userID string) (onboarding.Record, error) {
	unlock := r.lockUser(userID)
	defer unlock()

	if rec, ok, _ := r.GetByUserID(ctx, userID); ok {
		return rec, nil
	}

	rec := onboarding.NewRecord(userID, r.now().UTC())
	r.store(rec)
	return rec.Clone(), nil
}

// Update serializes writers per user; readers never block on it.
func (r *OnboardingRepository) Update(ctx context.Context, userID string, fn onboarding.MutateFunc) (onboarding.Record, error) {
	unlock := r.lockUser(userID)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return onboarding.Record{}, err
	}

	current, exists, _ := r.GetByUserID(ctx, userID)
	next, err := fn(current, exists)
	if err != nil {
		return onboarding.Record{}, err
	}
	next.UserID = userID
	r.store(next)
	return next.Clone(), nil
}

func (r *OnboardingRepository) ListCompleted(_ context.Context, limit int) ([]onboarding.Record, error) {
	r.mu.RLock()
	out := make([]onboarding.Record, 0, len(r.items))
	for _, rec := range r.items {
		if rec.IsCompleted {
			out = append(out, rec.Clone())
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].UserID < out[j].UserID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *OnboardingRepository) store(rec onboarding.Record) {
	r.mu.Lock()
	r.items[rec.UserID] = rec.Clone()
	r.mu.Unlock()
}

func (r *OnboardingRepository) lockUser(userID string) func() {
	v, _ := r.locks.LoadOrStore(userID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
