package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/skillpath-onboarding/internal/domain/preference"
)

type PreferenceRepository struct {
	mu    sync.RWMutex
	items map[string]preference.Record
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{items: make(map[string]preference.Record)}
}

func (r *PreferenceRepository) GetByUserID(_ context.Context, userID string) (preference.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[userID]
	if !ok {
		return preference.Record{}, false, nil
	}
	return clonePreference(rec), true, nil
}

func (r *PreferenceRepository) Upsert(_ context.Context, rec preference.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[rec.UserID] = clonePreference(rec)
	return nil
}

func clonePreference(rec preference.Record) preference.Record {
	copied := rec
	copied.Languages = append([]preference.Language(nil), rec.Languages...)
	copied.Goals = append([]preference.Goal(nil), rec.Goals...)
	return copied
}
