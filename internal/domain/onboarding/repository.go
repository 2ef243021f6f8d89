package onboarding

import "context"

// MutateFunc receives the latest stored record (a fresh zero-state record when
// exists is false) and returns the record to store. Returning an error aborts
// the write.
type MutateFunc func(current Record, exists bool) (Record, error)

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (Record, bool, error)
	// GetOrCreate returns the stored record, inserting the zero-state record
	// first when none exists.
	GetOrCreate(ctx context.Context, userID string) (Record, error)
	// Update applies fn to the latest stored value and writes the result as one
	// unit per user, so concurrent updates compose instead of clobbering.
	Update(ctx context.Context, userID string, fn MutateFunc) (Record, error)
	ListCompleted(ctx context.Context, limit int) ([]Record, error)
}
