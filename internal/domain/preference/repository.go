package preference

import "context"

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (Record, bool, error)
	Upsert(ctx context.Context, record Record) error
}
