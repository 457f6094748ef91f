package activity

import (
	"context"
	"time"
)

// Repository defines activity persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, a *Activity) error
	Get(ctx context.Context, id int64) (*Activity, error)
	List(ctx context.Context) ([]Activity, error)
	SetCompleted(ctx context.Context, id int64, completed bool) error
	Counts(ctx context.Context, now time.Time) (Summary, error)
}
