package deal

import "context"

// Repository defines deal persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, d *Deal) error
	Get(ctx context.Context, id int64) (*Deal, error)
	List(ctx context.Context) ([]Deal, error)
	Update(ctx context.Context, d *Deal) error
}
