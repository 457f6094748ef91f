package company

import "context"

// Repository defines company persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, c *Company) error
	Get(ctx context.Context, id int64) (*Company, error)
	List(ctx context.Context) ([]Overview, error)
	Update(ctx context.Context, c *Company) error
}
