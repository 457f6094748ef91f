package contact

import "context"

// Repository defines contact persistence operations needed by the service.
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	Get(ctx context.Context, id int64) (*Contact, error)
	List(ctx context.Context) ([]Contact, error)
	Update(ctx context.Context, c *Contact) error
}
