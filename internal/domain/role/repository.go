package role

import "context"

type Repository interface {
	Create(ctx context.Context, r *Role) error
	GetByID(ctx context.Context, id uint64) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]Role, error)
}
