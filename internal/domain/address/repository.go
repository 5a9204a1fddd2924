package address

import "context"

type Repository interface {
	Create(ctx context.Context, a *Address) error
	GetByID(ctx context.Context, id uint64) (*Address, error)
}
