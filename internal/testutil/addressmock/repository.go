package addressmock

import (
	"context"

	domain "usermgmt-service/internal/domain/address"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn  func(ctx context.Context, a *domain.Address) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Address, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Address, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
