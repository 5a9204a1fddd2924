package rolemock

import (
	"context"

	domain "usermgmt-service/internal/domain/role"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn    func(ctx context.Context, r *domain.Role) error
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.Role, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Role, error)
	ListFn      func(ctx context.Context) ([]domain.Role, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Role) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Role, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Role, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
