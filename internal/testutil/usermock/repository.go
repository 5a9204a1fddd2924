package usermock

import (
	"context"

	"usermgmt-service/internal/domain/address"
	"usermgmt-service/internal/domain/role"
	domain "usermgmt-service/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op; reads default to context.Canceled.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	SaveFn            func(ctx context.Context, u *domain.User) error
	DeleteFn          func(ctx context.Context, id uint64) error
	GetByIDFn         func(ctx context.Context, id uint64) (*domain.User, error)
	GetByIDsFn        func(ctx context.Context, ids []uint64) ([]domain.User, error)
	GetByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	GetByPhoneFn      func(ctx context.Context, phone string) (*domain.User, error)
	ListFn            func(ctx context.Context, limit, offset int) ([]domain.User, error)
	AttachRolesFn     func(ctx context.Context, u *domain.User, roles ...role.Role) error
	AttachAddressesFn func(ctx context.Context, u *domain.User, addrs ...address.Address) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDs(ctx context.Context, ids []uint64) ([]domain.User, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	return nil, context.Canceled
}

func (m *Repo) AttachRoles(ctx context.Context, u *domain.User, roles ...role.Role) error {
	if m.AttachRolesFn != nil {
		return m.AttachRolesFn(ctx, u, roles...)
	}
	return nil
}

func (m *Repo) AttachAddresses(ctx context.Context, u *domain.User, addrs ...address.Address) error {
	if m.AttachAddressesFn != nil {
		return m.AttachAddressesFn(ctx, u, addrs...)
	}
	return nil
}
