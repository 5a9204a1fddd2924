package approvalmock

import (
	"context"

	domain "usermgmt-service/internal/domain/approval"
	"usermgmt-service/internal/domain/status"
	"usermgmt-service/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op; reads default to context.Canceled.
type Repo struct {
	CreateFn           func(ctx context.Context, a *domain.Approval) error
	SaveFn             func(ctx context.Context, a *domain.Approval) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Approval, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Approval, error)
	ListFn             func(ctx context.Context, st *status.Status) ([]domain.Approval, error)
	AttachUsersFn      func(ctx context.Context, a *domain.Approval, users ...user.User) error
	DetachUserFn       func(ctx context.Context, a *domain.Approval, u *user.User) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Approval) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Approval) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Approval, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Approval, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, st *status.Status) ([]domain.Approval, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, st)
	}
	return nil, context.Canceled
}

func (m *Repo) AttachUsers(ctx context.Context, a *domain.Approval, users ...user.User) error {
	if m.AttachUsersFn != nil {
		return m.AttachUsersFn(ctx, a, users...)
	}
	return nil
}

func (m *Repo) DetachUser(ctx context.Context, a *domain.Approval, u *user.User) error {
	if m.DetachUserFn != nil {
		return m.DetachUserFn(ctx, a, u)
	}
	return nil
}
