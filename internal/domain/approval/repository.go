package approval

import (
	"context"

	"usermgmt-service/internal/domain/status"
	"usermgmt-service/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, a *Approval) error
	// Save writes the scalar columns only; links go through Attach/Detach
	Save(ctx context.Context, a *Approval) error

	// Get by id with users (and their addresses/roles) preloaded
	GetByID(ctx context.Context, id uint64) (*Approval, error)
	// Same as GetByID but takes a row lock for the enclosing tx
	GetByIDForUpdate(ctx context.Context, id uint64) (*Approval, error)
	// List, optionally filtered on the primary status
	List(ctx context.Context, st *status.Status) ([]Approval, error)

	AttachUsers(ctx context.Context, a *Approval, users ...user.User) error
	DetachUser(ctx context.Context, a *Approval, u *user.User) error
}
