package uow

import (
	"context"

	"usermgmt-service/internal/domain/address"
	"usermgmt-service/internal/domain/approval"
	"usermgmt-service/internal/domain/role"
	"usermgmt-service/internal/domain/user"
)

// Repos bundles repositories bound to one transaction.
type Repos struct {
	Users     user.Repository
	Roles     role.Repository
	Addresses address.Repository
	Approvals approval.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the approval row first, then pass it in
	WithinApprovalTx(ctx context.Context, approvalID uint64, fn func(r Repos, a *approval.Approval) error) error
}
