package user

import (
	"context"

	"usermgmt-service/internal/domain/address"
	"usermgmt-service/internal/domain/role"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint64) error

	// Getters preload addresses and roles
	GetByID(ctx context.Context, id uint64) (*User, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]User, error)

	// Link table writes (user_role, user_address)
	AttachRoles(ctx context.Context, u *User, roles ...role.Role) error
	AttachAddresses(ctx context.Context, u *User, addrs ...address.Address) error
}
