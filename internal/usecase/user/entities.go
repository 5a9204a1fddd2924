package user

import (
	"context"

	domainUser "usermgmt-service/internal/domain/user"
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type AddressInput struct {
	Line1    string
	Line2    *string
	District *string
	State    *string
	PinCode  *string
	Country  *string
}

// Hasher turns a validated plaintext password into its stored form.
type Hasher interface {
	Hash(plain string) (string, error)
}

// Cache holds serialized user views. Errors are logged and never fail a request.
type Cache interface {
	Get(ctx context.Context, id uint64) (*domainUser.View, bool, error)
	Set(ctx context.Context, v *domainUser.View) error
	Invalidate(ctx context.Context, ids ...uint64) error
}

// ImageStore persists image bytes and returns the reference saved on the user.
type ImageStore interface {
	PutUserImage(ctx context.Context, userID uint64, contentType string, body []byte) (string, error)
}
