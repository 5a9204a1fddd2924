package role

import (
	"context"
	"errors"

	domainRole "usermgmt-service/internal/domain/role"

	"gorm.io/gorm"
)

type Usecase struct{ repo domainRole.Repository }

func NewUsecase(r domainRole.Repository) *Usecase { return &Usecase{repo: r} }

// Create stores name verbatim; presence is checked at the request layer.
func (u *Usecase) Create(ctx context.Context, name string) (*domainRole.View, error) {
	// Block duplicates up front; the unique index still guards races.
	switch _, err := u.repo.GetByName(ctx, name); {
	case err == nil:
		return nil, domainRole.ErrDuplicate
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	r := domainRole.NewRole(name)
	if err := u.repo.Create(ctx, r); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainRole.ErrDuplicate
		}
		return nil, err
	}
	v := r.Serialize()
	return &v, nil
}

func (u *Usecase) List(ctx context.Context) ([]domainRole.View, error) {
	roles, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domainRole.View, 0, len(roles))
	for _, r := range roles {
		out = append(out, r.Serialize())
	}
	return out, nil
}
