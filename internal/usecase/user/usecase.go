package user

import (
	"context"
	"errors"
	"fmt"

	"usermgmt-service/internal/domain/address"
	"usermgmt-service/internal/domain/role"
	domainUser "usermgmt-service/internal/domain/user"
	"usermgmt-service/internal/domain/uow"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrImagesDisabled = errors.New("image storage is not configured")
	ErrEmptyImage     = errors.New("image body is empty")
)

type Usecase struct {
	users  domainUser.Repository
	uow    uow.UnitOfWork
	hasher Hasher
	cache  Cache
	images ImageStore
}

// NewUsecase: cache and images may be nil; reads then go straight to the store
// and UploadImage returns ErrImagesDisabled.
func NewUsecase(users domainUser.Repository, tx uow.UnitOfWork, hasher Hasher, cache Cache, images ImageStore) *Usecase {
	return &Usecase{users: users, uow: tx, hasher: hasher, cache: cache, images: images}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainUser.ErrNotFound
	}
	return err
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*domainUser.View, error) {
	usr, err := domainUser.NewUser(in.Name, in.Email, in.Phone, in.Password)
	if err != nil {
		return nil, err
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		switch _, err := r.Users.GetByEmail(ctx, usr.Email); {
		case err == nil:
			return domainUser.ErrDuplicateEmail
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		switch _, err := r.Users.GetByPhone(ctx, usr.Phone); {
		case err == nil:
			return domainUser.ErrDuplicatePhone
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		hash, err := u.hasher.Hash(usr.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		usr.SetPasswordHash(hash)
		return r.Users.Create(ctx, usr)
	})
	if err != nil {
		return nil, err
	}

	v := usr.Serialize()
	log.Info().Uint64("user_id", usr.ID).Msg("user registered")
	return &v, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domainUser.View, error) {
	if u.cache != nil {
		v, ok, err := u.cache.Get(ctx, id)
		if err != nil {
			log.Warn().Err(err).Uint64("user_id", id).Msg("user cache read failed")
		}
		if ok {
			return v, nil
		}
	}

	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	v := usr.Serialize()
	if u.cache != nil {
		if err := u.cache.Set(ctx, &v); err != nil {
			log.Warn().Err(err).Uint64("user_id", id).Msg("user cache write failed")
		}
	}
	return &v, nil
}

func (u *Usecase) List(ctx context.Context, limit, offset int) ([]domainUser.View, error) {
	users, err := u.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return domainUser.SerializeAll(users), nil
}

// AssignRoles links existing roles by name. Unknown names fail the whole call.
func (u *Usecase) AssignRoles(ctx context.Context, id uint64, names []string) (*domainUser.View, error) {
	var out domainUser.View
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		roles := make([]role.Role, 0, len(names))
		for _, n := range names {
			rl, err := r.Roles.GetByName(ctx, n)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", role.ErrNotFound, n)
			}
			if err != nil {
				return err
			}
			roles = append(roles, *rl)
		}
		if err := r.Users.AttachRoles(ctx, usr, roles...); err != nil {
			return err
		}
		fresh, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = fresh.Serialize()
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, id)
	return &out, nil
}

func (u *Usecase) AddAddress(ctx context.Context, id uint64, in AddressInput) (*domainUser.View, error) {
	var out domainUser.View
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		addr := address.NewAddress(in.Line1, in.Line2, in.District, in.State, in.PinCode, in.Country)
		if err := r.Addresses.Create(ctx, addr); err != nil {
			return err
		}
		if err := r.Users.AttachAddresses(ctx, usr, *addr); err != nil {
			return err
		}
		fresh, err := r.Users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = fresh.Serialize()
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, id)
	return &out, nil
}

func (u *Usecase) UploadImage(ctx context.Context, id uint64, contentType string, body []byte) (*domainUser.View, error) {
	if u.images == nil {
		return nil, ErrImagesDisabled
	}
	if len(body) == 0 {
		return nil, ErrEmptyImage
	}
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	ref, err := u.images.PutUserImage(ctx, id, contentType, body)
	if err != nil {
		return nil, err
	}
	usr.SetImage(ref)
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	u.invalidate(ctx, id)

	v := usr.Serialize()
	return &v, nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	if err := u.users.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	u.invalidate(ctx, id)
	return nil
}

func (u *Usecase) invalidate(ctx context.Context, ids ...uint64) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Invalidate(ctx, ids...); err != nil {
		log.Warn().Err(err).Msg("user cache invalidate failed")
	}
}
