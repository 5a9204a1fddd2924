package mysql

import (
	"context"

	addressDomain "usermgmt-service/internal/domain/address"
	roleDomain "usermgmt-service/internal/domain/role"
	userDomain "usermgmt-service/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) withLinks(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Addresses").Preload("Roles")
}

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Omit("Addresses", "Roles").Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Omit("Addresses", "Roles").Save(u).Error
}

// Delete clears the user's link rows first; the store does not cascade them.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"user_role", "user_address", "approval_user"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE user_id = ?", id).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&userDomain.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.withLinks(ctx).First(&out, id)
	return &out, res.Error
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint64) ([]userDomain.User, error) {
	var out []userDomain.User
	if len(ids) == 0 {
		return out, nil
	}
	res := r.withLinks(ctx).Where("id IN ?", ids).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.withLinks(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.withLinks(ctx).Where("phone = ?", phone).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]userDomain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var out []userDomain.User
	res := r.withLinks(ctx).Order("id ASC").Limit(limit).Offset(offset).Find(&out)
	return out, res.Error
}

func (r *UserRepository) AttachRoles(ctx context.Context, u *userDomain.User, roles ...roleDomain.Role) error {
	if len(roles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(u).Association("Roles").Append(roles)
}

func (r *UserRepository) AttachAddresses(ctx context.Context, u *userDomain.User, addrs ...addressDomain.Address) error {
	if len(addrs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(u).Association("Addresses").Append(addrs)
}
