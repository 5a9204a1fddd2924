package mysql

import (
	"context"

	roleDomain "usermgmt-service/internal/domain/role"

	"gorm.io/gorm"
)

type RoleRepository struct{ db *gorm.DB }

func NewRoleRepository(db *gorm.DB) *RoleRepository { return &RoleRepository{db: db} }

func (r *RoleRepository) Create(ctx context.Context, role *roleDomain.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *RoleRepository) GetByID(ctx context.Context, id uint64) (*roleDomain.Role, error) {
	var out roleDomain.Role
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*roleDomain.Role, error) {
	var out roleDomain.Role
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}

func (r *RoleRepository) List(ctx context.Context) ([]roleDomain.Role, error) {
	var out []roleDomain.Role
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}
