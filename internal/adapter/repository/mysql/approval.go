package mysql

import (
	"context"

	approvalDomain "usermgmt-service/internal/domain/approval"
	"usermgmt-service/internal/domain/status"
	userDomain "usermgmt-service/internal/domain/user"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApprovalRepository struct{ db *gorm.DB }

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository { return &ApprovalRepository{db: db} }

func (r *ApprovalRepository) withUsers(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Users", func(db *gorm.DB) *gorm.DB { return db.Order("users.id ASC") }).
		Preload("Users.Addresses").
		Preload("Users.Roles")
}

// Create inserts the approval and links any users already set on it.
// Linked users must exist; they are never inserted from here.
func (r *ApprovalRepository) Create(ctx context.Context, a *approvalDomain.Approval) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := a.Users
		if err := tx.Omit("Users").Create(a).Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.Model(a).Omit("Users.*").Association("Users").Replace(users)
	})
}

func (r *ApprovalRepository) Save(ctx context.Context, a *approvalDomain.Approval) error {
	return r.db.WithContext(ctx).Model(a).
		Select("status", "approval_type", "status_by_admin", "status_by_su_admin", "updated_at").
		Updates(a).Error
}

func (r *ApprovalRepository) GetByID(ctx context.Context, id uint64) (*approvalDomain.Approval, error) {
	var out approvalDomain.Approval
	res := r.withUsers(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

func (r *ApprovalRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*approvalDomain.Approval, error) {
	var out approvalDomain.Approval
	res := r.withUsers(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})).First(&out, id)
	return &out, res.Error
}

func (r *ApprovalRepository) List(ctx context.Context, st *status.Status) ([]approvalDomain.Approval, error) {
	q := r.withUsers(r.db.WithContext(ctx))
	if st != nil {
		q = q.Where("status = ?", *st)
	}
	var out []approvalDomain.Approval
	res := q.Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *ApprovalRepository) AttachUsers(ctx context.Context, a *approvalDomain.Approval, users ...userDomain.User) error {
	if len(users) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(a).Omit("Users.*").Association("Users").Append(users)
}

func (r *ApprovalRepository) DetachUser(ctx context.Context, a *approvalDomain.Approval, u *userDomain.User) error {
	return r.db.WithContext(ctx).Model(a).Association("Users").Delete(u)
}
