package mysql

import (
	"context"

	addressDomain "usermgmt-service/internal/domain/address"

	"gorm.io/gorm"
)

type AddressRepository struct{ db *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{db: db} }

func (r *AddressRepository) Create(ctx context.Context, a *addressDomain.Address) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AddressRepository) GetByID(ctx context.Context, id uint64) (*addressDomain.Address, error) {
	var out addressDomain.Address
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}
