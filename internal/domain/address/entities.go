package address

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("address not found")

// Table: addresses. Only line1 is required, and only by the schema.
type Address struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Line1     string    `gorm:"column:line1;size:100;not null"`
	Line2     *string   `gorm:"column:line2;size:100"`
	District  *string   `gorm:"column:district;size:100"`
	State     *string   `gorm:"column:state;size:100"`
	PinCode   *string   `gorm:"column:pin_code;size:100"`
	Country   *string   `gorm:"column:country;size:100"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Address) TableName() string { return "addresses" }

func NewAddress(line1 string, line2, district, state, pinCode, country *string) *Address {
	return &Address{
		Line1:    line1,
		Line2:    line2,
		District: district,
		State:    state,
		PinCode:  pinCode,
		Country:  country,
	}
}

type View struct {
	ID       uint64  `json:"id"`
	Line1    string  `json:"line1"`
	Line2    *string `json:"line2"`
	District *string `json:"district"`
	State    *string `json:"state"`
	PinCode  *string `json:"pin_code"`
	Country  *string `json:"country"`
}

func (a Address) Serialize() View {
	return View{
		ID:       a.ID,
		Line1:    a.Line1,
		Line2:    a.Line2,
		District: a.District,
		State:    a.State,
		PinCode:  a.PinCode,
		Country:  a.Country,
	}
}
