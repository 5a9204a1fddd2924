package user

import (
	"errors"
	"time"

	"usermgmt-service/internal/domain/address"
	"usermgmt-service/internal/domain/role"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone already registered")
)

// Table: users
//
// Email, phone and password are written through NewUser and the Set* methods,
// which run the format rules. BeforeSave re-checks email and phone so a direct
// field assignment cannot reach the store.
type User struct {
	ID        uint64            `gorm:"column:id;primaryKey;autoIncrement"`
	Image     *string           `gorm:"column:image;type:text"`
	Name      string            `gorm:"column:name;size:100;not null"`
	Email     string            `gorm:"column:email;size:100;not null;uniqueIndex:ux_users_email"`
	Phone     string            `gorm:"column:phone;size:100;not null;uniqueIndex:ux_users_phone"`
	Password  string            `gorm:"column:password;size:100;not null"`
	Addresses []address.Address `gorm:"many2many:user_address"`
	Roles     []role.Role       `gorm:"many2many:user_role"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// NewUser validates email, phone and password (in that order) and returns
// the first rule violation as a *validation.Error. Nothing is persisted.
func NewUser(name, email, phone, password string) (*User, error) {
	u := &User{Name: name}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetPhone(phone); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) SetEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	u.Email = email
	return nil
}

func (u *User) SetPhone(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	u.Phone = phone
	return nil
}

func (u *User) SetPassword(password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	u.Password = password
	return nil
}

// SetPasswordHash swaps the stored credential for a hash computed by the caller
// from a password that already passed SetPassword.
func (u *User) SetPasswordHash(hash string) { u.Password = hash }

// SetImage sets the image reference; an empty ref clears it.
func (u *User) SetImage(ref string) {
	if ref == "" {
		u.Image = nil
		return
	}
	u.Image = &ref
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	return ValidatePhone(u.Phone)
}

type View struct {
	ID        uint64         `json:"id"`
	Image     *string        `json:"image"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Addresses []address.View `json:"address"`
	Roles     []role.View    `json:"roles"`
}

func (u User) Serialize() View {
	v := View{
		ID:        u.ID,
		Image:     u.Image,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Addresses: make([]address.View, 0, len(u.Addresses)),
		Roles:     make([]role.View, 0, len(u.Roles)),
	}
	for _, a := range u.Addresses {
		v.Addresses = append(v.Addresses, a.Serialize())
	}
	for _, r := range u.Roles {
		v.Roles = append(v.Roles, r.Serialize())
	}
	return v
}

// SerializeAll keeps the result non-nil so an empty set encodes as [].
func SerializeAll(users []User) []View {
	out := make([]View, 0, len(users))
	for _, u := range users {
		out = append(out, u.Serialize())
	}
	return out
}
