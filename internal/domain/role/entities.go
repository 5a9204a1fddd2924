package role

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("role not found")
	ErrDuplicate = errors.New("role already exists")
)

// Table: roles
type Role struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:100;not null;uniqueIndex:ux_roles_name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Role) TableName() string { return "roles" }

// NewRole stores the name as given.
func NewRole(name string) *Role { return &Role{Name: name} }

type View struct {
	ID   uint64 `json:"id"`
	Role string `json:"role"`
}

func (r Role) Serialize() View { return View{ID: r.ID, Role: r.Name} }
