package approval

import (
	"encoding/json"
	"errors"
	"time"

	"usermgmt-service/internal/domain/status"
	"usermgmt-service/internal/domain/user"
	"usermgmt-service/internal/domain/validation"
)

var (
	ErrNotFound = errors.New("approval not found")
)

const (
	MsgNoneApproved = "No users approved yet"
	MsgNonePending  = "No users pending for approval"
)

// Table: approvals
//
// Status, StatusByAdmin and StatusBySuAdmin are independent. Nothing here
// propagates a reviewer decision into the primary status.
type Approval struct {
	ID              uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	Status          status.Status  `gorm:"column:status;not null;default:1;index:idx_approvals_status"`
	ApprovalType    int            `gorm:"column:approval_type;not null"`
	StatusByAdmin   *status.Status `gorm:"column:status_by_admin;default:1"`
	StatusBySuAdmin *status.Status `gorm:"column:status_by_su_admin;default:1"`
	Users           []user.User    `gorm:"many2many:approval_user"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Approval) TableName() string { return "approvals" }

// NewApproval sets the three statuses as given. A zero status means the column
// default (PENDING); a nil reviewer status is stored as PENDING as well.
func NewApproval(approvalType int, st status.Status, byAdmin, bySuAdmin *status.Status) (*Approval, error) {
	if approvalType <= 0 {
		return nil, validation.New("approval_type", "Approval type is required")
	}
	a := &Approval{ApprovalType: approvalType, Status: status.Pending}
	if st != 0 {
		if err := a.SetStatus(st); err != nil {
			return nil, err
		}
	}
	if err := a.SetAdminStatus(orPending(byAdmin)); err != nil {
		return nil, err
	}
	if err := a.SetSuAdminStatus(orPending(bySuAdmin)); err != nil {
		return nil, err
	}
	return a, nil
}

func orPending(s *status.Status) status.Status {
	if s == nil {
		return status.Pending
	}
	return *s
}

func checkStatus(field string, s status.Status) error {
	if !s.Valid() {
		return validation.New(field, "Invalid status code")
	}
	return nil
}

func (a *Approval) SetStatus(s status.Status) error {
	if err := checkStatus("status", s); err != nil {
		return err
	}
	a.Status = s
	return nil
}

func (a *Approval) SetAdminStatus(s status.Status) error {
	if err := checkStatus("status_by_admin", s); err != nil {
		return err
	}
	a.StatusByAdmin = status.Ptr(s)
	return nil
}

func (a *Approval) SetSuAdminStatus(s status.Status) error {
	if err := checkStatus("status_by_SuAdmin", s); err != nil {
		return err
	}
	a.StatusBySuAdmin = status.Ptr(s)
	return nil
}

type View struct {
	ID              uint64         `json:"id"`
	Status          status.Status  `json:"status"`
	ApprovalType    int            `json:"approval_type"`
	StatusByAdmin   *status.Status `json:"status_by_admin"`
	StatusBySuAdmin *status.Status `json:"status_by_SuAdmin"`
	Users           []user.View    `json:"users"`
}

func (a Approval) Serialize() View {
	return View{
		ID:              a.ID,
		Status:          a.Status,
		ApprovalType:    a.ApprovalType,
		StatusByAdmin:   a.StatusByAdmin,
		StatusBySuAdmin: a.StatusBySuAdmin,
		Users:           user.SerializeAll(a.Users),
	}
}

// Membership is the result of a status-gated membership read. When Matched
// is false the approval is in another state and Users is nil; when Matched is
// true Users is the (possibly empty) linked set.
type Membership struct {
	Matched bool
	Users   []user.View
	message string
}

func (m Membership) Message() string { return m.message }

// MarshalJSON keeps the legacy response shape: the user list when matched,
// {"message": ...} otherwise.
func (m Membership) MarshalJSON() ([]byte, error) {
	if m.Matched {
		return json.Marshal(m.Users)
	}
	return json.Marshal(map[string]string{"message": m.message})
}

func (a Approval) membership(want status.Status, miss string) Membership {
	if a.Status != want {
		return Membership{message: miss}
	}
	return Membership{Matched: true, Users: user.SerializeAll(a.Users)}
}

// ApprovedUsers consults only the primary status; reviewer tiers do not gate it.
func (a Approval) ApprovedUsers() Membership {
	return a.membership(status.Approved, MsgNoneApproved)
}

func (a Approval) PendingUsers() Membership {
	return a.membership(status.Pending, MsgNonePending)
}
