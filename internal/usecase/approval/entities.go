package approval

import (
	"context"
	"time"

	"usermgmt-service/internal/domain/status"
)

type CreateInput struct {
	ApprovalType    int
	Status          status.Status // zero means PENDING
	StatusByAdmin   *status.Status
	StatusBySuAdmin *status.Status
	UserIDs         []uint64
}

type ReviewInput struct {
	Tier   string
	Status status.Status
}

// Publisher emits domain events after a write commits. Optional.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Routing keys on the events exchange
const (
	EventCreated  = "approval.created"
	EventReviewed = "approval.reviewed"
)

type reviewedEvent struct {
	ApprovalID uint64        `json:"approval_id"`
	Tier       string        `json:"tier"`
	Status     status.Status `json:"status"`
	At         time.Time     `json:"at"`
}

type createdEvent struct {
	ApprovalID   uint64    `json:"approval_id"`
	ApprovalType int       `json:"approval_type"`
	Users        int       `json:"users"`
	At           time.Time `json:"at"`
}
