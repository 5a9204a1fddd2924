package approval

import (
	"errors"
	"strings"

	"usermgmt-service/internal/domain/status"
)

// Tier names which of the three independent status columns a review writes.
type Tier string

const (
	TierPrimary    Tier = "primary"
	TierAdmin      Tier = "admin"
	TierSuperAdmin Tier = "super_admin"
)

var ErrUnknownTier = errors.New("unknown review tier")

func ParseTier(raw string) (Tier, error) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(raw))); t {
	case TierPrimary, TierAdmin, TierSuperAdmin:
		return t, nil
	}
	return "", ErrUnknownTier
}

// SetTierStatus writes exactly one status column.
func (a *Approval) SetTierStatus(t Tier, s status.Status) error {
	switch t {
	case TierPrimary:
		return a.SetStatus(s)
	case TierAdmin:
		return a.SetAdminStatus(s)
	case TierSuperAdmin:
		return a.SetSuAdminStatus(s)
	}
	return ErrUnknownTier
}
