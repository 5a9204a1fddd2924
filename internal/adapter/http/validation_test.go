package http

import (
	"errors"
	"testing"

	"usermgmt-service/internal/domain/status"
)

func TestStatusCodeValidation(t *testing.T) {
	type P struct {
		Status   status.Status  `json:"status"   validate:"statuscode"`
		Optional *status.Status `json:"optional" validate:"omitempty,statuscode"`
	}
	cv := NewValidator()

	for _, s := range []status.Status{status.Pending, status.Approved, status.Rejected} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %v valid, got %v", s, err)
		}
	}
	for _, s := range []status.Status{0, 4, -1} {
		err := cv.Validate(P{Status: s})
		if err == nil {
			t.Fatalf("expected error for %d", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "status", "PENDING, APPROVED or REJECTED") {
			t.Fatalf("expected statuscode message for %d, got %+v", s, fe)
		}
	}

	err := cv.Validate(P{Status: status.Pending, Optional: status.Ptr(9)})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "optional", "PENDING") {
		t.Fatalf("pointer field not checked: %+v", fe)
	}
}

func TestTierValidation(t *testing.T) {
	type P struct {
		Tier string `json:"tier" validate:"tier"`
	}
	cv := NewValidator()
	for _, ok := range []string{"primary", "admin", "super_admin", "ADMIN"} {
		if err := cv.Validate(P{Tier: ok}); err != nil {
			t.Fatalf("expected %q valid, got %v", ok, err)
		}
	}
	err := cv.Validate(P{Tier: "owner"})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "tier", "super_admin") {
		t.Fatalf("expected tier message, got %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name    string   `json:"name"     validate:"required"`
		Type    int      `json:"type"     validate:"gt=0"`
		UserIDs []uint64 `json:"user_ids" validate:"min=1"`
		Line    string   `json:"line"     validate:"max=3"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{Line: "toolong"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing 'is required' for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "type", "greater than 0") {
		t.Fatalf("missing gt message for type: %+v", fe)
	}
	if !containsFieldMsg(fe, "user_ids", "at least 1") {
		t.Fatalf("missing min message for user_ids: %+v", fe)
	}
	if !containsFieldMsg(fe, "line", "at most 3") {
		t.Fatalf("missing max message for line: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
