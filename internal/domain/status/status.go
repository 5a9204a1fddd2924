package status

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Status is the review state code shared by approvals and their reviewer tiers.
// Persisted and serialized as its integer code.
type Status int

const (
	Pending  Status = 1
	Approved Status = 2
	Rejected Status = 3
)

var ErrUnknown = errors.New("unknown status")

var names = map[Status]string{
	Pending:  "PENDING",
	Approved: "APPROVED",
	Rejected: "REJECTED",
}

func (s Status) Valid() bool {
	_, ok := names[s]
	return ok
}

func (s Status) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// Parse accepts a status name (any case).
func Parse(raw string) (Status, error) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	for s, n := range names {
		if n == key {
			return s, nil
		}
	}
	return 0, ErrUnknown
}

// UnmarshalJSON accepts the integer code or the status name. Range checks are
// left to the domain setters.
func (s *Status) UnmarshalJSON(b []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(b), []byte(`"`)) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		v, err := Parse(raw)
		if err != nil {
			return err
		}
		*s = v
		return nil
	}
	var code int
	if err := json.Unmarshal(b, &code); err != nil {
		return err
	}
	*s = Status(code)
	return nil
}

// Ptr is a helper for the nullable reviewer columns.
func Ptr(s Status) *Status { return &s }
