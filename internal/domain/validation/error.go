package validation

// Error reports a rejected input field. Message is the human readable rule
// that failed and is returned verbatim to API callers.
type Error struct {
	Field   string
	Message string
}

func New(field, message string) *Error { return &Error{Field: field, Message: message} }

func (e *Error) Error() string { return e.Message }
