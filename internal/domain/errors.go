package domain

import "errors"

var (
	ErrNotJSON      = errors.New("Request must be JSON")
	ErrInvalidBody  = errors.New("Request body is not valid JSON")
	ErrInvalidItems = errors.New("Missing or invalid 'items' list in payload")
)

// MalformedRequest is the only rejection kind. Cause is one of the sentinels above
// and its text is what the caller sees.
type MalformedRequest struct {
	Cause error
}

func (e *MalformedRequest) Error() string {
	return e.Cause.Error()
}

func (e *MalformedRequest) Unwrap() error {
	return e.Cause
}

func malformed(cause error) error {
	return &MalformedRequest{Cause: cause}
}
