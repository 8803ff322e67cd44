package apperror

import "fmt"

// Error pairs a taxonomy sentinel with a human-readable message so
// callers can match with errors.Is while clients get a useful string.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Newf builds an Error wrapping the given sentinel.
func Newf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
