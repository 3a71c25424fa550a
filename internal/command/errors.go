package command

import "fmt"

// UserError is a correctable mistake by the caller (bad enum value, malformed
// number, missing argument). Its message is safe to show verbatim; anything
// else that escapes a handler is logged and replaced with a generic notice.
type UserError struct {
	msg string
}

func (e *UserError) Error() string { return e.msg }

// NewUserError builds a UserError with a formatted message.
func NewUserError(format string, args ...any) *UserError {
	return &UserError{msg: fmt.Sprintf(format, args...)}
}
