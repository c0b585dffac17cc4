package application

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrTaskNotFound      = errors.New("task not found")
	ErrForbidden         = errors.New("you don't have permission to access this task")
)

// ValidationError reports malformed or out-of-policy input. It is always a
// client error: surfaced with its message, never retried, never logged as a
// server fault.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationErr(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
