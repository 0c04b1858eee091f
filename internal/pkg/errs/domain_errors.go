package errs

import "errors"

// Error classes shared by every layer. Concrete errors belong to one of
// these so the handler layer can fall back on the class.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrBusinessRule    = errors.New("business rule violation")
	ErrInternal        = errors.New("internal error")
)

// Class returns a new sentinel that matches itself and class. Two sentinels
// of the same class never match each other.
func Class(class error, msg string) error {
	return &classError{class: class, msg: msg}
}

type classError struct {
	class error
	msg   string
}

func (e *classError) Error() string { return e.msg }

func (e *classError) Unwrap() error { return e.class }
