package service

import "errors"

// Sentinel failure kinds. Handlers map these onto response status codes; the
// concrete message attached via the constructors below is what the client sees.
var (
	// ErrUnauthorized covers ownership mismatches as well as rows that do not
	// exist at all. The two cases are deliberately indistinguishable so a
	// caller cannot probe for records in other scopes.
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token invalid or expired")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func unauthorized(msg string) error { return &kindError{ErrUnauthorized, msg} }
func conflict(msg string) error     { return &kindError{ErrConflict, msg} }
func notFound(msg string) error     { return &kindError{ErrNotFound, msg} }
