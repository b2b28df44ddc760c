package apperr

import "errors"

// Error kinds. Controllers never match on message text; they use
// errors.Is against these sentinels (resp.Error does the mapping).
var (
	ErrNotFound     = errors.New("not_found")
	ErrInvalidState = errors.New("invalid_state")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("unavailable")
	ErrBadRequest   = errors.New("bad_request")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func NotFound(msg string) error     { return &Error{ErrNotFound, msg} }
func InvalidState(msg string) error { return &Error{ErrInvalidState, msg} }
func Unauthorized(msg string) error { return &Error{ErrUnauthorized, msg} }
func Forbidden(msg string) error    { return &Error{ErrForbidden, msg} }
func Unavailable(msg string) error  { return &Error{ErrUnavailable, msg} }
func BadRequest(msg string) error   { return &Error{ErrBadRequest, msg} }
