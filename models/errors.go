package models

import "errors"

// Error kinds the API layer maps to HTTP status codes. Services attach the
// client-facing detail with the constructors below; handlers match the kind
// with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalid         = errors.New("invalid")
)

type apiError struct {
	kind   error
	detail string
}

func (e *apiError) Error() string { return e.detail }

func (e *apiError) Unwrap() error { return e.kind }

func NotFoundError(detail string) error {
	return &apiError{kind: ErrNotFound, detail: detail}
}

func ConflictError(detail string) error {
	return &apiError{kind: ErrConflict, detail: detail}
}

func UnauthenticatedError(detail string) error {
	return &apiError{kind: ErrUnauthenticated, detail: detail}
}

func ForbiddenError(detail string) error {
	return &apiError{kind: ErrForbidden, detail: detail}
}

func ValidationError(detail string) error {
	return &apiError{kind: ErrInvalid, detail: detail}
}
