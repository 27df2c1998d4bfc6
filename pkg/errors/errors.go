package errors

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrExpired      = errors.New("resource expired")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrDuplicate    = errors.New("resource already exists")
	ErrInternal     = errors.New("internal server error")
)
