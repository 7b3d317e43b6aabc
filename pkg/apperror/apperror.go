package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrExtractionIncomplete = errors.New("extraction incomplete")
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrInternal             = errors.New("internal error")
)

// AppError attaches a human message and an optional cause to one of the
// base sentinels above. errors.Is against the sentinel tells callers the kind.
type AppError struct {
	Base    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Base.Error(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Base
}

func New(base error, message string, err error) *AppError {
	return &AppError{Base: base, Message: message, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	return New(ErrNotFound, fmt.Sprintf("%s %q", resource, identifier), nil)
}

func NewInvalidInput(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}

func NewExtractionIncomplete(message string) *AppError {
	return New(ErrExtractionIncomplete, message, nil)
}

func NewStorageUnavailable(message string, err error) *AppError {
	return New(ErrStorageUnavailable, message, err)
}

func NewInternal(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}
