package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicateBook  = errors.New("book already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrInvalidInput   = errors.New("invalid input")
	ErrStorageIO      = errors.New("storage i/o failure")
	ErrStorageFormat  = errors.New("storage format invalid")
)

// DuplicateBookError reports a title+author collision and the id of the
// book already holding that pair.
type DuplicateBookError struct {
	ExistingID string
}

func (e *DuplicateBookError) Error() string {
	return fmt.Sprintf("%s: id %s", ErrDuplicateBook, e.ExistingID)
}

func (e *DuplicateBookError) Unwrap() error {
	return ErrDuplicateBook
}
