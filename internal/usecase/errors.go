package usecase

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a failed read or write against the lead table.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
