package service

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrInvalid     = errors.New("invalid")
	ErrUnavailable = errors.New("service unavailable")

	// ErrMissingTranslation means a record has no translation in the requested
	// language. It is an internal condition and is never shown to clients verbatim.
	ErrMissingTranslation = errors.New("missing translation")
)

// ValidationError carries a client-facing message and matches ErrInvalid.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func invalidf(message string) error {
	return &ValidationError{Message: message}
}

// MissingTranslationError identifies the record that lacks a translation.
type MissingTranslationError struct {
	Resource string
	ID       int64
	Language string
}

func (e *MissingTranslationError) Error() string {
	return "missing " + e.Language + " translation for " + e.Resource
}

func (e *MissingTranslationError) Is(target error) bool {
	return target == ErrMissingTranslation
}
