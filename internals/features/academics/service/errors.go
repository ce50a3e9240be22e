package service

import "fmt"

// ValidationError: input melanggar constraint (marks di luar rentang, dsb).
// Ditolak sebelum ada write, tidak pernah di-retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError: entitas yang direferensikan tidak ada di store.
// Entity membedakan mana yang hilang ("student" / "course").
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }
