package dto

import (
	"fmt"
	"strings"

	"github.com/orchestrahub/orchestra-backend/internal/domain"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the per-field messages for a rejected transfer
// record. It matches domain.ErrValidation under errors.Is so the HTTP layer
// can map it without knowing about this package's internals.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == domain.ErrValidation
}

func validationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func requireString(fields []FieldError, field, value string, maxLen int) []FieldError {
	if strings.TrimSpace(value) == "" {
		return append(fields, FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)})
	}
	if maxLen > 0 && len(value) > maxLen {
		return append(fields, FieldError{Field: field, Message: fmt.Sprintf("%s must be at most %d characters", field, maxLen)})
	}
	return fields
}
