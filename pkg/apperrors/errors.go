package apperrors

import (
	"errors"
	"fmt"
)

var (
	// Auth
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUnauthorized       = errors.New("user not authenticated")
	ErrForbidden          = errors.New("permission denied")

	// Equipment
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrDuplicateEquipment = errors.New("equipment with this id, serial number or inventory code already exists")
	ErrInvalidFilter      = errors.New("unknown dashboard filter")

	// Notifications
	ErrNotificationNotFound = errors.New("notification not found")

	// Staff
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateUser    = errors.New("a user with this email already exists")
	ErrInvalidStaffRole = errors.New("staff role must be Technician or Hospital Staff")

	// Preferences
	ErrInvalidTheme = errors.New("theme must be light or dark")
)

// ValidationError reports rejected input at a record-construction boundary
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		for field, msg := range e.Fields {
			return fmt.Sprintf("validation failed: %s %s", field, msg)
		}
	}
	return fmt.Sprintf("validation failed on %d fields", len(e.Fields))
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}
