package config

import (
	"errors"
	"fmt"

	"github.com/dshills/codeditor/internal/config/loader"
)

// Sentinel errors for settings operations.
var (
	// ErrUnknownSetting indicates a settings key that does not exist.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidSetting indicates a setting with an unusable value.
	ErrInvalidSetting = errors.New("invalid setting")
)

// ParseError is returned when a settings file cannot be parsed.
type ParseError = loader.ParseError

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Key is the setting that failed validation.
	Key string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("setting %s: %s (got %v)", e.Key, e.Message, e.Value)
}

// Unwrap returns ErrInvalidSetting.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidSetting
}
