package config

import (
	"fmt"
	"strings"

	oerrors "github.com/gradle-util/gur/internal/errors"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap makes validation failures match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validate checks cfg for values no command could use.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Watch.Duration <= 0 {
		errs = append(errs, ValidationError{
			Field:   KeyWatchDuration,
			Message: fmt.Sprintf("must be positive, got %s", cfg.Watch.Duration),
		})
	}

	for i, p := range cfg.TemplatesPath {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s[%d]", KeyTemplatesPath, i),
				Message: "must not be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
