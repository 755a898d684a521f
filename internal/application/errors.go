package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidSection = errors.New("invalid section")
	ErrInvalidDate    = errors.New("invalid date")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SectionError represents a section lookup or layout failure
type SectionError struct {
	Key    string
	Reason string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s: %s", e.Key, e.Reason)
}

func (e *SectionError) Is(target error) bool {
	return target == ErrInvalidSection
}
