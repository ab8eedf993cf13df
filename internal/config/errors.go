package config

import (
	"fmt"
)

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}
