package simulation

import "fmt"

// ConfigError reports a simulation parameter outside its valid range.
type ConfigError struct {
	Field   string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration [%s=%v]: %s", e.Field, e.Value, e.Message)
}

// Is matches any ConfigError, so callers can test with
// errors.Is(err, simulation.ErrInvalidConfiguration).
func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

// ErrInvalidConfiguration is the sentinel for every ConfigError.
var ErrInvalidConfiguration = &ConfigError{Message: "invalid configuration"}

// NewConfigError creates a configuration error for field.
func NewConfigError(field string, value any, message string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Message: message}
}
