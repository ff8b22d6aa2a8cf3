package config

import "fmt"

// ConfigError is returned when configuration cannot be read or fails validation
type ConfigError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := "config error"
	if e.Field != "" {
		msg += fmt.Sprintf(" in %s", e.Field)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
