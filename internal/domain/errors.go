package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a requested record or snapshot does not exist.
var ErrNotFound = errors.New("not found")

// ConfigurationError reports a missing required configuration setting. It is
// raised before any remote call is attempted.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Setting)
}

// RemoteError reports a non-success HTTP status from the external catalog
// source. The failed sync commits nothing.
type RemoteError struct {
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("catalog source returned status %d", e.Status)
}

// ValidationError collects submission-boundary failures for reviews and
// reservations. Invalid submissions never reach the state store.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
