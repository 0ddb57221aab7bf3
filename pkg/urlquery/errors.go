package urlquery

import (
	"fmt"

	"github.com/rs/zerolog"
)

// InvalidEscapeError occurs when a query segment contains a malformed
// percent escape.
type InvalidEscapeError struct {
	error
	segment   int
	component string
}

// NewInvalidEscapeError creates and returns a new InvalidEscapeError.
func NewInvalidEscapeError(segment int, component string, cause error) InvalidEscapeError {
	return InvalidEscapeError{
		error:     fmt.Errorf("invalid escape in %s of segment %d: %w", component, segment, cause),
		segment:   segment,
		component: component,
	}
}

// Segment is the zero-based index of the `&`-separated segment that
// failed to decode.
func (err InvalidEscapeError) Segment() int {
	return err.segment
}

// Component reports whether the key or the value failed to decode.
func (err InvalidEscapeError) Component() string {
	return err.component
}

// Unwrap returns the underlying decode error.
func (err InvalidEscapeError) Unwrap() error {
	return err.error
}

// MarshalZerologObject implements zerolog object marshalling.
func (err InvalidEscapeError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Int("segment", err.segment).Str("component", err.component)
}
