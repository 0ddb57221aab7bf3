package ordmap

import (
	"fmt"

	"github.com/rs/zerolog"
)

// KeyNotFoundError occurs when a point lookup, Pop or Delete references a
// key with no current entries.
type KeyNotFoundError[K comparable] struct {
	error
	key K
}

// NewKeyNotFoundError creates and returns a new KeyNotFoundError.
func NewKeyNotFoundError[K comparable](key K) KeyNotFoundError[K] {
	return KeyNotFoundError[K]{
		error: fmt.Errorf("key not found: `%v`", key),
		key:   key,
	}
}

// NotFoundKey is the key that had no entries.
func (err KeyNotFoundError[K]) NotFoundKey() K {
	return err.key
}

// MarshalZerologObject implements zerolog object marshalling.
func (err KeyNotFoundError[K]) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("key", fmt.Sprintf("%v", err.key))
}

// EmptyError occurs when PopEntry is invoked on a map with no entries.
type EmptyError struct {
	error
}

// NewEmptyError creates and returns a new EmptyError.
func NewEmptyError() EmptyError {
	return EmptyError{error: fmt.Errorf("map contains no entries")}
}

// UnknownDedupModeError occurs when a deduplication mode is neither
// KeepFirst nor KeepLast.
type UnknownDedupModeError struct {
	error
	mode string
}

// NewUnknownDedupModeError creates and returns a new UnknownDedupModeError.
func NewUnknownDedupModeError(mode string) UnknownDedupModeError {
	return UnknownDedupModeError{
		error: fmt.Errorf("unknown deduplication mode: `%s`", mode),
		mode:  mode,
	}
}

// UnknownMode is the rejected mode, as given.
func (err UnknownDedupModeError) UnknownMode() string {
	return err.mode
}

// MarshalZerologObject implements zerolog object marshalling.
func (err UnknownDedupModeError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("mode", err.mode)
}
