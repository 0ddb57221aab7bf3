package dynmap

import (
	"fmt"

	"github.com/rs/zerolog"
)

// AttrNotFoundError occurs when attribute-style access references a name
// with no stored value. It is deliberately distinct from the keyed-access
// KeyNotFoundError so callers can tell the two surfaces apart.
type AttrNotFoundError struct {
	error
	attr string
}

// NewAttrNotFoundError creates and returns a new AttrNotFoundError.
func NewAttrNotFoundError(attr string) AttrNotFoundError {
	return AttrNotFoundError{
		error: fmt.Errorf("attribute not found: `%s`", attr),
		attr:  attr,
	}
}

// NotFoundAttr is the attribute name that had no value.
func (err AttrNotFoundError) NotFoundAttr() string {
	return err.attr
}

// MarshalZerologObject implements zerolog object marshalling.
func (err AttrNotFoundError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("attribute", err.attr)
}

// MalformedPairError occurs when bulk-update input contains an item that
// is not a 2-element pair.
type MalformedPairError struct {
	error
	index  int
	length int
}

// NewMalformedPairError creates and returns a new MalformedPairError.
func NewMalformedPairError(index int, length int) MalformedPairError {
	return MalformedPairError{
		error:  fmt.Errorf("item at index %d has %d elements; pairs require exactly 2", index, length),
		index:  index,
		length: length,
	}
}

// PairIndex is the position of the malformed item in the input.
func (err MalformedPairError) PairIndex() int {
	return err.index
}

// PairLength is the number of elements the malformed item had.
func (err MalformedPairError) PairLength() int {
	return err.length
}

// MarshalZerologObject implements zerolog object marshalling.
func (err MalformedPairError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Int("index", err.index).Int("length", err.length)
}

// NonStringKeyError occurs when a pair in bulk-update input carries a key
// that is not a string.
type NonStringKeyError struct {
	error
	index int
}

// NewNonStringKeyError creates and returns a new NonStringKeyError.
func NewNonStringKeyError(index int, key any) NonStringKeyError {
	return NonStringKeyError{
		error: fmt.Errorf("pair at index %d has non-string key of type %T", index, key),
		index: index,
	}
}

// PairIndex is the position of the offending pair in the input.
func (err NonStringKeyError) PairIndex() int {
	return err.index
}

// TooManyArgsError occurs when more than one positional data argument is
// passed to a constructor or bulk update.
type TooManyArgsError struct {
	error
	count int
}

// NewTooManyArgsError creates and returns a new TooManyArgsError.
func NewTooManyArgsError(count int) TooManyArgsError {
	return TooManyArgsError{
		error: fmt.Errorf("at most one positional data argument is accepted, got %d", count),
		count: count,
	}
}

// ArgCount is the number of positional arguments that were passed.
func (err TooManyArgsError) ArgCount() int {
	return err.count
}

// AmbiguousArgsError occurs in strict mode when both a positional data
// argument and keyword pairs are given: the relative ordering of the two
// sources would be ambiguous.
type AmbiguousArgsError struct {
	error
}

// NewAmbiguousArgsError creates and returns a new AmbiguousArgsError.
func NewAmbiguousArgsError() AmbiguousArgsError {
	return AmbiguousArgsError{
		error: fmt.Errorf("cannot combine a positional data argument with keyword pairs in strict mode"),
	}
}

// UnsupportedSourceError occurs when a positional data argument has a
// type the normalizer does not recognize.
type UnsupportedSourceError struct {
	error
	sourceType string
}

// NewUnsupportedSourceError creates and returns a new UnsupportedSourceError.
func NewUnsupportedSourceError(source any) UnsupportedSourceError {
	return UnsupportedSourceError{
		error:      fmt.Errorf("unsupported data source of type %T", source),
		sourceType: fmt.Sprintf("%T", source),
	}
}

// SourceType is the rejected argument's type name.
func (err UnsupportedSourceError) SourceType() string {
	return err.sourceType
}
