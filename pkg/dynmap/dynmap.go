// Package dynmap layers dynamic, Python-flavored map behavior over the
// ordered multi-value core: attribute-style access, default-factory
// autovivification, and recursive self-typed defaults.
//
// Instead of a tower of behavioral mixins, there is one concrete Map type
// whose capabilities are chosen at construction: multi-value storage,
// a default factory, and recursion are all orthogonal options. Attribute
// access is always available, as explicit methods with an explicit
// leading-underscore dispatch policy.
package dynmap

import (
	"strings"

	"github.com/ordmap/ordmap/pkg/ordmap"
)

// Entry is one (key, value) pair of a dynamic map.
type Entry = ordmap.Entry[string, any]

// Factory produces the default value inserted on an autovivifying miss.
type Factory func() any

// Option configures a Map at construction.
type Option func(*Map)

// WithMultiValue makes the map preserve duplicate keys: Set appends a new
// entry instead of rewriting an existing one.
func WithMultiValue() Option {
	return func(m *Map) { m.multi = true }
}

// WithFactory configures autovivification: GetOrInsert and attribute
// access invoke the factory on a miss, store the result, and return it.
func WithFactory(factory Factory) Option {
	return func(m *Map) { m.factory = factory }
}

// Recursive configures the map's factory to be its own constructor, with
// the same options. Every autovivified value is itself such a map, so
// arbitrarily deep attribute chains need no explicit initialization.
func Recursive() Option {
	return func(m *Map) { m.recursive = true }
}

// Map is a string-keyed, insertion-ordered dynamic map.
//
// Not safe for concurrent use; the only process-wide state in the package
// is the repr re-entrancy guard, which exists solely to keep String()
// from recursing forever on self-referential values.
type Map struct {
	store     *ordmap.MultiMap[string, any]
	attrs     map[string]any
	factory   Factory
	multi     bool
	recursive bool
	options   []Option
}

// New constructs a Map with the given capabilities.
func New(options ...Option) *Map {
	m := &Map{
		store:   ordmap.NewMultiMap[string, any](),
		attrs:   map[string]any{},
		options: options,
	}
	for _, option := range options {
		option(m)
	}

	if m.recursive {
		m.factory = func() any { return New(options...) }
	}
	return m
}

// Get returns the value for the key: the last entry's value when the map
// holds duplicates. A miss never autovivifies.
func (m *Map) Get(key string) (any, error) {
	if value, ok := m.store.Get(key); ok {
		return value, nil
	}
	return nil, ordmap.NewKeyNotFoundError(key)
}

// GetOr returns the value for the key, or the fallback when absent.
func (m *Map) GetOr(key string, fallback any) any {
	return m.store.GetOr(key, fallback)
}

// GetAll returns all values stored for the key, in entry order.
func (m *Map) GetAll(key string) []any {
	return m.store.GetAll(key)
}

// GetOrInsert returns the value for the key, invoking the configured
// factory on a miss to produce, store and return a default. Without a
// factory a miss fails like Get.
func (m *Map) GetOrInsert(key string) (any, error) {
	if value, ok := m.store.Get(key); ok {
		return value, nil
	}
	if m.factory == nil {
		return nil, ordmap.NewKeyNotFoundError(key)
	}

	value := m.factory()
	m.Set(key, value)
	return value, nil
}

// Set stores the value for the key. In multi-value mode the entry is
// appended, preserving any existing entries for the key; otherwise an
// existing entry is rewritten in position and a new key is appended.
func (m *Map) Set(key string, value any) {
	if m.multi {
		m.store.Add(key, value)
		return
	}
	m.store.UpdateInPlace(Entry{Key: key, Value: value})
}

// Update applies the given pairs with the map's default update
// semantics: append in multi-value mode, rewrite-in-position otherwise.
// Without multi-value, pairs are applied one at a time, so a duplicate
// incoming key rewrites the entry its own earlier pair created and the
// map never holds two entries for one key.
func (m *Map) Update(pairs ...Entry) {
	if m.multi {
		m.store.UpdateAppend(pairs...)
		return
	}
	for _, pair := range pairs {
		m.store.UpdateInPlace(pair)
	}
}

// Delete removes every entry for the key.
func (m *Map) Delete(key string) error {
	return m.store.Delete(key)
}

// Pop returns the last value for the key and removes every entry for it.
func (m *Map) Pop(key string) (any, error) {
	return m.store.Pop(key)
}

// Has returns true if the key has at least one entry.
func (m *Map) Has(key string) bool {
	return m.store.Has(key)
}

// Len returns the number of entries, duplicates included.
func (m *Map) Len() int {
	return m.store.Len()
}

// Entries returns the ordered entry list. Private attributes (leading
// underscore) never appear here.
func (m *Map) Entries() []Entry {
	return m.store.Entries()
}

// Keys returns the key of every entry, in entry order.
func (m *Map) Keys() []string {
	return m.store.Keys()
}

// isPrivate reports whether an attribute name bypasses the entry store.
func isPrivate(name string) bool {
	return strings.HasPrefix(name, "_")
}

// GetAttr returns the value for the attribute name. Names with a leading
// underscore are served from private side storage and never autovivify.
// Public names read the entry store and, when a factory is configured,
// autovivify on a miss exactly like GetOrInsert.
//
// A miss fails with AttrNotFoundError, not the keyed-access
// KeyNotFoundError.
func (m *Map) GetAttr(name string) (any, error) {
	if isPrivate(name) {
		if value, ok := m.attrs[name]; ok {
			return value, nil
		}
		return nil, NewAttrNotFoundError(name)
	}

	value, err := m.GetOrInsert(name)
	if err != nil {
		return nil, NewAttrNotFoundError(name)
	}
	return value, nil
}

// SetAttr stores the value for the attribute name. Leading-underscore
// names go to private side storage; everything else goes through Set.
func (m *Map) SetAttr(name string, value any) {
	if isPrivate(name) {
		m.attrs[name] = value
		return
	}
	m.Set(name, value)
}

// DeleteAttr removes the attribute. A miss fails with AttrNotFoundError.
func (m *Map) DeleteAttr(name string) error {
	if isPrivate(name) {
		if _, ok := m.attrs[name]; !ok {
			return NewAttrNotFoundError(name)
		}
		delete(m.attrs, name)
		return nil
	}

	if err := m.store.Delete(name); err != nil {
		return NewAttrNotFoundError(name)
	}
	return nil
}
