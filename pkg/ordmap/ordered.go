package ordmap

import (
	"iter"

	"golang.org/x/exp/slices"

	"github.com/ordmap/ordmap/pkg/genutil/slicez"
)

// OrderedMap is an insertion-ordered map with unique keys. Setting an
// existing key updates its value but preserves its position; new keys are
// appended at the end.
//
// Not safe for concurrent use.
type OrderedMap[K comparable, V any] struct {
	entries  []Entry[K, V]
	position map[K]int
}

// NewOrderedMap initializes a new empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{position: map[K]int{}}
}

// OrderedMapOf initializes an OrderedMap from the given entries, in
// order. A repeated key keeps its first position but takes the last value,
// matching Set semantics applied pairwise.
func OrderedMapOf[K comparable, V any](entries ...Entry[K, V]) *OrderedMap[K, V] {
	om := NewOrderedMap[K, V]()
	for _, entry := range entries {
		om.Set(entry.Key, entry.Value)
	}
	return om
}

// Set stores the value for the key. Returns true if the key was newly
// inserted, false if an existing entry was updated in position.
func (om *OrderedMap[K, V]) Set(key K, value V) bool {
	if i, ok := om.position[key]; ok {
		rewritten := cloneEntries(om.entries)
		rewritten[i].Value = value
		om.entries = rewritten
		return false
	}

	om.position[key] = len(om.entries)
	om.entries = append(om.entries[:len(om.entries):len(om.entries)], Entry[K, V]{Key: key, Value: value})
	return true
}

// Get returns the value for the key and whether it existed.
func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	if i, ok := om.position[key]; ok {
		return om.entries[i].Value, true
	}

	var zero V
	return zero, false
}

// GetOr returns the value for the key, or the fallback when absent.
func (om *OrderedMap[K, V]) GetOr(key K, fallback V) V {
	if value, ok := om.Get(key); ok {
		return value
	}
	return fallback
}

// Has returns true if the key is present.
func (om *OrderedMap[K, V]) Has(key K) bool {
	_, ok := om.position[key]
	return ok
}

// Delete removes the entry for the key.
func (om *OrderedMap[K, V]) Delete(key K) error {
	i, ok := om.position[key]
	if !ok {
		return NewKeyNotFoundError(key)
	}

	remaining := make([]Entry[K, V], 0, len(om.entries)-1)
	remaining = append(remaining, om.entries[:i]...)
	remaining = append(remaining, om.entries[i+1:]...)
	om.entries = remaining

	delete(om.position, key)
	for k, pos := range om.position {
		if pos > i {
			om.position[k] = pos - 1
		}
	}
	return nil
}

// Pop returns the value for the key and removes its entry.
func (om *OrderedMap[K, V]) Pop(key K) (V, error) {
	value, ok := om.Get(key)
	if !ok {
		var zero V
		return zero, NewKeyNotFoundError(key)
	}

	// Key presence was just checked.
	_ = om.Delete(key)
	return value, nil
}

// PopEntry removes and returns the last (or first) entry in order.
func (om *OrderedMap[K, V]) PopEntry(last bool) (Entry[K, V], error) {
	if len(om.entries) == 0 {
		return Entry[K, V]{}, NewEmptyError()
	}

	i := 0
	if last {
		i = len(om.entries) - 1
	}
	popped := om.entries[i]
	if err := om.Delete(popped.Key); err != nil {
		return Entry[K, V]{}, err
	}
	return popped, nil
}

// MoveToEnd moves the key's entry to the back (or front) of the order.
func (om *OrderedMap[K, V]) MoveToEnd(key K, last bool) error {
	value, err := om.Pop(key)
	if err != nil {
		return err
	}

	if last {
		om.Set(key, value)
		return nil
	}

	rewritten := make([]Entry[K, V], 0, len(om.entries)+1)
	rewritten = append(rewritten, Entry[K, V]{Key: key, Value: value})
	rewritten = append(rewritten, om.entries...)
	om.entries = rewritten
	om.position = map[K]int{}
	for i, entry := range om.entries {
		om.position[entry.Key] = i
	}
	return nil
}

// Clear removes all entries.
func (om *OrderedMap[K, V]) Clear() {
	om.entries = nil
	om.position = map[K]int{}
}

// IsEmpty returns true if the map holds no entries.
func (om *OrderedMap[K, V]) IsEmpty() bool { return len(om.entries) == 0 }

// Len returns the number of entries.
func (om *OrderedMap[K, V]) Len() int { return len(om.entries) }

// Entries returns the ordered entry list. The returned slice is the
// current snapshot; callers must not write into it.
func (om *OrderedMap[K, V]) Entries() []Entry[K, V] {
	return om.entries
}

// Keys returns the keys in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	return slicez.Map(om.entries, func(entry Entry[K, V]) K { return entry.Key })
}

// Values returns the values in insertion order.
func (om *OrderedMap[K, V]) Values() []V {
	return slicez.Map(om.entries, func(entry Entry[K, V]) V { return entry.Value })
}

// All returns an iterator over the entries in insertion order.
func (om *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	entries := om.entries
	return func(yield func(K, V) bool) {
		for _, entry := range entries {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Clone returns a clone of the map.
func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	cloned := NewOrderedMap[K, V]()
	cloned.entries = cloneEntries(om.entries)
	for i, entry := range cloned.entries {
		cloned.position[entry.Key] = i
	}
	return cloned
}

// AsMultiMap converts to a MultiMap holding the same entries.
func (om *OrderedMap[K, V]) AsMultiMap() *MultiMap[K, V] {
	return MultiMapOf(om.entries...)
}

// OrderedEqual reports whether two ordered maps hold the same entries in
// the same order.
func OrderedEqual[K comparable, V comparable](a, b *OrderedMap[K, V]) bool {
	return slices.Equal(a.entries, b.entries)
}
