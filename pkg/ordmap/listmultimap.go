package ordmap

import (
	"iter"

	"golang.org/x/exp/slices"

	"github.com/ordmap/ordmap/pkg/genutil/slicez"
)

// ListMultiMap has the same external contract as MultiMap, but the
// per-key value-list map is the primary storage and the ordered entry
// list is maintained incrementally in lock-step on every mutation. It is
// the better fit for workloads dominated by per-key list access rather
// than whole-list iteration.
//
// For any key, the order of its value list always matches the relative
// order of its entries in the entry list.
//
// Not safe for concurrent use.
type ListMultiMap[K comparable, V any] struct {
	lists   map[K][]V
	entries []Entry[K, V]
}

var _ ReadOnlyMultiMap[string, int] = (*ListMultiMap[string, int])(nil)

// NewListMultiMap initializes a new empty ListMultiMap.
func NewListMultiMap[K comparable, V any]() *ListMultiMap[K, V] {
	return &ListMultiMap[K, V]{lists: map[K][]V{}}
}

// ListMultiMapOf initializes a ListMultiMap holding the given entries, in
// order.
func ListMultiMapOf[K comparable, V any](entries ...Entry[K, V]) *ListMultiMap[K, V] {
	lmm := NewListMultiMap[K, V]()
	lmm.UpdateAppend(entries...)
	return lmm
}

// Add appends an entry for the given key at the end of the map.
func (lmm *ListMultiMap[K, V]) Add(key K, value V) {
	lmm.lists[key] = append(lmm.lists[key], value)
	lmm.entries = append(lmm.entries[:len(lmm.entries):len(lmm.entries)], Entry[K, V]{Key: key, Value: value})
}

// SetList replaces the key's value list wholesale: existing entries for
// the key are removed and the new values are appended at the end of the
// order, one entry per value. An empty list removes the key.
func (lmm *ListMultiMap[K, V]) SetList(key K, values []V) {
	if _, ok := lmm.lists[key]; ok {
		lmm.entries = slicez.Filter(lmm.entries, func(entry Entry[K, V]) bool {
			return entry.Key != key
		})
		delete(lmm.lists, key)
	}

	lmm.AppendList(key, values...)
}

// AppendList appends the given values to the key's value list, adding one
// entry per value at the end of the order.
func (lmm *ListMultiMap[K, V]) AppendList(key K, values ...V) {
	for _, value := range values {
		lmm.Add(key, value)
	}
}

// GetList returns the value list stored for the key and whether the key
// existed. The returned slice is the primary storage; callers must not
// mutate it.
func (lmm *ListMultiMap[K, V]) GetList(key K) ([]V, bool) {
	values, ok := lmm.lists[key]
	if !ok {
		return []V{}, false
	}
	return values, true
}

// Get returns the last value inserted for the given key and whether the
// key existed.
func (lmm *ListMultiMap[K, V]) Get(key K) (V, bool) {
	values, ok := lmm.lists[key]
	if !ok || len(values) == 0 {
		var zero V
		return zero, false
	}
	return values[len(values)-1], true
}

// GetAll returns a copy of all values for the given key, in entry order.
// If the key does not exist, an empty slice is returned.
func (lmm *ListMultiMap[K, V]) GetAll(key K) []V {
	return append([]V{}, lmm.lists[key]...)
}

// Has returns true if the key has at least one entry.
func (lmm *ListMultiMap[K, V]) Has(key K) bool {
	_, ok := lmm.lists[key]
	return ok
}

// CountOf returns the number of entries stored for the given key.
func (lmm *ListMultiMap[K, V]) CountOf(key K) int {
	return len(lmm.lists[key])
}

// UpdateAppend concatenates the given pairs at the end of the entry list,
// unconditionally.
func (lmm *ListMultiMap[K, V]) UpdateAppend(pairs ...Entry[K, V]) {
	for _, pair := range pairs {
		lmm.Add(pair.Key, pair.Value)
	}
}

// UpdateReplace removes every current entry whose key appears in the
// given pairs, then appends the pairs at the end, preserving their
// internal duplicate structure.
func (lmm *ListMultiMap[K, V]) UpdateReplace(pairs ...Entry[K, V]) {
	incoming := keySetOf(pairs)
	for key := range incoming {
		delete(lmm.lists, key)
	}
	lmm.entries = slicez.Filter(lmm.entries, func(entry Entry[K, V]) bool {
		_, ok := incoming[entry.Key]
		return !ok
	})

	lmm.UpdateAppend(pairs...)
}

// UpdateInPlace rewrites existing entries in place, with the same
// contract as MultiMap.UpdateInPlace: the first current entry for an
// incoming key keeps its position and takes the last incoming value for
// that key; pairs for unknown keys are appended at the end.
func (lmm *ListMultiMap[K, V]) UpdateInPlace(pairs ...Entry[K, V]) {
	lastValue := make(map[K]V, len(pairs))
	for _, pair := range pairs {
		lastValue[pair.Key] = pair.Value
	}

	for key, value := range lastValue {
		values, ok := lmm.lists[key]
		if !ok {
			continue
		}

		// The first entry for a key is the head of its value list.
		rewritten := slices.Clone(values)
		rewritten[0] = value
		lmm.lists[key] = rewritten
	}

	consumed := make(map[K]struct{}, len(pairs))
	rewritten := cloneEntries(lmm.entries)
	for i, entry := range rewritten {
		value, ok := lastValue[entry.Key]
		if !ok {
			continue
		}
		if _, done := consumed[entry.Key]; done {
			continue
		}
		consumed[entry.Key] = struct{}{}
		rewritten[i].Value = value
	}
	lmm.entries = rewritten

	current := keySetOf(rewritten)
	for _, pair := range pairs {
		if _, ok := current[pair.Key]; !ok {
			lmm.Add(pair.Key, pair.Value)
		}
	}
}

// Deduplicate keeps a single entry per key, per the given mode.
func (lmm *ListMultiMap[K, V]) Deduplicate(mode DedupMode) error {
	deduped, err := dedupEntries(lmm.entries, mode)
	if err != nil {
		return err
	}

	lists := make(map[K][]V, len(deduped))
	for _, entry := range deduped {
		lists[entry.Key] = []V{entry.Value}
	}

	lmm.entries = deduped
	lmm.lists = lists
	return nil
}

// Delete removes *every* entry with the given key.
func (lmm *ListMultiMap[K, V]) Delete(key K) error {
	if _, ok := lmm.lists[key]; !ok {
		return NewKeyNotFoundError(key)
	}

	delete(lmm.lists, key)
	lmm.entries = slicez.Filter(lmm.entries, func(entry Entry[K, V]) bool {
		return entry.Key != key
	})
	return nil
}

// Pop returns the last value for the given key and removes every entry
// for that key.
func (lmm *ListMultiMap[K, V]) Pop(key K) (V, error) {
	value, ok := lmm.Get(key)
	if !ok {
		var zero V
		return zero, NewKeyNotFoundError(key)
	}

	// Key presence was just checked.
	_ = lmm.Delete(key)
	return value, nil
}

// PopEntry removes and returns the last (or first) raw entry of the
// ordered list, not grouped by key.
func (lmm *ListMultiMap[K, V]) PopEntry(last bool) (Entry[K, V], error) {
	if len(lmm.entries) == 0 {
		return Entry[K, V]{}, NewEmptyError()
	}

	var popped Entry[K, V]
	if last {
		popped = lmm.entries[len(lmm.entries)-1]
		lmm.entries = cloneEntries(lmm.entries[:len(lmm.entries)-1])
	} else {
		popped = lmm.entries[0]
		lmm.entries = cloneEntries(lmm.entries[1:])
	}

	values := lmm.lists[popped.Key]
	if len(values) <= 1 {
		delete(lmm.lists, popped.Key)
		return popped, nil
	}
	if last {
		lmm.lists[popped.Key] = slices.Clone(values[:len(values)-1])
	} else {
		lmm.lists[popped.Key] = slices.Clone(values[1:])
	}
	return popped, nil
}

// Clear removes all entries from the map.
func (lmm *ListMultiMap[K, V]) Clear() {
	lmm.lists = map[K][]V{}
	lmm.entries = nil
}

// IsEmpty returns true if the map holds no entries.
func (lmm *ListMultiMap[K, V]) IsEmpty() bool { return len(lmm.entries) == 0 }

// Len returns the number of *entries* in the map, duplicates included.
func (lmm *ListMultiMap[K, V]) Len() int { return len(lmm.entries) }

// KeyLen returns the number of distinct keys in the map.
func (lmm *ListMultiMap[K, V]) KeyLen() int { return len(lmm.lists) }

// Entries returns the ordered entry list. Callers must not write into the
// returned slice.
func (lmm *ListMultiMap[K, V]) Entries() []Entry[K, V] {
	return lmm.entries
}

// Keys returns the key of every entry, in entry order, duplicates
// included.
func (lmm *ListMultiMap[K, V]) Keys() []K {
	return slicez.Map(lmm.entries, func(entry Entry[K, V]) K { return entry.Key })
}

// DistinctKeys returns the distinct keys in first-occurrence order.
func (lmm *ListMultiMap[K, V]) DistinctKeys() []K {
	return slicez.Unique(lmm.Keys())
}

// Values returns the value of every entry, in entry order.
func (lmm *ListMultiMap[K, V]) Values() []V {
	return slicez.Map(lmm.entries, func(entry Entry[K, V]) V { return entry.Value })
}

// All returns an iterator over every entry in order.
func (lmm *ListMultiMap[K, V]) All() iter.Seq2[K, V] {
	entries := lmm.entries
	return func(yield func(K, V) bool) {
		for _, entry := range entries {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Clone returns a clone of the map.
func (lmm *ListMultiMap[K, V]) Clone() *ListMultiMap[K, V] {
	cloned := NewListMultiMap[K, V]()
	cloned.entries = cloneEntries(lmm.entries)
	for key, values := range lmm.lists {
		cloned.lists[key] = slices.Clone(values)
	}
	return cloned
}

// AsMultiMap converts to an entry-list-primary MultiMap holding the same
// entries.
func (lmm *ListMultiMap[K, V]) AsMultiMap() *MultiMap[K, V] {
	return MultiMapOf(lmm.entries...)
}

// ListEqual reports whether two list multimaps hold the same entries in
// the same order.
func ListEqual[K comparable, V comparable](a, b *ListMultiMap[K, V]) bool {
	return slices.Equal(a.entries, b.entries)
}
