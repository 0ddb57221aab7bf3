package ordmap

import (
	"iter"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ordmap/ordmap/pkg/genutil/slicez"
)

// ReadOnlyMultiMap is a read-only view over a multi-value ordered map.
type ReadOnlyMultiMap[K comparable, V any] interface {
	// Has returns true if the key has at least one entry.
	Has(key K) bool

	// Get returns the last value inserted for the given key and whether
	// the key existed.
	Get(key K) (V, bool)

	// GetAll returns all values for the given key, in entry order.
	// If the key does not exist, an empty slice is returned.
	GetAll(key K) []V

	// IsEmpty returns true if the map holds no entries.
	IsEmpty() bool

	// Len returns the number of *entries* in the map, duplicates included.
	Len() int

	// KeyLen returns the number of distinct keys in the map.
	KeyLen() int

	// Entries returns the ordered entry list.
	Entries() []Entry[K, V]

	// Keys returns the key of every entry, in entry order, duplicates
	// included.
	Keys() []K

	// Values returns the value of every entry, in entry order.
	Values() []V
}

// MultiMap is an insertion-ordered map that can hold more than one entry
// per key. Duplicate keys are preserved, in order, until explicitly
// deduplicated or deleted.
//
// The ordered entry list is the authoritative state. Every mutation
// installs a freshly built list and then rebuilds the point-lookup index,
// so entry slices handed out before the mutation remain stable snapshots.
//
// A MultiMap is not safe for concurrent use; callers sharing one across
// goroutines must synchronize mutating calls themselves.
type MultiMap[K comparable, V any] struct {
	entries []Entry[K, V]
	index   map[K]V
	counts  map[K]int
}

// NewMultiMap initializes a new empty MultiMap.
func NewMultiMap[K comparable, V any]() *MultiMap[K, V] {
	mm := &MultiMap[K, V]{}
	mm.install(nil)
	return mm
}

// NewMultiMapWithCap initializes with the provided capacity for the entry
// list.
func NewMultiMapWithCap[K comparable, V any](capacity uint32) *MultiMap[K, V] {
	mm := &MultiMap[K, V]{}
	mm.install(make([]Entry[K, V], 0, capacity))
	return mm
}

// MultiMapOf initializes a MultiMap holding the given entries, in order.
func MultiMapOf[K comparable, V any](entries ...Entry[K, V]) *MultiMap[K, V] {
	mm := &MultiMap[K, V]{}
	mm.install(cloneEntries(entries))
	return mm
}

// MultiMapFromMap initializes a MultiMap from a plain map. The resulting
// entry order follows Go map iteration order and is therefore unspecified.
func MultiMapFromMap[K comparable, V any](m map[K]V) *MultiMap[K, V] {
	mm := &MultiMap[K, V]{}
	mm.install(entriesOfMap(m))
	return mm
}

// install swaps in a new entry list and eagerly rebuilds the derived
// index. The index maps each key to its *last* value; counts tracks entry
// multiplicity per key.
func (mm *MultiMap[K, V]) install(entries []Entry[K, V]) {
	index := make(map[K]V, len(entries))
	counts := make(map[K]int, len(entries))
	for _, entry := range entries {
		index[entry.Key] = entry.Value
		counts[entry.Key]++
	}

	mm.entries = entries
	mm.index = index
	mm.counts = counts
}

// appended returns the current entry list with extra entries appended,
// without ever writing into the currently installed backing array.
func (mm *MultiMap[K, V]) appended(extra ...Entry[K, V]) []Entry[K, V] {
	clipped := mm.entries[:len(mm.entries):len(mm.entries)]
	return append(clipped, extra...)
}

// Add appends an entry for the given key at the end of the map.
//
// If entries already exist for the key, this value is appended *without
// comparison*: the same value can be added twice.
func (mm *MultiMap[K, V]) Add(key K, value V) {
	mm.install(mm.appended(Entry[K, V]{Key: key, Value: value}))
}

// Set replaces every entry for the given key with a single entry at the
// end of the map. Unlike a plain map assignment, an updated key always
// moves to the end.
func (mm *MultiMap[K, V]) Set(key K, value V) {
	mm.UpdateReplace(Entry[K, V]{Key: key, Value: value})
}

// UpdateAppend concatenates the given pairs at the end of the entry list,
// unconditionally. Duplicates accumulate; see Deduplicate.
//
// This is the default update semantics of the map.
func (mm *MultiMap[K, V]) UpdateAppend(pairs ...Entry[K, V]) {
	mm.install(mm.appended(pairs...))
}

// UpdateReplace removes every current entry whose key appears in the
// given pairs, regardless of position, then appends the pairs at the end,
// preserving their internal duplicate structure.
func (mm *MultiMap[K, V]) UpdateReplace(pairs ...Entry[K, V]) {
	incoming := keySetOf(pairs)
	kept := slicez.Filter(mm.entries, func(entry Entry[K, V]) bool {
		_, ok := incoming[entry.Key]
		return !ok
	})
	mm.install(append(kept, pairs...))
}

// UpdateInPlace rewrites existing entries in place: for each current entry
// whose key appears in the given pairs and has not yet been consumed, the
// entry keeps its position but takes the *last* value for that key among
// the pairs. Each incoming key is consumed by its first match, so only the
// first matching current entry is rewritten. Pairs whose key has no
// current entry are appended at the end in their original order.
func (mm *MultiMap[K, V]) UpdateInPlace(pairs ...Entry[K, V]) {
	lastValue := make(map[K]V, len(pairs))
	for _, pair := range pairs {
		lastValue[pair.Key] = pair.Value
	}

	consumed := make(map[K]struct{}, len(pairs))
	rewritten := make([]Entry[K, V], 0, len(mm.entries)+len(pairs))
	for _, entry := range mm.entries {
		value, ok := lastValue[entry.Key]
		if ok {
			if _, done := consumed[entry.Key]; !done {
				consumed[entry.Key] = struct{}{}
				entry.Value = value
			}
		}
		rewritten = append(rewritten, entry)
	}

	current := keySetOf(mm.entries)
	for _, pair := range pairs {
		if _, ok := current[pair.Key]; !ok {
			rewritten = append(rewritten, pair)
		}
	}

	mm.install(rewritten)
}

// Deduplicate keeps a single entry per key, per the given mode, discarding
// the rest while preserving each survivor's original position. Calling it
// twice with the same mode is a no-op the second time.
func (mm *MultiMap[K, V]) Deduplicate(mode DedupMode) error {
	deduped, err := dedupEntries(mm.entries, mode)
	if err != nil {
		return err
	}

	mm.install(deduped)
	return nil
}

// Delete removes *every* entry with the given key. This intentionally
// differs from single-value map semantics.
func (mm *MultiMap[K, V]) Delete(key K) error {
	if !mm.Has(key) {
		return NewKeyNotFoundError(key)
	}

	mm.install(slicez.Filter(mm.entries, func(entry Entry[K, V]) bool {
		return entry.Key != key
	}))
	return nil
}

// Pop returns the last value for the given key and removes every entry
// for that key.
func (mm *MultiMap[K, V]) Pop(key K) (V, error) {
	value, ok := mm.index[key]
	if !ok {
		var zero V
		return zero, NewKeyNotFoundError(key)
	}

	mm.install(slicez.Filter(mm.entries, func(entry Entry[K, V]) bool {
		return entry.Key != key
	}))
	return value, nil
}

// PopOr is Pop with a fallback value when the key has no entries.
func (mm *MultiMap[K, V]) PopOr(key K, fallback V) V {
	value, err := mm.Pop(key)
	if err != nil {
		return fallback
	}
	return value
}

// PopEntry removes and returns the last (or first) raw entry of the
// ordered list, not grouped by key.
func (mm *MultiMap[K, V]) PopEntry(last bool) (Entry[K, V], error) {
	if len(mm.entries) == 0 {
		return Entry[K, V]{}, NewEmptyError()
	}

	var popped Entry[K, V]
	var remaining []Entry[K, V]
	if last {
		popped = mm.entries[len(mm.entries)-1]
		remaining = cloneEntries(mm.entries[:len(mm.entries)-1])
	} else {
		popped = mm.entries[0]
		remaining = cloneEntries(mm.entries[1:])
	}

	mm.install(remaining)
	return popped, nil
}

// Clear removes all entries from the map.
func (mm *MultiMap[K, V]) Clear() {
	mm.install(nil)
}

// Has returns true if the key has at least one entry.
func (mm *MultiMap[K, V]) Has(key K) bool {
	_, ok := mm.index[key]
	return ok
}

// Get returns the last value inserted for the given key and whether the
// key existed.
func (mm *MultiMap[K, V]) Get(key K) (V, bool) {
	value, ok := mm.index[key]
	return value, ok
}

// GetOr returns the last value for the key, or the fallback when the key
// has no entries.
func (mm *MultiMap[K, V]) GetOr(key K, fallback V) V {
	if value, ok := mm.index[key]; ok {
		return value
	}
	return fallback
}

// GetAll returns all values for the given key, in entry order. If the key
// does not exist, an empty slice is returned.
func (mm *MultiMap[K, V]) GetAll(key K) []V {
	values := make([]V, 0, mm.counts[key])
	for _, entry := range mm.entries {
		if entry.Key == key {
			values = append(values, entry.Value)
		}
	}
	return values
}

// CountOf returns the number of entries stored for the given key.
func (mm *MultiMap[K, V]) CountOf(key K) int {
	return mm.counts[key]
}

// IsEmpty returns true if the map holds no entries.
func (mm *MultiMap[K, V]) IsEmpty() bool { return len(mm.entries) == 0 }

// Len returns the number of *entries* in the map, duplicates included.
func (mm *MultiMap[K, V]) Len() int { return len(mm.entries) }

// KeyLen returns the number of distinct keys in the map.
func (mm *MultiMap[K, V]) KeyLen() int { return len(mm.index) }

// Entries returns the ordered entry list. The returned slice is the
// current snapshot; it is never mutated by later operations on the map,
// and callers must not write into it.
func (mm *MultiMap[K, V]) Entries() []Entry[K, V] {
	return mm.entries
}

// Keys returns the key of every entry, in entry order, duplicates
// included.
func (mm *MultiMap[K, V]) Keys() []K {
	return slicez.Map(mm.entries, func(entry Entry[K, V]) K { return entry.Key })
}

// DistinctKeys returns the distinct keys in first-occurrence order.
func (mm *MultiMap[K, V]) DistinctKeys() []K {
	return slicez.Unique(mm.Keys())
}

// Values returns the value of every entry, in entry order.
func (mm *MultiMap[K, V]) Values() []V {
	return slicez.Map(mm.entries, func(entry Entry[K, V]) V { return entry.Value })
}

// All returns an iterator over every entry in order. Duplicate keys are
// yielded once per entry.
func (mm *MultiMap[K, V]) All() iter.Seq2[K, V] {
	entries := mm.entries
	return func(yield func(K, V) bool) {
		for _, entry := range entries {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Clone returns a clone of the map.
func (mm *MultiMap[K, V]) Clone() *MultiMap[K, V] {
	cloned := &MultiMap[K, V]{}
	cloned.install(cloneEntries(mm.entries))
	return cloned
}

// AsReadOnly returns a read-only *copy* of the map.
func (mm *MultiMap[K, V]) AsReadOnly() ReadOnlyMultiMap[K, V] {
	return mm.Clone()
}

// Equal reports whether two multi-value maps hold the same entries in the
// same order. Identical entry sequences imply identical effective views,
// so this is the strongest equality the family offers.
func Equal[K comparable, V comparable](a, b *MultiMap[K, V]) bool {
	return slices.Equal(a.entries, b.entries)
}

// EqualMap compares a multi-value map against a plain map by effective
// view only: the last value per key. Ordering and multiplicity are not
// considered, so a map holding duplicate entries can compare equal to a
// plain map that cannot represent them. This lossy policy is deliberate
// and documented; use Equal for the full contract.
func EqualMap[K comparable, V comparable](mm *MultiMap[K, V], other map[K]V) bool {
	return maps.Equal(mm.index, other)
}

// IndexOfValue returns the position of the value within the entries for
// the given key, or -1 if not present.
func IndexOfValue[K comparable, V comparable](mm *MultiMap[K, V], key K, value V) int {
	for i, candidate := range mm.GetAll(key) {
		if candidate == value {
			return i
		}
	}
	return -1
}
