// Package ordmap implements a family of insertion-ordered maps: an
// ordered map with unique keys, a multi-value ordered map that preserves
// duplicate keys, and a variant of the latter optimized for per-key list
// access.
//
// All variants keep an ordered entry list as the source of truth for
// iteration order and multiplicity. Point lookups go through a derived
// index that always reflects the *last* value inserted for a key.
package ordmap

// Entry is one (key, value) pair in the ordered backing store. Keys need
// not be unique across entries in the multi-value variants.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// E constructs an Entry. It exists to keep literal entry lists readable.
func E[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// entriesOfMap converts a plain map into an entry list. The resulting
// order follows Go map iteration order and is therefore unspecified.
func entriesOfMap[K comparable, V any](m map[K]V) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// cloneEntries returns a copy the caller may freely retain. Mutating
// methods never touch a previously installed entry slice, so handing out
// the backing slice directly is also safe for read-only use.
func cloneEntries[K comparable, V any](entries []Entry[K, V]) []Entry[K, V] {
	cloned := make([]Entry[K, V], len(entries))
	copy(cloned, entries)
	return cloned
}

// keySetOf collects the distinct keys of an entry list.
func keySetOf[K comparable, V any](entries []Entry[K, V]) map[K]struct{} {
	keys := make(map[K]struct{}, len(entries))
	for _, entry := range entries {
		keys[entry.Key] = struct{}{}
	}
	return keys
}
