package ordmap

import (
	"github.com/ordmap/ordmap/pkg/genutil/slicez"
)

// DedupMode selects which entry survives deduplication when a key has
// multiple entries.
type DedupMode int

const (
	// KeepLast keeps the last entry for each key, at its original
	// position. This mirrors the "last value wins" point-lookup rule and
	// is the default.
	KeepLast DedupMode = iota

	// KeepFirst keeps the first entry for each key, at its original
	// position.
	KeepFirst
)

// String returns the mode name.
func (m DedupMode) String() string {
	switch m {
	case KeepLast:
		return "last"
	case KeepFirst:
		return "first"
	default:
		return "unknown"
	}
}

// ParseDedupMode parses a textual deduplication mode.
func ParseDedupMode(mode string) (DedupMode, error) {
	switch mode {
	case "last":
		return KeepLast, nil
	case "first":
		return KeepFirst, nil
	default:
		return KeepLast, NewUnknownDedupModeError(mode)
	}
}

// dedupEntries returns the surviving entries for the given mode. The
// returned slice is freshly allocated.
func dedupEntries[K comparable, V any](entries []Entry[K, V], mode DedupMode) ([]Entry[K, V], error) {
	switch mode {
	case KeepFirst:
		return slicez.UniqueByFunc(entries, func(entry Entry[K, V]) K {
			return entry.Key
		}), nil

	case KeepLast:
		lastIndex := make(map[K]int, len(entries))
		for i, entry := range entries {
			lastIndex[entry.Key] = i
		}
		kept := make([]Entry[K, V], 0, len(lastIndex))
		for i, entry := range entries {
			if lastIndex[entry.Key] == i {
				kept = append(kept, entry)
			}
		}
		return kept, nil

	default:
		return nil, NewUnknownDedupModeError(mode.String())
	}
}
