package dynmap

import (
	"github.com/ordmap/ordmap/pkg/ordmap"
)

// PairsFromArgs normalizes the heterogeneous call conventions accepted by
// constructors and bulk updates into one pair sequence: at most one
// positional data source (a pair slice, a plain map, or a compatible map
// instance) followed by keyword pairs.
//
// More than one positional source fails with TooManyArgsError. In strict
// mode, combining a positional source with keyword pairs fails with
// AmbiguousArgsError, since the relative order of the two would be
// arbitrary.
func PairsFromArgs(args []any, kwargs []Entry, strict bool) ([]Entry, error) {
	if len(args) > 1 {
		return nil, NewTooManyArgsError(len(args))
	}

	var pairs []Entry
	if len(args) == 1 {
		if strict && len(kwargs) > 0 {
			return nil, NewAmbiguousArgsError()
		}

		positional, err := pairsOf(args[0])
		if err != nil {
			return nil, err
		}
		pairs = positional
	}

	return append(pairs, kwargs...), nil
}

// pairsOf is the single ingestion point for positional data sources. It
// validates pair shape, reporting the index and element count of any
// malformed item.
func pairsOf(source any) ([]Entry, error) {
	switch data := source.(type) {
	case nil:
		return nil, nil

	case *Map:
		return append([]Entry{}, data.Entries()...), nil

	case *ordmap.MultiMap[string, any]:
		return append([]Entry{}, data.Entries()...), nil

	case *ordmap.OrderedMap[string, any]:
		return append([]Entry{}, data.Entries()...), nil

	case []Entry:
		return append([]Entry{}, data...), nil

	case map[string]any:
		pairs := make([]Entry, 0, len(data))
		for key, value := range data {
			pairs = append(pairs, Entry{Key: key, Value: value})
		}
		return pairs, nil

	case [][2]any:
		pairs := make([]Entry, 0, len(data))
		for i, item := range data {
			key, ok := item[0].(string)
			if !ok {
				return nil, NewNonStringKeyError(i, item[0])
			}
			pairs = append(pairs, Entry{Key: key, Value: item[1]})
		}
		return pairs, nil

	case [][]any:
		pairs := make([]Entry, 0, len(data))
		for i, item := range data {
			pair, err := pairAt(i, item)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, pair)
		}
		return pairs, nil

	case []any:
		pairs := make([]Entry, 0, len(data))
		for i, item := range data {
			switch typed := item.(type) {
			case []any:
				pair, err := pairAt(i, typed)
				if err != nil {
					return nil, err
				}
				pairs = append(pairs, pair)
			case [2]any:
				key, ok := typed[0].(string)
				if !ok {
					return nil, NewNonStringKeyError(i, typed[0])
				}
				pairs = append(pairs, Entry{Key: key, Value: typed[1]})
			case Entry:
				pairs = append(pairs, typed)
			default:
				return nil, NewMalformedPairError(i, 1)
			}
		}
		return pairs, nil

	default:
		return nil, NewUnsupportedSourceError(source)
	}
}

// pairAt validates that an item holds exactly two elements with a string
// key.
func pairAt(index int, item []any) (Entry, error) {
	if len(item) != 2 {
		return Entry{}, NewMalformedPairError(index, len(item))
	}

	key, ok := item[0].(string)
	if !ok {
		return Entry{}, NewNonStringKeyError(index, item[0])
	}
	return Entry{Key: key, Value: item[1]}, nil
}

// FromArgs constructs a Map from normalized call arguments.
func FromArgs(args []any, kwargs []Entry, strict bool, options ...Option) (*Map, error) {
	pairs, err := PairsFromArgs(args, kwargs, strict)
	if err != nil {
		return nil, err
	}

	m := New(options...)
	m.Update(pairs...)
	return m, nil
}

// UpdateArgs applies normalized call arguments to an existing map with
// its default update semantics.
func (m *Map) UpdateArgs(args []any, kwargs []Entry, strict bool) error {
	pairs, err := PairsFromArgs(args, kwargs, strict)
	if err != nil {
		return err
	}

	m.Update(pairs...)
	return nil
}
