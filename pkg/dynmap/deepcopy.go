package dynmap

// DeepCopy returns a deep copy of the map. Self-references survive: a map
// stored inside itself appears in the copy as the copy, not as the
// original. Values of unrecognized types are copied by reference.
func (m *Map) DeepCopy() *Map {
	return m.deepCopy(map[*Map]*Map{})
}

// deepCopy threads a visited map from original to copy through the
// recursion so every cycle lands on the already-built duplicate.
func (m *Map) deepCopy(copies map[*Map]*Map) *Map {
	if dup, ok := copies[m]; ok {
		return dup
	}

	dup := New(m.options...)
	copies[m] = dup

	for _, entry := range m.store.Entries() {
		dup.store.Add(entry.Key, deepCopyValue(entry.Value, copies))
	}
	for name, value := range m.attrs {
		dup.attrs[name] = deepCopyValue(value, copies)
	}
	return dup
}

func deepCopyValue(value any, copies map[*Map]*Map) any {
	switch typed := value.(type) {
	case *Map:
		return typed.deepCopy(copies)

	case []any:
		duplicated := make([]any, len(typed))
		for i, element := range typed {
			duplicated[i] = deepCopyValue(element, copies)
		}
		return duplicated

	case map[string]any:
		duplicated := make(map[string]any, len(typed))
		for key, element := range typed {
			duplicated[key] = deepCopyValue(element, copies)
		}
		return duplicated

	default:
		return value
	}
}
