// Package urlquery parses and reconstructs URL query strings without the
// information loss of net/url.Values: duplicate keys keep their order and
// multiplicity, empty values stay distinct from bare keys, and Encode
// reproduces a canonical-form input byte for byte.
package urlquery

import (
	"net/url"
	"strings"

	"github.com/ordmap/ordmap/pkg/genutil"
	"github.com/ordmap/ordmap/pkg/genutil/slicez"
	"github.com/ordmap/ordmap/pkg/ordmap"
)

// Param is one decoded query parameter value.
type Param struct {
	// Value is the decoded parameter value; empty for both `k=` and `k`.
	Value string

	// Bare marks a key that appeared without `=`, so Encode can
	// reproduce the original form.
	Bare bool
}

// Parse decodes a raw query string into an ordered multi-value map,
// preserving duplicate keys in order. An empty raw string yields an empty
// map.
func Parse(raw string) (*ordmap.MultiMap[string, Param], error) {
	if raw == "" {
		return ordmap.NewMultiMap[string, Param](), nil
	}

	segments := strings.Split(raw, "&")
	params := ordmap.NewMultiMapWithCap[string, Param](genutil.MustEnsureUInt32(len(segments)))
	for i, segment := range segments {
		rawKey, rawValue, hasValue := strings.Cut(segment, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, NewInvalidEscapeError(i, "key", err)
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, NewInvalidEscapeError(i, "value", err)
		}

		params.Add(key, Param{Value: value, Bare: !hasValue})
	}
	return params, nil
}

// ParseStrings is Parse with the bare-key distinction dropped: bare keys
// decode to an empty string value.
func ParseStrings(raw string) (*ordmap.MultiMap[string, string], error) {
	params, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	return ordmap.MultiMapOf(slicez.Map(params.Entries(),
		func(entry ordmap.Entry[string, Param]) ordmap.Entry[string, string] {
			return ordmap.Entry[string, string]{Key: entry.Key, Value: entry.Value.Value}
		})...), nil
}

// Encode reconstructs the query string from the map's entries, in order.
// For input parsed from canonical form (no redundant escaping), Encode is
// the exact inverse of Parse.
func Encode(params *ordmap.MultiMap[string, Param]) string {
	var b strings.Builder
	for i, entry := range params.Entries() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(entry.Key))
		if entry.Value.Bare {
			continue
		}
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(entry.Value.Value))
	}
	return b.String()
}

// EncodeStrings encodes a plain string-valued map; every entry is emitted
// in `key=value` form.
func EncodeStrings(params *ordmap.MultiMap[string, string]) string {
	var b strings.Builder
	for i, entry := range params.Entries() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(entry.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(entry.Value))
	}
	return b.String()
}
