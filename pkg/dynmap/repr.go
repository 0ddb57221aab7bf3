package dynmap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// ellipsis is rendered in place of a value whose rendering is already in
// progress, breaking cycles.
const ellipsis = "{...}"

// reprGuard tracks maps whose String() is currently executing, keyed by
// identity. It protects against re-entry through values of unknown types
// whose own Stringer calls back into a map under render; cycles through
// values the renderer itself traverses are handled by the explicit
// visited set instead.
//
// The guard is only sufficient for the repr use case: two goroutines
// rendering the same map concurrently may see an ellipsis where a full
// rendering was possible. It makes no broader thread-safety claim.
var reprGuard = xsync.NewMap[*Map, struct{}]()

// String renders the map in insertion order, with `{...}` in place of any
// self-reference. Private attributes are not rendered.
func (m *Map) String() string {
	if _, loaded := reprGuard.LoadOrStore(m, struct{}{}); loaded {
		return ellipsis
	}
	defer reprGuard.Delete(m)

	visiting := map[*Map]struct{}{m: {}}
	return m.render(visiting)
}

// render walks the entry list with an explicit currently-visiting set
// threaded through the recursion.
func (m *Map) render(visiting map[*Map]struct{}) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, entry := range m.store.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(entry.Key)
		b.WriteString(": ")
		b.WriteString(renderValue(entry.Value, visiting))
	}
	b.WriteByte('}')
	return b.String()
}

func renderValue(value any, visiting map[*Map]struct{}) string {
	switch typed := value.(type) {
	case nil:
		return "null"

	case *Map:
		if _, ok := visiting[typed]; ok {
			return ellipsis
		}
		visiting[typed] = struct{}{}
		rendered := typed.render(visiting)
		delete(visiting, typed)
		return rendered

	case []any:
		var b strings.Builder
		b.WriteByte('[')
		for i, element := range typed {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderValue(element, visiting))
		}
		b.WriteByte(']')
		return b.String()

	case string:
		return strconv.Quote(typed)

	default:
		return fmt.Sprintf("%v", typed)
	}
}
