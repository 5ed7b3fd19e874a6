package svgdoc

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"

	"svgprops/attrs"
)

type treeWriter struct {
	w strings.Builder
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(&tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw *treeWriter) value(depth int, label, value string) {
	tw.line(depth, "%s: %s", label, encodeText(value))
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}

// Dump renders nodes of the document with their collected attributes as an
// indented tree. Intended for debug reports.
func (d *Document) Dump() string {
	tw := &treeWriter{}
	for _, n := range d.Nodes() {
		depth := strings.Count(n.Path, "/")
		tw.line(depth, "%s", n.Path)
		if len(n.Classes) > 0 {
			tw.value(depth+1, "class", strings.Join(n.Classes, " "))
		}
		dumpBag(tw, depth+1, n.Attrs)
		if len(n.Geometry) > 0 {
			tw.line(depth+1, "geometry:")
			for _, k := range sortedKeys(n.Geometry) {
				tw.value(depth+2, k, n.Geometry[k])
			}
		}
	}
	return tw.w.String()
}

func dumpBag(tw *treeWriter, depth int, b attrs.Bag) {
	for _, k := range sortedKeys(b) {
		sv, ok := b[k].(attrs.StyleValue)
		if !ok {
			tw.value(depth, k, attrs.String(b[k]))
			continue
		}
		switch sv.Kind {
		case attrs.StyleSingle:
			tw.line(depth, "%s:", k)
			dumpBag(tw, depth+1, sv.Single)
		case attrs.StyleSequence:
			for i, entry := range sv.Sequence {
				tw.line(depth, "%s[%d]:", k, i)
				dumpBag(tw, depth+1, entry)
			}
		}
	}
}

// sortedKeys orders keys naturally, "x2" goes before "x10".
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := slices.Collect(maps.Keys(m))
	sort.Sort(natural.StringSlice(keys))
	return keys
}
