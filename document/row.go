package document

import (
	"strings"

	"github.com/vellum-editor/vellum/internal/grapheme"
	"github.com/vellum-editor/vellum/syntax"
)

// Row is one buffered line: its grapheme clusters plus the classification
// marks of the last Highlight pass. Marks go stale on a structural edit and
// stay stale until the owning Document re-highlights the row.
type Row struct {
	clusters []string
	marks    []syntax.Kind
}

// NewRow builds a row from one line's text, without any line terminator.
func NewRow(s string) *Row {
	return &Row{clusters: grapheme.Split(s)}
}

// Len returns the row's length in grapheme clusters.
func (r *Row) Len() int {
	return len(r.clusters)
}

// Text returns the raw line text.
func (r *Row) Text() string {
	return grapheme.Join(r.clusters)
}

// Marks returns the classification tags of the last Highlight pass, one per
// cluster. The slice is owned by the row; callers must not modify it.
func (r *Row) Marks() []syntax.Kind {
	return r.marks
}

// Cluster returns the grapheme cluster at the given column, or an empty
// string when out of range. Renderers use it to restyle single cells.
func (r *Row) Cluster(at int) string {
	if at < 0 || at >= len(r.clusters) {
		return ""
	}
	return r.clusters[at]
}

// Insert places c at grapheme column at, appending when at is past the end.
// The cluster sequence is rebuilt from the spliced text rather than patched:
// a combining code point can merge with its neighbor and move cluster
// boundaries.
func (r *Row) Insert(at int, c rune) {
	if at < 0 {
		at = 0
	}
	if at >= len(r.clusters) {
		r.clusters = grapheme.Split(r.Text() + string(c))
		return
	}
	var sb strings.Builder
	for i, cl := range r.clusters {
		if i == at {
			sb.WriteRune(c)
		}
		sb.WriteString(cl)
	}
	r.clusters = grapheme.Split(sb.String())
}

// Delete removes the cluster at the given column; out of range is a no-op.
func (r *Row) Delete(at int) {
	if at < 0 || at >= len(r.clusters) {
		return
	}
	r.clusters = append(r.clusters[:at], r.clusters[at+1:]...)
}

// Append concatenates other's text onto the end of r.
func (r *Row) Append(other *Row) {
	r.clusters = append(r.clusters, other.clusters...)
}

// Split truncates r to [0, at) and returns a new row holding [at, Len).
// Both rows carry stale marks until re-highlighted.
func (r *Row) Split(at int) *Row {
	if at < 0 {
		at = 0
	}
	if at > len(r.clusters) {
		at = len(r.clusters)
	}
	rest := append([]string(nil), r.clusters[at:]...)
	r.clusters = append([]string(nil), r.clusters[:at]...)
	r.marks = nil
	return &Row{clusters: rest}
}

// Find locates query as a contiguous substring of the row text. Forward
// returns the first occurrence at or after from; Backward the last occurrence
// strictly before from. The byte offset of the substring match is mapped back
// to a grapheme column; a match starting inside a cluster does not count.
func (r *Row) Find(query string, from int, dir Direction) (int, bool) {
	if query == "" {
		return 0, false
	}
	if from < 0 {
		from = 0
	}
	if from > len(r.clusters) {
		from = len(r.clusters)
	}

	if dir == Forward {
		off := strings.Index(grapheme.Join(r.clusters[from:]), query)
		if off < 0 {
			return 0, false
		}
		return r.columnAtByte(from, off)
	}

	off := strings.LastIndex(grapheme.Join(r.clusters[:from]), query)
	if off < 0 {
		return 0, false
	}
	return r.columnAtByte(0, off)
}

// columnAtByte maps a byte offset, measured from the start of cluster base,
// to the grapheme column it begins. Offsets landing inside a cluster report
// no match.
func (r *Row) columnAtByte(base, off int) (int, bool) {
	n := 0
	for i := base; i < len(r.clusters); i++ {
		if n == off {
			return i, true
		}
		if n > off {
			break
		}
		n += len(r.clusters[i])
	}
	return 0, false
}

// Render produces the display string for grapheme columns [start, end),
// clipped to the row. An SGR color sequence precedes each maximal run of one
// highlight kind, and a single reset trails the whole segment. A tab renders
// as one space with no column expansion.
func (r *Row) Render(start, end int) string {
	if end > len(r.clusters) {
		end = len(r.clusters)
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		start = end
	}

	var sb strings.Builder
	current := syntax.None
	for i := start; i < end; i++ {
		k := syntax.None
		if i < len(r.marks) {
			k = r.marks[i]
		}
		if i == start || k != current {
			sb.WriteString(k.Sequence())
			current = k
		}
		if r.clusters[i] == "\t" {
			sb.WriteString(" ")
		} else {
			sb.WriteString(r.clusters[i])
		}
	}
	sb.WriteString(syntax.Reset)
	return sb.String()
}
