package document

import (
	"testing"

	"github.com/vellum-editor/vellum/syntax"
)

func TestNewRow_LenCountsGraphemes(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "hello", want: 5},
		{text: "héllo", want: 5},
		{text: "é", want: 1},                    // combining acute
		{text: "a" + "👨‍👩‍👧‍👦" + "b", want: 3}, // ZWJ family
		{text: "日本語", want: 3},
	}
	for _, tc := range cases {
		if got := NewRow(tc.text).Len(); got != tc.want {
			t.Fatalf("NewRow(%q).Len()=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestRow_InsertThenDelete_RestoresText(t *testing.T) {
	original := "héllo 世界"
	n := NewRow(original).Len()
	for x := 0; x <= n; x++ {
		row := NewRow(original)
		row.Insert(x, 'Z')
		if got, want := row.Len(), n+1; got != want {
			t.Fatalf("after insert at %d: len=%d, want %d", x, got, want)
		}
		row.Delete(x)
		if got := row.Text(); got != original {
			t.Fatalf("after insert+delete at %d: text=%q, want %q", x, got, original)
		}
		if got := row.Len(); got != n {
			t.Fatalf("after insert+delete at %d: len=%d, want %d", x, got, n)
		}
	}
}

func TestRow_InsertPastEnd_Appends(t *testing.T) {
	row := NewRow("ab")
	row.Insert(99, 'c')
	if got, want := row.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestRow_InsertCombiningMark_MergesCluster(t *testing.T) {
	row := NewRow("e")
	row.Insert(1, '́')
	if got, want := row.Text(), "é"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := row.Len(), 1; got != want {
		t.Fatalf("len=%d, want %d: combining mark must merge into one cluster", got, want)
	}
}

func TestRow_DeletePastEnd_NoOp(t *testing.T) {
	row := NewRow("ab")
	row.Delete(2)
	if got, want := row.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestRow_SplitThenAppend_Reconstructs(t *testing.T) {
	original := "fn main() { 日本語 }"
	n := NewRow(original).Len()
	for k := 0; k <= n; k++ {
		row := NewRow(original)
		rest := row.Split(k)
		if got, want := row.Len()+rest.Len(), n; got != want {
			t.Fatalf("split at %d: lengths %d+%d, want sum %d", k, row.Len(), rest.Len(), want)
		}
		row.Append(rest)
		if got := row.Text(); got != original {
			t.Fatalf("split at %d then append: text=%q, want %q", k, got, original)
		}
		if got := row.Len(); got != n {
			t.Fatalf("split at %d then append: len=%d, want %d", k, got, n)
		}
	}
}

func TestRow_Find_Forward(t *testing.T) {
	row := NewRow("one two one")
	cases := []struct {
		query string
		from  int
		want  int
		ok    bool
	}{
		{query: "one", from: 0, want: 0, ok: true},
		{query: "one", from: 1, want: 8, ok: true},
		{query: "two", from: 0, want: 4, ok: true},
		{query: "two", from: 5, ok: false},
		{query: "three", from: 0, ok: false},
		{query: "", from: 0, ok: false},
	}
	for _, tc := range cases {
		got, ok := row.Find(tc.query, tc.from, Forward)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("Find(%q, %d, forward)=(%d,%v), want (%d,%v)", tc.query, tc.from, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRow_Find_Backward(t *testing.T) {
	row := NewRow("one two one")
	cases := []struct {
		query string
		from  int
		want  int
		ok    bool
	}{
		{query: "one", from: row.Len(), want: 8, ok: true},
		{query: "one", from: 8, want: 0, ok: true}, // strictly before from
		{query: "one", from: 0, ok: false},
		{query: "two", from: row.Len(), want: 4, ok: true},
	}
	for _, tc := range cases {
		got, ok := row.Find(tc.query, tc.from, Backward)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("Find(%q, %d, backward)=(%d,%v), want (%d,%v)", tc.query, tc.from, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRow_Find_MapsByteOffsetToGraphemeColumn(t *testing.T) {
	row := NewRow("éx") // one two-codepoint cluster, then "x"
	got, ok := row.Find("x", 0, Forward)
	if !ok || got != 1 {
		t.Fatalf("Find(x)=(%d,%v), want (1,true)", got, ok)
	}
	// A byte-level match that starts inside a cluster is not a column match.
	if _, ok := row.Find("́x", 0, Forward); ok {
		t.Fatalf("match starting inside a cluster must not be reported")
	}
}

func TestRow_Render_MarksRunsAndResets(t *testing.T) {
	row := NewRow("x 42")
	row.Highlight(syntax.Options{Numbers: true}, "")

	want := syntax.None.Sequence() + "x " + syntax.Number.Sequence() + "42" + syntax.Reset
	if got := row.Render(0, row.Len()); got != want {
		t.Fatalf("render=%q, want %q", got, want)
	}
}

func TestRow_Render_ClipsAndSubstitutesTab(t *testing.T) {
	row := NewRow("\tabc")
	row.Highlight(syntax.Options{}, "")

	if got, want := row.Render(0, 1), syntax.None.Sequence()+" "+syntax.Reset; got != want {
		t.Fatalf("tab render=%q, want %q", got, want)
	}
	if got, want := row.Render(2, 99), syntax.None.Sequence()+"bc"+syntax.Reset; got != want {
		t.Fatalf("clipped render=%q, want %q", got, want)
	}
	if got, want := row.Render(7, 3), syntax.Reset; got != want {
		t.Fatalf("empty render=%q, want %q", got, want)
	}
}
