package document

import (
	"github.com/vellum-editor/vellum/internal/grapheme"
	"github.com/vellum-editor/vellum/syntax"
)

// Highlight reclassifies every cluster of the row in one left-to-right pass,
// first match wins: comment, string, character literal, number run, primary
// keyword, secondary keyword, search-word match, then None. word, when
// non-empty, marks live search matches. Only same-row state is carried;
// nothing survives across rows.
func (r *Row) Highlight(opts syntax.Options, word string) {
	n := len(r.clusters)
	marks := make([]syntax.Kind, n)
	matches := r.matchSpans(word)

	i := 0
	for i < n {
		c := r.clusters[i]

		if opts.Comments && c == "/" && i+1 < n && r.clusters[i+1] == "/" {
			for ; i < n; i++ {
				marks[i] = syntax.Comment
			}
			break
		}

		if opts.Strings && c == `"` {
			marks[i] = syntax.String
			i++
			for i < n {
				marks[i] = syntax.String
				i++
				if r.clusters[i-1] == `"` {
					break
				}
			}
			continue
		}

		if opts.Characters && c == "'" {
			if closing, ok := characterEnd(r.clusters, i); ok {
				for j := i; j <= closing; j++ {
					marks[j] = syntax.Character
				}
				i = closing + 1
				continue
			}
		}

		if opts.Numbers && grapheme.IsDigit(c) && startsWord(r.clusters, i) {
			marks[i] = syntax.Number
			i++
			for i < n && (grapheme.IsDigit(r.clusters[i]) || r.clusters[i] == ".") {
				marks[i] = syntax.Number
				i++
			}
			continue
		}

		if length, kind, ok := matchKeyword(r.clusters, i, opts); ok {
			for j := 0; j < length; j++ {
				marks[i+j] = kind
			}
			i += length
			continue
		}

		if length, ok := matches[i]; ok {
			for j := 0; j < length && i+j < n; j++ {
				marks[i+j] = syntax.Match
			}
			i += length
			continue
		}

		marks[i] = syntax.None
		i++
	}

	r.marks = marks
}

// matchSpans returns the start column and cluster length of every
// non-overlapping occurrence of word in the row.
func (r *Row) matchSpans(word string) map[int]int {
	if word == "" {
		return nil
	}
	length := len(grapheme.Split(word))
	spans := make(map[int]int)
	from := 0
	for {
		col, ok := r.Find(word, from, Forward)
		if !ok {
			break
		}
		spans[col] = length
		from = col + length
	}
	return spans
}

// characterEnd returns the column of the closing quote for a character
// literal opening at col: 'x' or, with a backslash escape, '\x'. The scan
// never leaves the row.
func characterEnd(clusters []string, col int) (int, bool) {
	closing := col + 2
	if col+1 < len(clusters) && clusters[col+1] == "\\" {
		closing = col + 3
	}
	if closing < len(clusters) && clusters[closing] == "'" {
		return closing, true
	}
	return 0, false
}

// startsWord reports whether col sits at an identifier boundary.
func startsWord(clusters []string, col int) bool {
	return col == 0 || grapheme.IsSeparator(clusters[col-1])
}

// matchKeyword tries the primary then the secondary table at col. A keyword
// only matches as a maximal identifier run: separated on both sides.
func matchKeyword(clusters []string, col int, opts syntax.Options) (int, syntax.Kind, bool) {
	if !startsWord(clusters, col) {
		return 0, syntax.None, false
	}
	for _, kw := range opts.Primary {
		if length, ok := keywordAt(clusters, col, kw); ok {
			return length, syntax.PrimaryKeyword, true
		}
	}
	for _, kw := range opts.Secondary {
		if length, ok := keywordAt(clusters, col, kw); ok {
			return length, syntax.SecondaryKeyword, true
		}
	}
	return 0, syntax.None, false
}

func keywordAt(clusters []string, col int, kw string) (int, bool) {
	kcl := grapheme.Split(kw)
	if len(kcl) == 0 || col+len(kcl) > len(clusters) {
		return 0, false
	}
	for i, c := range kcl {
		if clusters[col+i] != c {
			return 0, false
		}
	}
	end := col + len(kcl)
	if end < len(clusters) && !grapheme.IsSeparator(clusters[end]) {
		return 0, false
	}
	return len(kcl), true
}
