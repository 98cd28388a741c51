// Package grapheme wraps uniseg with the cluster helpers the document model
// needs. Every index handled here is a grapheme-cluster index, never a byte
// or rune offset.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsDigit reports whether cluster is a single ASCII digit.
func IsDigit(cluster string) bool {
	return len(cluster) == 1 && cluster[0] >= '0' && cluster[0] <= '9'
}

// Width returns the terminal cell width of one cluster. runewidth handles
// the common cases; when it reports zero for a multi-rune cluster, uniseg
// gets the final say.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		if f := uniseg.StringWidth(cluster); f > w {
			w = f
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}

// IsSeparator reports whether cluster terminates an identifier for keyword
// and number-run boundary checks: whitespace, punctuation, or symbol runes.
func IsSeparator(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) && !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
