// Package document implements the line-oriented text buffer behind the
// editor: grapheme-indexed rows, structural edits, bidirectional substring
// search, and per-cluster lexical highlighting.
//
// Coordinates are 0-based. Columns are grapheme-cluster indices, never byte
// or rune offsets. Out-of-range positions never corrupt state: they are
// clamped or ignored, and only the file I/O entry points return errors.
package document
