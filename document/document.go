package document

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/vellum-editor/vellum/syntax"
)

// Document is the ordered sequence of rows for one open file, plus its
// metadata: file name, inferred file type, and the dirty flag. The document
// owns its rows and file type exclusively; callers never share them.
type Document struct {
	rows     []*Row
	fileName string
	fileType syntax.FileType
	dirty    bool
}

// New returns an empty, clean document. name may be empty for a scratch
// buffer; a non-empty name already selects the file type.
func New(name string) *Document {
	return &Document{fileName: name, fileType: syntax.FileTypeFor(name)}
}

// Open reads path in full, splits the content into rows (line terminators
// are not stored), and highlights every row against the file type inferred
// from path. Read failures surface to the caller untouched.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	ft := syntax.FileTypeFor(path)
	lines := splitLines(string(data))
	rows := make([]*Row, 0, len(lines))
	for _, line := range lines {
		row := NewRow(line)
		row.Highlight(ft.Options, "")
		rows = append(rows, row)
	}

	return &Document{rows: rows, fileName: path, fileType: ft}, nil
}

// splitLines splits file content on line terminators. A trailing terminator
// does not produce an extra empty row, and a trailing \r per line is
// stripped so CRLF files load cleanly.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Save writes every row's raw text, each followed by one line terminator,
// re-inferring the file type from the current name. Without a file name the
// call is a no-op: prompting for one is the caller's job. The buffer, dirty
// flag, and file type stay untouched unless the whole write succeeds.
func (d *Document) Save() error {
	if d.fileName == "" {
		return nil
	}

	f, err := os.Create(d.fileName)
	if err != nil {
		return fmt.Errorf("save %s: %w", d.fileName, err)
	}
	w := bufio.NewWriter(f)
	for _, row := range d.rows {
		if _, err := w.WriteString(row.Text()); err != nil {
			f.Close()
			return fmt.Errorf("save %s: %w", d.fileName, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return fmt.Errorf("save %s: %w", d.fileName, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", d.fileName, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", d.fileName, err)
	}

	d.fileType = syntax.FileTypeFor(d.fileName)
	for _, row := range d.rows {
		row.Highlight(d.fileType.Options, "")
	}
	d.dirty = false
	return nil
}

// Insert places c at position at and re-highlights the affected row. A line
// terminator delegates to InsertNewline. at.Y equal to the row count appends
// a new single-character row; past it, the call is a silent no-op.
func (d *Document) Insert(at Position, c rune) {
	if c == '\n' {
		d.InsertNewline(at)
		return
	}
	switch {
	case at.Y == len(d.rows):
		row := NewRow(string(c))
		row.Highlight(d.fileType.Options, "")
		d.rows = append(d.rows, row)
	case at.Y < len(d.rows):
		row := d.rows[at.Y]
		row.Insert(at.X, c)
		row.Highlight(d.fileType.Options, "")
	default:
		return
	}
	d.dirty = true
}

// InsertNewline splits the row at at.Y into two at column at.X and
// re-highlights both halves. Addressing the end of the buffer appends one
// empty row instead; past it, the call is a no-op.
func (d *Document) InsertNewline(at Position) {
	if at.Y > len(d.rows) {
		return
	}
	if at.Y == len(d.rows) {
		d.rows = append(d.rows, NewRow(""))
		d.dirty = true
		return
	}

	row := d.rows[at.Y]
	rest := row.Split(at.X)
	row.Highlight(d.fileType.Options, "")
	rest.Highlight(d.fileType.Options, "")

	d.rows = append(d.rows, nil)
	copy(d.rows[at.Y+2:], d.rows[at.Y+1:])
	d.rows[at.Y+1] = rest
	d.dirty = true
}

// Delete removes the cluster at at. At the end of a non-final row it merges
// the following row into the addressed one instead. The surviving row is
// re-highlighted. Out-of-range positions are no-ops.
func (d *Document) Delete(at Position) {
	if at.Y >= len(d.rows) {
		return
	}
	row := d.rows[at.Y]
	if at.X == row.Len() && at.Y+1 < len(d.rows) {
		row.Append(d.rows[at.Y+1])
		d.rows = append(d.rows[:at.Y+1], d.rows[at.Y+2:]...)
	} else {
		if at.X >= row.Len() {
			return
		}
		row.Delete(at.X)
	}
	row.Highlight(d.fileType.Options, "")
	d.dirty = true
}

// Find walks the buffer from from in the given direction and returns the
// first match position. Forward scans the starting row at from.X, then later
// rows from column 0; Backward scans the starting row before from.X, then
// earlier rows from their end. The walk stops at the buffer boundary: no
// wraparound.
func (d *Document) Find(query string, from Position, dir Direction) (Position, bool) {
	if query == "" || from.Y >= len(d.rows) || from.Y < 0 {
		return Position{}, false
	}

	pos := from
	for {
		if x, ok := d.rows[pos.Y].Find(query, pos.X, dir); ok {
			return Position{X: x, Y: pos.Y}, true
		}
		if dir == Forward {
			pos.Y++
			if pos.Y >= len(d.rows) {
				return Position{}, false
			}
			pos.X = 0
		} else {
			if pos.Y == 0 {
				return Position{}, false
			}
			pos.Y--
			pos.X = d.rows[pos.Y].Len()
		}
	}
}

// Highlight reclassifies every row, marking occurrences of word when given.
// Used to repaint the whole buffer while a live search is active.
func (d *Document) Highlight(word string) {
	for _, row := range d.rows {
		row.Highlight(d.fileType.Options, word)
	}
}

// Row returns the row at index, or nil when out of range.
func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.rows)
}

// IsEmpty reports whether the document holds no rows.
func (d *Document) IsEmpty() bool {
	return len(d.rows) == 0
}

// Dirty reports whether unsaved modifications exist.
func (d *Document) Dirty() bool {
	return d.dirty
}

// FileName returns the associated file name, empty for a scratch buffer.
func (d *Document) FileName() string {
	return d.fileName
}

// SetFileName associates the document with name and re-infers the file type.
// The rows are re-highlighted against the new rule set.
func (d *Document) SetFileName(name string) {
	d.fileName = name
	d.fileType = syntax.FileTypeFor(name)
	d.Highlight("")
}

// FileTypeName returns the display name of the current file type.
func (d *Document) FileTypeName() string {
	return d.fileType.Name
}
