package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/vellum-editor/vellum"
	"github.com/vellum-editor/vellum/internal/grapheme"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	h := m.textHeight()
	lines := make([]string, 0, h+2)
	for i := 0; i < h; i++ {
		lines = append(lines, m.renderLine(m.offset.Y+i, i, h))
	}
	lines = append(lines, m.statusBar(), m.messageBar())
	return strings.Join(lines, "\n")
}

func (m Model) renderLine(y, screenRow, screenRows int) string {
	if y < m.doc.Len() {
		return m.renderRow(y)
	}
	if m.doc.IsEmpty() && m.doc.FileName() == "" && screenRow == screenRows/3 {
		return m.welcomeLine()
	}
	if y == m.cursor.Y {
		return m.style.Cursor.Render(" ")
	}
	return m.style.Filler.Render("~")
}

// renderRow draws one buffer row windowed to the horizontal offset, with a
// reverse-video cell at the cursor. Row.Render emits its own color markers
// and trailing reset, so the segments concatenate safely.
func (m Model) renderRow(y int) string {
	row := m.doc.Row(y)
	start := m.offset.X
	end := start + m.width

	cx := m.cursor.X
	if y != m.cursor.Y || cx < start || cx >= end {
		return ansi.Truncate(row.Render(start, end), m.width, "")
	}

	cell := row.Cluster(cx)
	if cell == "\t" || grapheme.Width(cell) == 0 {
		cell = " "
	}
	line := row.Render(start, cx) + m.style.Cursor.Render(cell) + row.Render(cx+1, end)
	return ansi.Truncate(line, m.width, "")
}

func (m Model) welcomeLine() string {
	msg := fmt.Sprintf("Vellum editor -- version %s", vellum.Version())
	if w := runewidth.StringWidth(msg); w > m.width {
		return runewidth.Truncate(msg, m.width, "")
	}
	pad := (m.width - runewidth.StringWidth(msg)) / 2
	if pad < 1 {
		return msg
	}
	return m.style.Filler.Render("~") + strings.Repeat(" ", pad-1) + msg
}

func (m Model) statusBar() string {
	name := m.doc.FileName()
	if name == "" {
		name = "[No Name]"
	}
	name = runewidth.Truncate(name, 20, "…")

	dirty := ""
	if m.doc.Dirty() {
		dirty = " (modified)"
	}
	left := fmt.Sprintf(" %s - %d lines%s", name, m.doc.Len(), dirty)
	right := fmt.Sprintf("%s | %d/%d ", m.doc.FileTypeName(), m.cursor.Y+1, m.doc.Len())

	gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + strings.Repeat(" ", gap) + right
	return m.style.StatusBar.Render(ansi.Truncate(bar, m.width, ""))
}

func (m Model) messageBar() string {
	if m.prompting != promptNone {
		label := "Search (ESC to cancel, arrows to navigate): "
		if m.prompting == promptSaveAs {
			label = "Save as: "
		}
		return ansi.Truncate(label+m.prompt.View(), m.width, "")
	}
	if time.Since(m.status.at) < time.Duration(m.cfg.MessageTimeout)*time.Second {
		return ansi.Truncate(m.style.MessageBar.Render(m.status.text), m.width, "")
	}
	return ""
}
