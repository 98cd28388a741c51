package editor

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/vellum-editor/vellum/document"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
		return m, nil
	case tea.KeyMsg:
		if m.prompting != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	}

	if m.prompting != promptNone {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Any key other than another Ctrl-Q abandons a pending quit countdown.
	if key != "ctrl+q" && m.quitsLeft < m.cfg.QuitTimes {
		m.quitsLeft = m.cfg.QuitTimes
		m.setStatus("")
	}

	switch key {
	case "ctrl+q":
		if m.doc.Dirty() && m.quitsLeft > 0 {
			m.setStatus("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", m.quitsLeft)
			m.quitsLeft--
			return m, nil
		}
		return m, tea.Quit
	case "ctrl+s":
		return m.save()
	case "ctrl+f":
		return m.startSearch()
	case "up", "down", "left", "right", "home", "end", "pgup", "pgdown":
		m.moveCursor(key)
	case "enter":
		m.doc.Insert(m.cursor, '\n')
		m.cursor = document.Position{X: 0, Y: m.cursor.Y + 1}
	case "backspace":
		m.deleteBackward()
	case "delete":
		m.doc.Delete(m.cursor)
	case "tab":
		m.doc.Insert(m.cursor, '\t')
		m.cursor.X++
	default:
		runes := msg.Runes
		if msg.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt {
			for _, r := range runes {
				m.doc.Insert(m.cursor, r)
				m.cursor.X++
			}
		}
	}

	m.scroll()
	return m, nil
}

// moveCursor applies one navigation key. Left and right wrap across line
// boundaries; vertical movement clamps the column to the target row.
func (m *Model) moveCursor(key string) {
	height := m.doc.Len()
	switch key {
	case "up":
		if m.cursor.Y > 0 {
			m.cursor.Y--
		}
	case "down":
		if m.cursor.Y < height {
			m.cursor.Y++
		}
	case "left":
		if m.cursor.X > 0 {
			m.cursor.X--
		} else if m.cursor.Y > 0 {
			m.cursor.Y--
			m.cursor.X = m.rowLen(m.cursor.Y)
		}
	case "right":
		if m.cursor.X < m.rowLen(m.cursor.Y) {
			m.cursor.X++
		} else if m.cursor.Y < height {
			m.cursor.Y++
			m.cursor.X = 0
		}
	case "home":
		m.cursor.X = 0
	case "end":
		m.cursor.X = m.rowLen(m.cursor.Y)
	case "pgup":
		m.cursor.Y -= m.textHeight()
		if m.cursor.Y < 0 {
			m.cursor.Y = 0
		}
	case "pgdown":
		m.cursor.Y += m.textHeight()
		if m.cursor.Y > height {
			m.cursor.Y = height
		}
	}
	if max := m.rowLen(m.cursor.Y); m.cursor.X > max {
		m.cursor.X = max
	}
}

func (m *Model) deleteBackward() {
	if m.cursor.X == 0 && m.cursor.Y == 0 {
		return
	}
	if m.cursor.X > 0 {
		m.cursor.X--
	} else {
		m.cursor.Y--
		m.cursor.X = m.rowLen(m.cursor.Y)
	}
	m.doc.Delete(m.cursor)
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	h := m.textHeight()
	if m.cursor.Y < m.offset.Y {
		m.offset.Y = m.cursor.Y
	} else if m.cursor.Y >= m.offset.Y+h {
		m.offset.Y = m.cursor.Y - h + 1
	}
	if m.cursor.X < m.offset.X {
		m.offset.X = m.cursor.X
	} else if m.width > 0 && m.cursor.X >= m.offset.X+m.width {
		m.offset.X = m.cursor.X - m.width + 1
	}
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if m.doc.FileName() == "" {
		m.prompting = promptSaveAs
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink
	}
	if err := m.doc.Save(); err != nil {
		log.Error().Err(err).Str("path", m.doc.FileName()).Msg("save failed")
		m.setStatus("Error writing file: %v", err)
		return m, nil
	}
	log.Info().Str("path", m.doc.FileName()).Int("rows", m.doc.Len()).Msg("saved")
	m.setStatus("File saved successfully.")
	return m, nil
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.prompting = promptSearch
	m.searchOrigin = m.cursor
	m.searchDir = document.Forward
	m.prompt.SetValue("")
	m.prompt.Focus()
	return m, textinput.Blink
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.endPrompt(false)
	case "enter":
		return m.endPrompt(true)
	}

	if m.prompting == promptSearch {
		switch msg.String() {
		case "right", "down":
			m.searchDir = document.Forward
			m.searchFrom(m.nextColumn())
			m.scroll()
			return m, nil
		case "left", "up":
			m.searchDir = document.Backward
			m.searchFrom(m.cursor)
			m.scroll()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	if m.prompting == promptSearch {
		// The query changed: restart the incremental search from where the
		// prompt was opened.
		m.cursor = m.searchOrigin
		m.searchDir = document.Forward
		m.searchFrom(m.cursor)
		m.scroll()
	}
	return m, cmd
}

// nextColumn is the position one cluster to the right of the cursor, used to
// step past the current match before repeating a forward search.
func (m Model) nextColumn() document.Position {
	pos := m.cursor
	if pos.X < m.rowLen(pos.Y) {
		pos.X++
	} else if pos.Y < m.doc.Len() {
		pos.Y++
		pos.X = 0
	}
	return pos
}

func (m *Model) searchFrom(from document.Position) {
	query := m.prompt.Value()
	if query == "" {
		m.cursor = m.searchOrigin
		m.doc.Highlight("")
		return
	}
	if pos, ok := m.doc.Find(query, from, m.searchDir); ok {
		m.cursor = pos
	}
	m.doc.Highlight(query)
}

func (m Model) endPrompt(accepted bool) (tea.Model, tea.Cmd) {
	kind := m.prompting
	value := m.prompt.Value()
	m.prompting = promptNone
	m.prompt.Blur()
	m.prompt.SetValue("")

	switch kind {
	case promptSaveAs:
		if !accepted || value == "" {
			m.setStatus("Save aborted.")
			return m, nil
		}
		m.doc.SetFileName(value)
		return m.save()
	case promptSearch:
		m.doc.Highlight("")
		if !accepted {
			m.cursor = m.searchOrigin
			m.scroll()
		}
	}
	return m, nil
}
