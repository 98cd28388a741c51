// Package editor runs one interactive editing session as a Bubble Tea model
// over a document buffer: cursor movement, editing keys, incremental search,
// and the status/message chrome.
//
// The package owns no text semantics of its own; every buffer operation goes
// through package document.
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/vellum-editor/vellum/document"
)

const helpMessage = "HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit"

// promptFor says what an active prompt is collecting.
type promptFor int

const (
	promptNone promptFor = iota
	promptSaveAs
	promptSearch
)

type statusMessage struct {
	text string
	at   time.Time
}

// Model is the Bubble Tea model for one editing session.
type Model struct {
	cfg   Config
	style Style

	doc    *document.Document
	cursor document.Position
	offset document.Position

	width  int
	height int

	status    statusMessage
	quitsLeft int

	prompt       textinput.Model
	prompting    promptFor
	searchOrigin document.Position
	searchDir    document.Direction
}

// New opens path into a fresh session. An empty path starts a scratch
// buffer; a path that does not exist yet starts a named empty buffer.
func New(path string, cfg Config) (Model, error) {
	doc := document.New(path)
	if path != "" {
		opened, err := document.Open(path)
		switch {
		case err == nil:
			doc = opened
		case errors.Is(err, fs.ErrNotExist):
			log.Info().Str("path", path).Msg("editing new file")
		default:
			return Model{}, err
		}
	}

	prompt := textinput.New()
	prompt.Prompt = ""

	return Model{
		cfg:       cfg,
		style:     DefaultStyle(cfg),
		doc:       doc,
		quitsLeft: cfg.QuitTimes,
		prompt:    prompt,
		status:    statusMessage{text: helpMessage, at: time.Now()},
	}, nil
}

// Document exposes the underlying buffer, mainly for host code and tests.
func (m Model) Document() *document.Document {
	return m.doc
}

// Cursor returns the current cursor position in buffer coordinates.
func (m Model) Cursor() document.Position {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = statusMessage{text: fmt.Sprintf(format, args...), at: time.Now()}
}

func (m Model) rowLen(y int) int {
	if row := m.doc.Row(y); row != nil {
		return row.Len()
	}
	return 0
}

// textHeight is the window height minus the status and message bars.
func (m Model) textHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}
