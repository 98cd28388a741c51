package syntax

import "fmt"

// Kind classifies a single grapheme cluster for display.
type Kind uint8

const (
	None Kind = iota
	Number
	Match
	String
	Character
	Comment
	PrimaryKeyword
	SecondaryKeyword
)

// Reset restores the terminal's default foreground color. Row rendering
// emits it once, after the last cluster of a line segment.
const Reset = "\x1b[39m"

// Sequence returns the SGR foreground sequence emitted before a run of
// clusters sharing this kind.
func (k Kind) Sequence() string {
	switch k {
	case Number:
		return fg(220, 163, 163)
	case Match:
		return fg(38, 139, 210)
	case String:
		return fg(211, 54, 130)
	case Character:
		return fg(108, 113, 196)
	case Comment:
		return fg(133, 153, 0)
	case PrimaryKeyword:
		return fg(181, 137, 0)
	case SecondaryKeyword:
		return fg(42, 161, 152)
	default:
		return Reset
	}
}

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Number:
		return "number"
	case Match:
		return "match"
	case String:
		return "string"
	case Character:
		return "character"
	case Comment:
		return "comment"
	case PrimaryKeyword:
		return "primary-keyword"
	case SecondaryKeyword:
		return "secondary-keyword"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func fg(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
