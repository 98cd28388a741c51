package document

// Position addresses one grapheme cell in the buffer: X is the grapheme
// column, Y the row index.
type Position struct {
	X int
	Y int
}

// Direction selects which way a search walks the buffer.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
