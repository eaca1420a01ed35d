package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadPlaintext = errors.New("malformed plaintext board")

// ToDisplayText renders the board with row and column labels and the disc
// count for each colour.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "   0 1 2 3 4 5 6 7 [%s=%d %s=%d]\n",
		BlackDisc.DisplayString(), b.Count(Black),
		WhiteDisc.DisplayString(), b.Count(White))
	for r := 0; r < Dim; r++ {
		fmt.Fprintf(&sb, "%d  ", r)
		for c := 0; c < Dim; c++ {
			sb.WriteString(b[CellAt(r, c)].DisplayString())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b Board) String() string {
	return b.ToDisplayText()
}

// FromPlaintext builds a board from eight rows of eight characters, using
// '.' (or '-') for empty, 'b'/'x' for black and 'w'/'o' for white. Blank
// lines and spaces are ignored.
func FromPlaintext(text string) (Board, error) {
	b := EmptyBoard()
	row := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}
		if row >= Dim {
			return b, fmt.Errorf("%w: more than %d rows", ErrBadPlaintext, Dim)
		}
		if len(line) != Dim {
			return b, fmt.Errorf("%w: row %d has %d cells", ErrBadPlaintext, row, len(line))
		}
		for col, ch := range line {
			var s Square
			switch ch {
			case '.', '-':
				s = Empty
			case 'b', 'B', 'x', 'X':
				s = BlackDisc
			case 'w', 'W', 'o', 'O':
				s = WhiteDisc
			default:
				return b, fmt.Errorf("%w: unexpected %q at row %d", ErrBadPlaintext, ch, row)
			}
			b[CellAt(row, col)] = s
		}
		row++
	}
	if row != Dim {
		return b, fmt.Errorf("%w: got %d rows", ErrBadPlaintext, row)
	}
	return b, nil
}
