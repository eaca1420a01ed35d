// Package board holds the Othello grid. The 8x8 playing area is embedded
// in a 10x10 buffer whose outer ring is Border, so that a probe walking off
// the edge always lands on a sentinel instead of needing a bounds check.
package board

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

const (
	// Dim is the number of playable rows (and columns).
	Dim = 8
	// Stride is the width of a row in the bordered buffer.
	Stride = Dim + 2
	// NumSquares is the size of the bordered buffer.
	NumSquares = Stride * Stride
)

var ErrOffBoard = errors.New("cell is not on the playing area")

// A Cell indexes the bordered buffer. For a 0-based row and column of the
// playing area the index is Stride*(row+1) + col + 1, so the top-left
// playable cell is 11 and the bottom-right is 88.
type Cell int

// NoCell stands for "no location", e.g. a pass.
const NoCell Cell = -1

// Corners of the playing area, in cell order.
var Corners = [4]Cell{11, 18, 81, 88}

// CellAt returns the cell for the 0-based row and column.
func CellAt(row, col int) Cell {
	return Cell(Stride*(row+1) + col + 1)
}

// Row is the 0-based row in the playing area.
func (c Cell) Row() int {
	return int(c)/Stride - 1
}

// Col is the 0-based column in the playing area.
func (c Cell) Col() int {
	return int(c)%Stride - 1
}

// OnBoard returns true iff the cell lies in the interior 8x8 region.
func (c Cell) OnBoard() bool {
	if c < 11 || c > 88 {
		return false
	}
	col := int(c) % Stride
	return col >= 1 && col <= Dim
}

// IsCorner returns true for the four corner cells.
func (c Cell) IsCorner() bool {
	return c == 11 || c == 18 || c == 81 || c == 88
}

// IsEdge returns true for playable cells on the outer ring of the playing
// area that are not corners.
func (c Cell) IsEdge() bool {
	if !c.OnBoard() || c.IsCorner() {
		return false
	}
	return c.Row() == 0 || c.Row() == Dim-1 || c.Col() == 0 || c.Col() == Dim-1
}

func (c Cell) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("cell(%d)", int(c))
	}
	return fmt.Sprintf("%d%d", c.Row(), c.Col())
}

// Board is the whole bordered grid. It is a plain array so that assigning
// a board copies it without any heap allocation; the search relies on this
// to give every branch its own board.
type Board [NumSquares]Square

// NewBoard returns the starting position: border cells marked, two discs
// of each colour on the centre diagonals.
func NewBoard() Board {
	var b Board
	for i := range b {
		if Cell(i).OnBoard() {
			b[i] = Empty
		} else {
			b[i] = Border
		}
	}
	b[CellAt(3, 3)] = WhiteDisc
	b[CellAt(3, 4)] = BlackDisc
	b[CellAt(4, 3)] = BlackDisc
	b[CellAt(4, 4)] = WhiteDisc
	return b
}

// EmptyBoard returns a board with the border set and no discs.
func EmptyBoard() Board {
	b := NewBoard()
	for _, c := range PlayableCells() {
		b[c] = Empty
	}
	return b
}

// At returns the square at the given cell. Off-board cells read as Border.
func (b *Board) At(c Cell) Square {
	if c < 0 || int(c) >= NumSquares {
		return Border
	}
	return b[c]
}

// Set places s on a playable cell. Border cells are fixed at construction
// time; writing one, or writing Border anywhere, panics.
func (b *Board) Set(c Cell, s Square) {
	if !c.OnBoard() {
		panic(fmt.Errorf("%w: %d", ErrOffBoard, int(c)))
	}
	if s == Border {
		panic(fmt.Errorf("cannot place a border square at %v", c))
	}
	b[c] = s
}

// Count returns the number of discs of the given colour.
func (b *Board) Count(c Colour) int {
	n := 0
	disc := c.Disc()
	for i := 11; i <= 88; i++ {
		if b[i] == disc {
			n++
		}
	}
	return n
}

// Empties returns the number of empty playable cells.
func (b *Board) Empties() int {
	n := 0
	for i := 11; i <= 88; i++ {
		if b[i] == Empty {
			n++
		}
	}
	return n
}

// Fingerprint identifies a board position. It is stable across processes,
// which lets a worker check it was handed the same generation of the board
// that its move list was computed from.
func (b *Board) Fingerprint() uint64 {
	buf := make([]byte, NumSquares)
	for i, s := range b {
		buf[i] = byte(s)
	}
	return xxhash.Sum64(buf)
}

var playable []Cell

func init() {
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			playable = append(playable, CellAt(r, c))
		}
	}
}

// PlayableCells returns the 64 interior cells in increasing index order.
// The returned slice must not be modified.
func PlayableCells() []Cell {
	return playable
}
