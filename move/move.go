// Package move represents a single Othello turn and its text encoding.
package move

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ingenious/othello/board"
)

// PassText is the wire form of a pass.
const PassText = "pass\n"

var ErrBadMoveText = errors.New("bad move text")

// MoveType is a type of move; a pass or a disc placement.
type MoveType uint8

const (
	MoveTypePass MoveType = iota
	MoveTypePlay
)

// Move is either a disc placement on a cell or a pass. The zero Move is a
// pass.
type Move struct {
	action MoveType
	cell   board.Cell
}

// Pass is the move of a player with nothing to play.
var Pass = Move{}

// NewPlacement returns a move placing a disc on c. A cell outside the
// playing area yields Pass.
func NewPlacement(c board.Cell) Move {
	if !c.OnBoard() {
		return Pass
	}
	return Move{action: MoveTypePlay, cell: c}
}

func (m Move) Action() MoveType {
	return m.action
}

// Cell returns the placement cell, or board.NoCell for a pass.
func (m Move) Cell() board.Cell {
	if m.action == MoveTypePass {
		return board.NoCell
	}
	return m.cell
}

func (m Move) IsPass() bool {
	return m.action == MoveTypePass
}

// String is the text form without the trailing newline: "RC" or "pass".
func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%d%d", m.cell.Row(), m.cell.Col())
}

// Text is the wire encoding: two digits, 0-based row then column, followed
// by a newline; or "pass\n".
func (m Move) Text() string {
	return m.String() + "\n"
}

// FromText decodes move text. The trailing newline is optional.
func FromText(s string) (Move, error) {
	t := strings.TrimRight(s, "\r\n")
	if t == "pass" {
		return Pass, nil
	}
	if len(t) != 2 {
		return Pass, fmt.Errorf("%w: %q", ErrBadMoveText, s)
	}
	row, col := int(t[0])-'0', int(t[1])-'0'
	if row < 0 || row >= board.Dim || col < 0 || col >= board.Dim {
		return Pass, fmt.Errorf("%w: %q", ErrBadMoveText, s)
	}
	return NewPlacement(board.CellAt(row, col)), nil
}

func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Move) UnmarshalText(b []byte) error {
	mv, err := FromText(string(b))
	if err != nil {
		return err
	}
	*m = mv
	return nil
}
