// Package movegen contains the Othello move rules: which cells are legal
// for a player, and how placing a disc flips the bracketed opponent discs.
package movegen

import (
	"errors"
	"fmt"

	"github.com/ingenious/othello/board"
)

// MaxMoves bounds the number of legal moves in any position.
const MaxMoves = 64

// Directions are the eight neighbour offsets in the bordered buffer.
var Directions = [8]board.Cell{-11, -10, -9, -1, 1, 9, 10, 11}

var ErrIllegalMove = errors.New("illegal move")

// bracket walks from the neighbour of c in direction dir over opponent
// discs and returns the player's disc that terminates the run, or
// board.NoCell if there is no such run. A run of length zero does not
// count. The border ring stops the walk, since it is never an opponent disc.
func bracket(b *board.Board, c, dir board.Cell, p board.Colour) board.Cell {
	opp := p.Opponent().Disc()
	sq := c + dir
	if b[sq] != opp {
		return board.NoCell
	}
	for sq += dir; b[sq] == opp; sq += dir {
	}
	if b[sq] == p.Disc() {
		return sq
	}
	return board.NoCell
}

// IsLegal returns whether p may place a disc on c.
func IsLegal(b *board.Board, c board.Cell, p board.Colour) bool {
	if !c.OnBoard() || b[c] != board.Empty {
		return false
	}
	for _, dir := range Directions {
		if bracket(b, c, dir, p) != board.NoCell {
			return true
		}
	}
	return false
}

// AppendLegalMoves appends every legal cell for p, in increasing cell
// order, to dst.
func AppendLegalMoves(dst []board.Cell, b *board.Board, p board.Colour) []board.Cell {
	for _, c := range board.PlayableCells() {
		if IsLegal(b, c, p) {
			dst = append(dst, c)
		}
	}
	return dst
}

// LegalMoves returns every legal cell for p in increasing cell order
// (row-major). An empty result means p must pass.
func LegalMoves(b *board.Board, p board.Colour) []board.Cell {
	return AppendLegalMoves(make([]board.Cell, 0, 16), b, p)
}

// CountLegalMoves counts legal moves for p without allocating.
func CountLegalMoves(b *board.Board, p board.Colour) int {
	n := 0
	for _, c := range board.PlayableCells() {
		if IsLegal(b, c, p) {
			n++
		}
	}
	return n
}

// HasLegalMove returns as soon as one legal move for p is found.
func HasLegalMove(b *board.Board, p board.Colour) bool {
	for _, c := range board.PlayableCells() {
		if IsLegal(b, c, p) {
			return true
		}
	}
	return false
}

// Flips returns how many discs p would flip by playing on c. It is zero
// for an illegal move.
func Flips(b *board.Board, c board.Cell, p board.Colour) int {
	if !c.OnBoard() || b[c] != board.Empty {
		return 0
	}
	n := 0
	for _, dir := range Directions {
		end := bracket(b, c, dir, p)
		if end == board.NoCell {
			continue
		}
		n += int((end-c)/dir) - 1
	}
	return n
}

// Apply places p's disc on c and flips every bracketed run. It trusts the
// caller: the move must be legal, otherwise the resulting board is
// unspecified.
func Apply(b *board.Board, c board.Cell, p board.Colour) {
	disc := p.Disc()
	b[c] = disc
	for _, dir := range Directions {
		end := bracket(b, c, dir, p)
		if end == board.NoCell {
			continue
		}
		for sq := c + dir; sq != end; sq += dir {
			b[sq] = disc
		}
	}
}

// ApplyChecked validates the move before applying it. An illegal move
// leaves the board untouched and returns ErrIllegalMove.
func ApplyChecked(b *board.Board, c board.Cell, p board.Colour) error {
	if !IsLegal(b, c, p) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, c, p)
	}
	Apply(b, c, p)
	return nil
}
