package equity

import "github.com/ingenious/othello/board"

// Evaluator scores a position from one colour's point of view. Higher is
// better for that colour.
type Evaluator interface {
	Evaluate(b *board.Board, c board.Colour) int
}
