package movegen

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/ingenious/othello/board"
)

func TestInitialLegalMoves(t *testing.T) {
	b := board.NewBoard()
	assert.Equal(t, []board.Cell{
		board.CellAt(2, 3), board.CellAt(3, 2), board.CellAt(4, 5), board.CellAt(5, 4),
	}, LegalMoves(&b, board.Black))
	assert.Equal(t, []board.Cell{
		board.CellAt(2, 4), board.CellAt(3, 5), board.CellAt(4, 2), board.CellAt(5, 3),
	}, LegalMoves(&b, board.White))
	assert.Equal(t, 4, CountLegalMoves(&b, board.Black))
}

func TestFlipExample(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	c := board.CellAt(2, 3)
	is.True(IsLegal(&b, c, board.Black))
	is.Equal(Flips(&b, c, board.Black), 1)
	Apply(&b, c, board.Black)
	is.Equal(b.Count(board.Black), 4)
	is.Equal(b.Count(board.White), 1)
	is.Equal(b, board.OpeningAfterD3.MustBoard())
}

func TestMultiDirectionFlip(t *testing.T) {
	is := is.New(t)
	b := board.CornerFight.MustBoard()
	corner := board.CellAt(0, 0)
	is.True(IsLegal(&b, corner, board.Black))
	is.Equal(Flips(&b, corner, board.Black), 2)
	before := b.Count(board.Black)
	Apply(&b, corner, board.Black)
	is.Equal(b.Count(board.Black), before+3)
	is.Equal(b.At(board.CellAt(1, 1)), board.BlackDisc)
	is.Equal(b.At(board.CellAt(2, 2)), board.BlackDisc)
	// (1,2) is white but not bracketed from the corner.
	is.Equal(b.At(board.CellAt(1, 2)), board.WhiteDisc)
}

func TestLongRunStopsAtBorder(t *testing.T) {
	is := is.New(t)
	b, err := board.FromPlaintext(`
		.wwwwwww
		........
		........
		........
		........
		........
		........
		b.......`)
	is.NoErr(err)
	// The white run on row 0 is not terminated by a black disc before the
	// border, so the corner is not legal for black.
	is.True(!IsLegal(&b, board.CellAt(0, 0), board.Black))
	is.Equal(len(LegalMoves(&b, board.Black)), 0)
}

func TestOccupiedCellIsIllegal(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	for _, c := range []board.Cell{board.CellAt(3, 3), board.CellAt(3, 4)} {
		is.True(!IsLegal(&b, c, board.Black))
		is.True(!IsLegal(&b, c, board.White))
	}
	is.True(!IsLegal(&b, board.Cell(0), board.Black))
	is.True(!IsLegal(&b, board.Cell(95), board.White))
}

func TestPassPosition(t *testing.T) {
	is := is.New(t)
	b := board.BlackStuck.MustBoard()
	is.Equal(len(LegalMoves(&b, board.Black)), 0)
	is.True(!HasLegalMove(&b, board.Black))
	is.Equal(LegalMoves(&b, board.White), []board.Cell{board.CellAt(0, 2)})

	full := board.FullBoard.MustBoard()
	is.True(!HasLegalMove(&full, board.Black))
	is.True(!HasLegalMove(&full, board.White))
}

func TestApplyChecked(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	orig := b
	err := ApplyChecked(&b, board.CellAt(0, 0), board.Black)
	is.True(errors.Is(err, ErrIllegalMove))
	is.Equal(b, orig)
	is.NoErr(ApplyChecked(&b, board.CellAt(3, 2), board.Black))
	is.Equal(b.Count(board.Black), 4)
}

// Legality soundness: a move is legal exactly when applying it raises the
// mover's disc count by more than one (the placed disc plus at least one
// flip), checked over a batch of positions reached by playing the first
// legal move repeatedly.
func TestLegalitySoundness(t *testing.T) {
	is := is.New(t)
	positions := []board.Board{
		board.NewBoard(),
		board.Midgame.MustBoard(),
		board.CornerFight.MustBoard(),
		board.BlackStuck.MustBoard(),
	}
	b := board.NewBoard()
	p := board.Black
	for i := 0; i < 20; i++ {
		moves := LegalMoves(&b, p)
		if len(moves) > 0 {
			Apply(&b, moves[len(moves)/2], p)
			positions = append(positions, b)
		}
		p = p.Opponent()
	}

	for _, pos := range positions {
		for _, p := range []board.Colour{board.Black, board.White} {
			for _, c := range board.PlayableCells() {
				if pos.At(c) != board.Empty {
					is.True(!IsLegal(&pos, c, p))
					continue
				}
				cp := pos
				before := cp.Count(p)
				Apply(&cp, c, p)
				gained := cp.Count(p) - before
				is.Equal(IsLegal(&pos, c, p), gained > 1)
				if IsLegal(&pos, c, p) {
					is.Equal(gained, Flips(&pos, c, p)+1)
					is.Equal(cp.Count(p)+cp.Count(p.Opponent()), pos.Count(p)+pos.Count(p.Opponent())+1)
				}
			}
		}
	}
}
