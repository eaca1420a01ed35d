package alphabeta

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/equity"
	"github.com/ingenious/othello/movegen"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

// fakeClock returns start on its first reading and then moves forward by
// step on every reading after that.
type fakeClock struct {
	now  time.Time
	step time.Duration
	read int
}

func (f *fakeClock) Now() time.Time {
	t := f.now
	f.now = f.now.Add(f.step)
	f.read++
	return t
}

// minimax is a reference search with no pruning at all.
func minimax(b board.Board, own board.Colour, depth int, maximizing bool) int {
	if depth == 0 {
		return equity.Evaluate(&b, own)
	}
	side := own
	if !maximizing {
		side = own.Opponent()
	}
	moves := movegen.LegalMoves(&b, side)
	if len(moves) == 0 {
		return equity.Evaluate(&b, own)
	}
	var best int
	for i, m := range moves {
		child := b
		movegen.Apply(&child, m, side)
		v := minimax(child, own, depth-1, !maximizing)
		if i == 0 || (maximizing && v > best) || (!maximizing && v < best) {
			best = v
		}
	}
	return best
}

var testPositions = []board.Position{
	board.OpeningAfterD3,
	board.Midgame,
	board.CornerFight,
}

func TestDepthZeroIsStaticEvaluation(t *testing.T) {
	is := is.New(t)
	s := NewSolver(DefaultDepth, 0, 0)
	for _, pos := range testPositions {
		b := pos.MustBoard()
		orig := b
		for _, own := range []board.Colour{board.Black, board.White} {
			before := s.Nodes()
			v := s.Search(b, own, 0, MinScore, MaxScore, true)
			is.Equal(v, equity.Evaluate(&b, own))
			is.Equal(s.Nodes()-before, uint64(1))
		}
		is.Equal(b, orig)
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	is := is.New(t)
	pruned := NewSolver(DefaultDepth, 0, 0)
	full := NewSolver(DefaultDepth, 0, 0)
	full.SetPruningDisabled(true)

	for _, pos := range testPositions {
		b := pos.MustBoard()
		for _, own := range []board.Colour{board.Black, board.White} {
			for depth := 1; depth <= 4; depth++ {
				for _, maximizing := range []bool{true, false} {
					want := minimax(b, own, depth, maximizing)
					is.Equal(pruned.Search(b, own, depth, MinScore, MaxScore, maximizing), want)
					is.Equal(full.Search(b, own, depth, MinScore, MaxScore, maximizing), want)
				}
			}
		}
	}
	// Pruning can only ever save work.
	is.True(pruned.Nodes() <= full.Nodes())
	is.True(pruned.Nodes() < full.Nodes())
	is.Equal(pruned.Timeouts(), uint64(0))
}

func TestDepthOneMaximizesChildren(t *testing.T) {
	is := is.New(t)
	s := NewSolver(1, 0, 0)
	b := board.Midgame.MustBoard()
	best := MinScore
	for _, m := range movegen.LegalMoves(&b, board.White) {
		child := b
		movegen.Apply(&child, m, board.White)
		best = max(best, equity.Evaluate(&child, board.White))
	}
	is.Equal(s.Search(b, board.White, 1, MinScore, MaxScore, true), best)
}

func TestSideToMoveWithoutMovesIsTerminal(t *testing.T) {
	is := is.New(t)
	s := NewSolver(DefaultDepth, 0, 0)
	b := board.BlackStuck.MustBoard()
	v := s.Search(b, board.Black, 4, MinScore, MaxScore, true)
	is.Equal(v, equity.Evaluate(&b, board.Black))
	is.Equal(s.Nodes(), uint64(1))

	// White to move at a minimizing ply from black's perspective has a
	// move, so that search does recurse.
	v = s.Search(b, board.Black, 1, MinScore, MaxScore, false)
	child := b
	movegen.Apply(&child, board.CellAt(0, 2), board.White)
	is.Equal(v, equity.Evaluate(&child, board.Black))
}

// countingEvaluator scores every position the same and counts the calls.
type countingEvaluator struct {
	calls int
}

func (e *countingEvaluator) Evaluate(b *board.Board, c board.Colour) int {
	e.calls++
	return 7
}

func TestSetEvaluator(t *testing.T) {
	is := is.New(t)
	s := NewSolver(DefaultDepth, 0, 0)
	is.Equal(s.Depth(), DefaultDepth)
	e := &countingEvaluator{}
	s.SetEvaluator(e)

	b := board.NewBoard()
	v := s.Search(b, board.Black, 1, MinScore, MaxScore, true)
	is.Equal(v, 7)
	// One leaf per opening move.
	is.Equal(e.calls, 4)
}

func TestDeadlineStopsAtRoot(t *testing.T) {
	is := is.New(t)
	limit := 2 * time.Second
	s := NewSolver(DefaultDepth, limit, DefaultTimeOffset)
	// The second clock reading is already past the budget.
	s.SetClock(&fakeClock{now: time.Unix(1000, 0), step: limit})
	b := board.Midgame.MustBoard()
	v := s.Search(b, board.Black, DefaultDepth, MinScore, MaxScore, true)
	is.Equal(v, equity.Evaluate(&b, board.Black))
	is.Equal(s.Nodes(), uint64(1))
	is.Equal(s.Timeouts(), uint64(1))
}

func TestOffsetLargerThanLimitExpiresImmediately(t *testing.T) {
	is := is.New(t)
	s := NewSolver(DefaultDepth, 100*time.Millisecond, DefaultTimeOffset)
	s.SetClock(&fakeClock{now: time.Unix(1000, 0)})
	b := board.NewBoard()
	v := s.Search(b, board.White, 3, MinScore, MaxScore, true)
	is.Equal(v, equity.Evaluate(&b, board.White))
	is.Equal(s.Timeouts(), uint64(1))
}

func TestDeadlineDegradesGracefully(t *testing.T) {
	is := is.New(t)
	b := board.Midgame.MustBoard()

	run := func() (int, *Solver) {
		s := NewSolver(DefaultDepth, time.Second, 0)
		s.SetClock(&fakeClock{now: time.Unix(1000, 0), step: 10 * time.Millisecond})
		return s.Search(b, board.Black, DefaultDepth, MinScore, MaxScore, true), s
	}
	v1, s1 := run()
	v2, s2 := run()
	// Same clock readings, same cut-offs, same answer.
	is.Equal(v1, v2)
	is.Equal(s1.Nodes(), s2.Nodes())
	is.True(s1.Timeouts() > 0)

	unlimited := NewSolver(DefaultDepth, 0, 0)
	unlimited.Search(b, board.Black, DefaultDepth, MinScore, MaxScore, true)
	is.True(s1.Nodes() < unlimited.Nodes())
}

func TestSearchRoot(t *testing.T) {
	is := is.New(t)
	s := NewSolver(3, 0, 0)
	b := board.NewBoard()
	orig := b
	root := board.CellAt(2, 3)
	v, err := s.SearchRoot(b, board.Black, root)
	is.NoErr(err)
	is.Equal(b, orig)

	after := b
	movegen.Apply(&after, root, board.Black)
	is.Equal(v, minimax(after, board.Black, 3, true))

	_, err = s.SearchRoot(b, board.Black, board.CellAt(0, 0))
	is.True(errors.Is(err, movegen.ErrIllegalMove))
}
