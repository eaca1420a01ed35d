// Package alphabeta implements a depth-limited minimax search with
// alpha-beta pruning and a per-search time budget.
package alphabeta

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/equity"
	"github.com/ingenious/othello/movegen"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
**/

const (
	// DefaultDepth is the number of plies searched below a root move.
	DefaultDepth = 5
	// DefaultTimeOffset is the safety margin kept back from the per-move
	// time limit.
	DefaultTimeOffset = 300 * time.Millisecond

	MinScore = math.MinInt
	MaxScore = math.MaxInt
)

// Solver searches positions from a fixed colour's point of view. A Solver
// may be shared by goroutines as long as its settings are not changed
// while searches are running; all per-search state lives on the stack.
type Solver struct {
	evaluator      equity.Evaluator
	clock          Clock
	depth          int
	timeLimit      time.Duration
	timeOffset     time.Duration
	disablePruning bool

	nodes   atomic.Uint64
	timeout atomic.Uint64
}

// searchState is what one search carries down the recursion: whose
// perspective the scores are in, and when the budget runs out.
type searchState struct {
	own      board.Colour
	start    time.Time
	budget   time.Duration
	deadline bool
}

// NewSolver creates a solver. A timeLimit of zero or less disables the
// deadline.
func NewSolver(depth int, timeLimit, timeOffset time.Duration) *Solver {
	return &Solver{
		evaluator:  equity.Heuristic{},
		clock:      SystemClock,
		depth:      depth,
		timeLimit:  timeLimit,
		timeOffset: timeOffset,
	}
}

func (s *Solver) SetClock(c Clock) {
	s.clock = c
}

func (s *Solver) SetEvaluator(e equity.Evaluator) {
	s.evaluator = e
}

// SetPruningDisabled turns the search into a plain minimax. It visits the
// whole tree and must return the same scores.
func (s *Solver) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

func (s *Solver) Depth() int {
	return s.depth
}

// Nodes is the number of positions visited since the solver was created.
func (s *Solver) Nodes() uint64 {
	return s.nodes.Load()
}

// Timeouts counts positions that were scored statically because the time
// budget had run out.
func (s *Solver) Timeouts() uint64 {
	return s.timeout.Load()
}

func (s *Solver) newState(own board.Colour) searchState {
	return searchState{
		own:      own,
		start:    s.clock.Now(),
		budget:   s.timeLimit - s.timeOffset,
		deadline: s.timeLimit > 0,
	}
}

func (s *Solver) expired(st *searchState) bool {
	return st.deadline && s.clock.Now().Sub(st.start) >= st.budget
}

// Search runs the minimax recursion on b. The timer starts now. The score
// is always from own's point of view. b is passed by value and never
// modified.
func (s *Solver) Search(b board.Board, own board.Colour, depth, α, β int, maximizing bool) int {
	st := s.newState(own)
	return s.alphabeta(&st, &b, depth, α, β, maximizing)
}

// SearchRoot scores a root move: it plays root for own on a copy of b and
// searches the resulting position to the solver's depth, with own to move
// again at the top of the tree, using a fresh timer.
func (s *Solver) SearchRoot(b board.Board, own board.Colour, root board.Cell) (int, error) {
	if err := movegen.ApplyChecked(&b, root, own); err != nil {
		return 0, fmt.Errorf("root move: %w", err)
	}
	startNodes := s.nodes.Load()
	st := s.newState(own)
	score := s.alphabeta(&st, &b, s.depth, MinScore, MaxScore, true)
	log.Debug().
		Str("root", root.String()).
		Str("colour", own.String()).
		Int("score", score).
		Uint64("nodes", s.nodes.Load()-startNodes).
		Dur("elapsed", s.clock.Now().Sub(st.start)).
		Msg("root-move-searched")
	return score, nil
}

func (s *Solver) alphabeta(st *searchState, b *board.Board, depth, α, β int, maximizing bool) int {
	s.nodes.Add(1)
	if depth == 0 {
		return s.evaluator.Evaluate(b, st.own)
	}
	if s.expired(st) {
		s.timeout.Add(1)
		return s.evaluator.Evaluate(b, st.own)
	}

	side := st.own
	if !maximizing {
		side = st.own.Opponent()
	}
	var buf [movegen.MaxMoves]board.Cell
	moves := movegen.AppendLegalMoves(buf[:0], b, side)
	if len(moves) == 0 {
		// The side to move would have to pass. We score the position as it
		// stands rather than searching on with the opponent.
		return s.evaluator.Evaluate(b, st.own)
	}

	if maximizing {
		value := MinScore
		for _, m := range moves {
			child := *b
			movegen.Apply(&child, m, side)
			value = max(value, s.alphabeta(st, &child, depth-1, α, β, false))
			α = max(α, value)
			if β <= α && !s.disablePruning {
				break // β cut-off
			}
		}
		return value
	}

	value := MaxScore
	for _, m := range moves {
		child := *b
		movegen.Apply(&child, m, side)
		value = min(value, s.alphabeta(st, &child, depth-1, α, β, true))
		β = min(β, value)
		if β <= α && !s.disablePruning {
			break // α cut-off
		}
	}
	return value
}
