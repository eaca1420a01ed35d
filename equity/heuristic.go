// Package equity scores Othello positions with a static heuristic.
package equity

import (
	"fmt"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/movegen"
)

const (
	CornerWeight   = 4
	EdgeWeight     = 2
	InteriorWeight = 1

	// CornerUnit and EdgeUnit are what each held corner and edge cell is
	// worth in the occupancy terms. They cancel out in the normalized
	// difference but are kept so the raw sums match the stability scale.
	CornerUnit = 11
	EdgeUnit   = 6
)

// stabilityWeights is indexed by cell. The border ring is zero.
var stabilityWeights = [board.NumSquares]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 4, -3, 2, 2, 2, 2, -3, 4, 0,
	0, -3, -4, -1, -1, -1, -1, -4, -3, 0,
	0, 2, -1, 1, 0, 0, 1, -1, 2, 0,
	0, 2, -1, 0, 1, 1, 0, -1, 2, 0,
	0, 2, -1, 0, 1, 1, 0, -1, 2, 0,
	0, 2, -1, 1, 0, 0, 1, -1, 2, 0,
	0, -3, -4, -1, -1, -1, -1, -4, -3, 0,
	0, 4, -3, 2, 2, 2, 2, -3, 4, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Breakdown holds the five heuristic terms. Each is within [-100, 100].
type Breakdown struct {
	CoinParity int
	Mobility   int
	Stability  int
	Corners    int
	Edges      int
}

// Total is the unweighted sum of the terms.
func (b Breakdown) Total() int {
	return b.CoinParity + b.Mobility + b.Stability + b.Corners + b.Edges
}

func (b Breakdown) String() string {
	return fmt.Sprintf("coins %d, mobility %d, stability %d, corners %d, edges %d = %d",
		b.CoinParity, b.Mobility, b.Stability, b.Corners, b.Edges, b.Total())
}

// normalizedDiff is 100*(mine-theirs)/(mine+theirs), or 0 when the sum is
// zero. Go's integer division truncates toward zero.
func normalizedDiff(mine, theirs int) int {
	if mine+theirs == 0 {
		return 0
	}
	return 100 * (mine - theirs) / (mine + theirs)
}

func clamp(v int) int {
	if v > 100 {
		return 100
	}
	if v < -100 {
		return -100
	}
	return v
}

// CoinParity compares disc counts.
func CoinParity(b *board.Board, c board.Colour) int {
	return normalizedDiff(b.Count(c), b.Count(c.Opponent()))
}

// Mobility compares the number of legal moves of both sides.
func Mobility(b *board.Board, c board.Colour) int {
	mine := movegen.CountLegalMoves(b, c)
	theirs := movegen.CountLegalMoves(b, c.Opponent())
	switch {
	case mine > theirs:
		return 100 * mine / (mine + theirs)
	case theirs > mine:
		return -(100 * theirs / (mine + theirs))
	}
	return 0
}

// occupancy sums, for both sides, the positional stability and the corner
// and edge units.
type occupancy struct {
	stability [2]int
	corners   [2]int
	edges     [2]int
}

func tally(b *board.Board, c board.Colour) occupancy {
	var o occupancy
	mine, theirs := c.Disc(), c.Opponent().Disc()
	for _, cell := range board.PlayableCells() {
		var side int
		switch b[cell] {
		case mine:
			side = 0
		case theirs:
			side = 1
		default:
			continue
		}
		w := stabilityWeights[cell]
		switch {
		case cell.IsCorner():
			o.corners[side] += CornerUnit
			o.stability[side] += w * CornerWeight
		case cell.IsEdge():
			o.edges[side] += EdgeUnit
			o.stability[side] += w * EdgeWeight
		default:
			o.stability[side] += w * InteriorWeight
		}
	}
	return o
}

// Terms computes every heuristic term for colour c.
func Terms(b *board.Board, c board.Colour) Breakdown {
	o := tally(b, c)
	return Breakdown{
		CoinParity: CoinParity(b, c),
		Mobility:   Mobility(b, c),
		// The weighted sums can have opposite signs, which would push the
		// ratio outside the range of the other terms.
		Stability: clamp(normalizedDiff(o.stability[0], o.stability[1])),
		Corners:   normalizedDiff(o.corners[0], o.corners[1]),
		Edges:     normalizedDiff(o.edges[0], o.edges[1]),
	}
}

// Evaluate returns the sum of the five terms for colour c.
func Evaluate(b *board.Board, c board.Colour) int {
	return Terms(b, c).Total()
}

// Heuristic is the Evaluator used by the search.
type Heuristic struct{}

func (Heuristic) Evaluate(b *board.Board, c board.Colour) int {
	return Evaluate(b, c)
}
