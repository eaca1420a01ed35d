package worker

import (
	"math"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/move"
)

// NoScore is the score reported with the "no candidate" result.
const NoScore = math.MinInt32

// Job is one worker's share of a move-generation cycle: a snapshot of the
// authoritative board, the fingerprint of that snapshot, and the root moves
// assigned to this worker.
type Job struct {
	// Worker is the index of the unit the job is for.
	Worker int `json:"worker"`

	Board       board.Board  `json:"board"`
	Fingerprint uint64       `json:"fingerprint"`
	Colour      board.Colour `json:"colour"`
	Moves       []board.Cell `json:"moves"`

	Params Params `json:"params"`
}

// Result is the best root move a worker found, or the "no candidate"
// sentinel if it had nothing to report.
type Result struct {
	Worker int       `json:"worker"`
	Score  int       `json:"score"`
	Move   move.Move `json:"move"`
}

// NoCandidate is the result of a worker that was assigned no moves or
// could not search them.
func NoCandidate(worker int) Result {
	return Result{Worker: worker, Score: NoScore, Move: move.Pass}
}

// HasCandidate is false for the sentinel.
func (r Result) HasCandidate() bool {
	return !r.Move.IsPass()
}
