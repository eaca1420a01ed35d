package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/alphabeta"
	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/move"
	"github.com/ingenious/othello/movegen"
)

var ErrStaleJob = errors.New("job does not match its board")

// Unit is one worker taking part in a cycle. It searches every move of its
// job and reports its single best result.
type Unit interface {
	Search(ctx context.Context, job Job) (Result, error)
}

// LocalUnit searches in the calling goroutine.
type LocalUnit struct {
	// NewSolver builds the solver for a job. Nil means Job.Params.NewSolver.
	NewSolver func(Params) *alphabeta.Solver
}

// Validate checks that a job was built from the board it carries: the
// fingerprint must match and every assigned move must be legal there.
func Validate(job Job) error {
	if fp := job.Board.Fingerprint(); fp != job.Fingerprint {
		return fmt.Errorf("%w: fingerprint %x, board hashes to %x", ErrStaleJob, job.Fingerprint, fp)
	}
	if !job.Colour.Valid() {
		return fmt.Errorf("%w: %v", board.ErrInvalidPlayer, job.Colour)
	}
	for _, m := range job.Moves {
		if !movegen.IsLegal(&job.Board, m, job.Colour) {
			return fmt.Errorf("%w: move %v is not legal", ErrStaleJob, m)
		}
	}
	return nil
}

// Search runs the root moves one after the other, each on its own copy of
// the job board with its own timer, and keeps the first move with the
// highest score.
func (u LocalUnit) Search(ctx context.Context, job Job) (Result, error) {
	if err := Validate(job); err != nil {
		return NoCandidate(job.Worker), err
	}
	if len(job.Moves) == 0 {
		return NoCandidate(job.Worker), nil
	}
	newSolver := u.NewSolver
	if newSolver == nil {
		newSolver = Params.NewSolver
	}
	solver := newSolver(job.Params)

	best := NoCandidate(job.Worker)
	tstart := time.Now()
	for _, m := range job.Moves {
		score, err := solver.SearchRoot(job.Board, job.Colour, m)
		if err != nil {
			return NoCandidate(job.Worker), err
		}
		if !best.HasCandidate() || score > best.Score {
			best = Result{Worker: job.Worker, Score: score, Move: move.NewPlacement(m)}
		}
	}
	log.Debug().
		Int("worker", job.Worker).
		Int("moves", len(job.Moves)).
		Int("depth", solver.Depth()).
		Str("best", best.Move.String()).
		Int("score", best.Score).
		Uint64("nodes", solver.Nodes()).
		Uint64("timeouts", solver.Timeouts()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("worker-done")
	return best, nil
}
