package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ingenious/othello/board"
)

// Partition deals root moves round-robin: the i-th move (counting from 1)
// goes to worker i mod w. With w == 1 every move goes to worker 0.
func Partition(moves []board.Cell, w int) [][]board.Cell {
	if w < 1 {
		w = 1
	}
	return lo.Times(w, func(k int) []board.Cell {
		return lo.Filter(moves, func(_ board.Cell, i int) bool {
			return (i+1)%w == k
		})
	})
}

// Reduce picks the winning result: the highest score among results that
// carry a move, scanning in slice order so the earliest one wins a tie.
// If nobody has a candidate the sentinel is returned.
func Reduce(results []Result) Result {
	candidates := lo.Filter(results, func(r Result, _ int) bool {
		return r.HasCandidate()
	})
	if len(candidates) == 0 {
		return NoCandidate(-1)
	}
	return lo.MaxBy(candidates, func(a, b Result) bool {
		return a.Score > b.Score
	})
}

// Distributor fans one move-generation cycle out over a fixed set of units.
type Distributor struct {
	units  []Unit
	params Params
}

func NewDistributor(units []Unit, params Params) *Distributor {
	return &Distributor{units: units, params: params}
}

func (d *Distributor) Workers() int {
	return len(d.units)
}

func (d *Distributor) Params() Params {
	return d.params
}

// Jobs builds the per-worker jobs for one cycle from a single snapshot of b.
func (d *Distributor) Jobs(b *board.Board, colour board.Colour, moves []board.Cell) []Job {
	snapshot := *b
	fp := snapshot.Fingerprint()
	shares := Partition(moves, len(d.units))
	jobs := make([]Job, len(d.units))
	for i := range jobs {
		jobs[i] = Job{
			Worker:      i,
			Board:       snapshot,
			Fingerprint: fp,
			Colour:      colour,
			Moves:       shares[i],
			Params:      d.params,
		}
	}
	return jobs
}

// Run searches moves across all units and returns the reduced result along
// with every unit's own report, in worker order. A unit that fails is
// logged and counted as having no candidate. Run only returns an error if
// ctx ends before the units are done.
func (d *Distributor) Run(ctx context.Context, b *board.Board, colour board.Colour,
	moves []board.Cell) (Result, []Result, error) {

	jobs := d.Jobs(b, colour, moves)
	results := make([]Result, len(jobs))
	tstart := time.Now()

	g := errgroup.Group{}
	for i, job := range jobs {
		if len(job.Moves) == 0 {
			results[i] = NoCandidate(i)
			continue
		}
		job := job
		unit := d.units[i]
		g.Go(func() error {
			res, err := unit.Search(ctx, job)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Err(err).Int("worker", job.Worker).Msg("worker-failed")
				res = NoCandidate(job.Worker)
			}
			results[job.Worker] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NoCandidate(-1), results, err
	}

	best := Reduce(results)
	log.Debug().
		Int("workers", len(jobs)).
		Int("moves", len(moves)).
		Str("best", best.Move.String()).
		Int("score", best.Score).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("cycle-reduced")
	return best, results, nil
}
