package worker

import (
	"time"

	"github.com/ingenious/othello/alphabeta"
	"github.com/ingenious/othello/config"
)

// Params are the search settings every worker uses for a job.
type Params struct {
	Depth      int           `json:"depth"`
	TimeLimit  time.Duration `json:"time_limit"`
	TimeOffset time.Duration `json:"time_offset"`
}

// DefaultParams mirrors the defaults of the search package.
func DefaultParams() Params {
	return Params{
		Depth:      alphabeta.DefaultDepth,
		TimeLimit:  5 * time.Second,
		TimeOffset: alphabeta.DefaultTimeOffset,
	}
}

// ParamsFromConfig extracts the search settings from the process config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Depth:      cfg.Depth,
		TimeLimit:  cfg.TimeLimit,
		TimeOffset: cfg.TimeOffset,
	}
}

// NewSolver builds a solver for these parameters.
func (p Params) NewSolver() *alphabeta.Solver {
	return alphabeta.NewSolver(p.Depth, p.TimeLimit, p.TimeOffset)
}
