package automatic

import (
	"context"
	"fmt"

	"lukechampine.com/frand"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/move"
	"github.com/ingenious/othello/movegen"
	"github.com/ingenious/othello/worker"
)

const (
	EnginePlayerName = "engine"
	RandomPlayerName = "random"
)

// A Player chooses a move for colour c on b. It must return move.Pass if and
// only if c has no legal move.
type Player interface {
	Name() string
	ChooseMove(ctx context.Context, b board.Board, c board.Colour) (move.Move, error)
}

// RandomPlayer plays a uniformly random legal move.
type RandomPlayer struct{}

func (RandomPlayer) Name() string {
	return RandomPlayerName
}

func (RandomPlayer) ChooseMove(ctx context.Context, b board.Board, c board.Colour) (move.Move, error) {
	moves := movegen.LegalMoves(&b, c)
	if len(moves) == 0 {
		return move.Pass, nil
	}
	return move.NewPlacement(moves[frand.Intn(len(moves))]), nil
}

// EnginePlayer searches with a distributor, like a coordinator would.
type EnginePlayer struct {
	dist *worker.Distributor
}

func NewEnginePlayer(dist *worker.Distributor) *EnginePlayer {
	return &EnginePlayer{dist: dist}
}

func (p *EnginePlayer) Name() string {
	return EnginePlayerName
}

func (p *EnginePlayer) ChooseMove(ctx context.Context, b board.Board, c board.Colour) (move.Move, error) {
	moves := movegen.LegalMoves(&b, c)
	if len(moves) == 0 {
		return move.Pass, nil
	}
	best, _, err := p.dist.Run(ctx, &b, c, moves)
	if err != nil {
		return move.Pass, err
	}
	if !best.HasCandidate() {
		return move.Pass, fmt.Errorf("no candidate among %d legal moves", len(moves))
	}
	return best.Move, nil
}

// NewPlayer builds a player by name.
func NewPlayer(name string, dist *worker.Distributor) (Player, error) {
	switch name {
	case EnginePlayerName:
		return NewEnginePlayer(dist), nil
	case RandomPlayerName:
		return RandomPlayer{}, nil
	}
	return nil, fmt.Errorf("unknown player %q", name)
}
