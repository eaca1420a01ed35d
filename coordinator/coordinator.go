// Package coordinator owns the authoritative board for one player and turns
// referee commands into searches across the worker units.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/move"
	"github.com/ingenious/othello/movegen"
	"github.com/ingenious/othello/worker"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is a referee instruction.
type Command string

const (
	CmdGenMove  Command = "gen_move"
	CmdPlayMove Command = "play_move"
	CmdGameOver Command = "game_over"
)

type Coordinator struct {
	board  board.Board
	colour board.Colour
	dist   *worker.Distributor
	over   bool
}

// New returns a coordinator playing colour from the initial position.
func New(colour board.Colour, dist *worker.Distributor) *Coordinator {
	if !colour.Valid() {
		panic(fmt.Errorf("%w: %v", board.ErrInvalidPlayer, colour))
	}
	return &Coordinator{
		board:  board.NewBoard(),
		colour: colour,
		dist:   dist,
	}
}

func (c *Coordinator) Colour() board.Colour {
	return c.colour
}

// Board returns a copy of the authoritative board.
func (c *Coordinator) Board() board.Board {
	return c.board
}

// SetBoard replaces the authoritative board, for instance to resume from a
// known position.
func (c *Coordinator) SetBoard(b board.Board) {
	c.board = b
}

// Over reports whether the referee has ended the game.
func (c *Coordinator) Over() bool {
	return c.over
}

func (c *Coordinator) logBoard(event string) {
	log.Debug().Str("colour", c.colour.String()).Msgf("%s\n%s", event, c.board.ToDisplayText())
}

// GenMove chooses this player's move, plays it on the authoritative board
// and returns it. With no legal move, or if no worker produced a candidate,
// it returns move.Pass and leaves the board alone.
func (c *Coordinator) GenMove(ctx context.Context) (move.Move, error) {
	moves := movegen.LegalMoves(&c.board, c.colour)
	if len(moves) == 0 {
		log.Debug().Str("colour", c.colour.String()).Msg("no-legal-moves-passing")
		return move.Pass, nil
	}
	best, _, err := c.dist.Run(ctx, &c.board, c.colour, moves)
	if err != nil {
		return move.Pass, err
	}
	if !best.HasCandidate() {
		log.Warn().Int("legal-moves", len(moves)).Msg("no-worker-candidate-passing")
		return move.Pass, nil
	}
	if err := movegen.ApplyChecked(&c.board, best.Move.Cell(), c.colour); err != nil {
		return move.Pass, err
	}
	log.Info().Str("move", best.Move.String()).Int("score", best.Score).
		Int("worker", best.Worker).Int("workers", c.dist.Workers()).Msg("generated-move")
	c.logBoard("after-own-move")
	return best.Move, nil
}

// ApplyOpponentMove plays the opponent's move, given as move text. A pass
// changes nothing.
func (c *Coordinator) ApplyOpponentMove(text string) error {
	m, err := move.FromText(text)
	if err != nil {
		return err
	}
	if m.IsPass() {
		log.Debug().Msg("opponent-passed")
		return nil
	}
	if err := movegen.ApplyChecked(&c.board, m.Cell(), c.colour.Opponent()); err != nil {
		return err
	}
	c.logBoard("after-opponent-move")
	return nil
}

// Handle executes one referee command. Only gen_move has a reply: the move
// text of the chosen move.
func (c *Coordinator) Handle(ctx context.Context, cmd Command, text string) (string, error) {
	switch cmd {
	case CmdGenMove:
		m, err := c.GenMove(ctx)
		if err != nil {
			return "", err
		}
		return m.Text(), nil
	case CmdPlayMove:
		return "", c.ApplyOpponentMove(text)
	case CmdGameOver:
		c.over = true
		log.Info().Int("black", c.board.Count(board.Black)).
			Int("white", c.board.Count(board.White)).Msg("game-over")
		return "", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, string(cmd))
}
