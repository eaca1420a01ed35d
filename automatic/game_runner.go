// Package automatic plays whole games between computer players, for
// testing the engine against itself or against a random mover.
package automatic

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/equity"
	"github.com/ingenious/othello/move"
	"github.com/ingenious/othello/movegen"
)

var ErrIllegalPlay = errors.New("player made an illegal move")

// Outcome is the final disc count of a game. Winner is zero for a draw.
type Outcome struct {
	Black  int
	White  int
	Turns  int
	Winner board.Colour
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	board   board.Board
	onTurn  board.Colour
	turn    int
	passes  int
	players [2]Player
	history []move.Move
	gameID  int
	logchan chan string
}

// NewGameRunner sets up a game from the initial position, Black to move.
func NewGameRunner(logchan chan string, black, white Player) *GameRunner {
	r := &GameRunner{logchan: logchan, players: [2]Player{black, white}}
	r.StartGame()
	return r
}

func (r *GameRunner) StartGame() {
	r.board = board.NewBoard()
	r.onTurn = board.Black
	r.turn = 0
	r.passes = 0
	r.history = r.history[:0]
}

func (r *GameRunner) Board() board.Board {
	return r.board
}

func (r *GameRunner) History() []move.Move {
	return r.history
}

// Playing is false once both sides have passed in a row.
func (r *GameRunner) Playing() bool {
	return r.passes < 2
}

func playerIdx(c board.Colour) int {
	if c == board.Black {
		return 0
	}
	return 1
}

// PlayTurn asks the player on turn for a move and plays it.
func (r *GameRunner) PlayTurn(ctx context.Context) error {
	c := r.onTurn
	p := r.players[playerIdx(c)]
	m, err := p.ChooseMove(ctx, r.board, c)
	if err != nil {
		return err
	}
	if m.IsPass() {
		if movegen.HasLegalMove(&r.board, c) {
			return fmt.Errorf("%w: %s passed with moves available", ErrIllegalPlay, p.Name())
		}
		r.passes++
	} else {
		if err := movegen.ApplyChecked(&r.board, m.Cell(), c); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrIllegalPlay, p.Name(), err)
		}
		r.passes = 0
	}
	r.turn++
	r.history = append(r.history, m)

	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v,%v,%v\n",
			p.Name(),
			c,
			r.gameID,
			r.turn,
			m,
			r.board.Count(board.Black),
			r.board.Count(board.White),
			equity.Evaluate(&r.board, c))
	}
	r.onTurn = c.Opponent()
	return nil
}

// PlayGame plays turns until neither side can move.
func (r *GameRunner) PlayGame(ctx context.Context) (Outcome, error) {
	for r.Playing() {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if err := r.PlayTurn(ctx); err != nil {
			return Outcome{}, err
		}
	}
	out := Outcome{
		Black: r.board.Count(board.Black),
		White: r.board.Count(board.White),
		Turns: r.turn,
	}
	switch {
	case out.Black > out.White:
		out.Winner = board.Black
	case out.White > out.Black:
		out.Winner = board.White
	}
	log.Debug().Int("black", out.Black).Int("white", out.White).
		Int("turns", out.Turns).Msg("game-over")
	return out, nil
}
