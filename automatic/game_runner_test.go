package automatic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/config"
	"github.com/ingenious/othello/move"
	"github.com/ingenious/othello/movegen"
	"github.com/ingenious/othello/worker"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func shallowEngine() *EnginePlayer {
	units := []worker.Unit{worker.LocalUnit{}, worker.LocalUnit{}}
	return NewEnginePlayer(worker.NewDistributor(units, worker.Params{Depth: 1}))
}

func checkFinished(is *is.I, r *GameRunner, out Outcome) {
	b := r.Board()
	is.Equal(out.Black, b.Count(board.Black))
	is.Equal(out.White, b.Count(board.White))
	is.Equal(out.Black+out.White+b.Empties(), 64)
	is.True(!movegen.HasLegalMove(&b, board.Black))
	is.True(!movegen.HasLegalMove(&b, board.White))
	is.Equal(out.Turns, len(r.History()))
	switch {
	case out.Black > out.White:
		is.Equal(out.Winner, board.Black)
	case out.White > out.Black:
		is.Equal(out.Winner, board.White)
	default:
		is.Equal(out.Winner, board.Colour(0))
	}
}

func TestRandomGamesFinish(t *testing.T) {
	is := is.New(t)
	for i := 0; i < 20; i++ {
		r := NewGameRunner(nil, RandomPlayer{}, RandomPlayer{})
		out, err := r.PlayGame(context.Background())
		is.NoErr(err)
		checkFinished(is, r, out)
	}
}

func TestEngineVsRandom(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string, 200)
	r := NewGameRunner(logchan, shallowEngine(), RandomPlayer{})
	out, err := r.PlayGame(context.Background())
	is.NoErr(err)
	checkFinished(is, r, out)

	close(logchan)
	n := 0
	for line := range logchan {
		n++
		fields := strings.Split(strings.TrimSpace(line), ",")
		is.Equal(len(fields), 8)
	}
	is.Equal(n, out.Turns)
}

type cheater struct{}

func (cheater) Name() string { return "cheater" }

func (cheater) ChooseMove(context.Context, board.Board, board.Colour) (move.Move, error) {
	// Always a centre square, which is occupied from the start.
	return move.NewPlacement(board.CellAt(3, 3)), nil
}

type passer struct{}

func (passer) Name() string { return "passer" }

func (passer) ChooseMove(context.Context, board.Board, board.Colour) (move.Move, error) {
	return move.Pass, nil
}

func TestIllegalPlays(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(nil, cheater{}, RandomPlayer{})
	err := r.PlayTurn(context.Background())
	is.True(errors.Is(err, ErrIllegalPlay))
	is.Equal(r.Board(), board.NewBoard())

	r = NewGameRunner(nil, passer{}, RandomPlayer{})
	_, err = r.PlayGame(context.Background())
	is.True(errors.Is(err, ErrIllegalPlay))
}

func TestNewPlayer(t *testing.T) {
	is := is.New(t)
	p, err := NewPlayer("random", nil)
	is.NoErr(err)
	is.Equal(p.Name(), RandomPlayerName)
	_, err = NewPlayer("alphazero", nil)
	is.True(err != nil)
}

func TestStartCompVCompGames(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	is.NoErr(cfg.Set(config.ConfigDepth, "1"))
	is.NoErr(cfg.Set(config.ConfigWorkers, "2"))
	out := filepath.Join(t.TempDir(), "games.csv")

	is.NoErr(StartCompVCompGames(context.Background(), cfg, 3, 2, out, "engine", "random"))
	deadline := time.Now().Add(30 * time.Second)
	for CVCCounter.Value() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	is.Equal(CVCCounter.Value(), int64(3))
	is.Equal(Results.Games(), 3)
	for IsPlaying.Value() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	is.Equal(IsPlaying.Value(), int64(0))
}
