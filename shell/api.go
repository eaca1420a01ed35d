package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/automatic"
	"github.com/ingenious/othello/board"
	"github.com/ingenious/othello/equity"
	"github.com/ingenious/othello/movegen"
)

const (
	defaultAutoplayGames = 100
	defaultAutoplayFile  = "/tmp/autoplay.txt"
)

func (sc *ShellController) boardText() string {
	b := sc.coord.Board()
	return b.ToDisplayText()
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	colour := sc.config.Colour
	if len(cmd.args) > 0 {
		var err error
		colour, err = board.ParseColour(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	sc.resetGame(colour)
	return msg(fmt.Sprintf("engine plays %v\n%s", colour, sc.boardText())), nil
}

func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	m, err := sc.coord.GenMove(context.Background())
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%v plays %v\n%s", sc.coord.Colour(), m, sc.boardText())), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <move>")
	}
	if err := sc.coord.ApplyOpponentMove(cmd.args[0]); err != nil {
		return nil, err
	}
	return msg(sc.boardText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(sc.boardText()), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	b := sc.coord.Board()
	var sb strings.Builder
	for _, c := range []board.Colour{board.Black, board.White} {
		t := equity.Terms(&b, c)
		fmt.Fprintf(&sb, "%-6s %v\n", c, t)
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) legal(cmd *shellcmd) (*Response, error) {
	colour := sc.coord.Colour()
	if len(cmd.args) > 0 {
		var err error
		colour, err = board.ParseColour(cmd.args[0])
		if err != nil {
			return nil, err
		}
	}
	b := sc.coord.Board()
	moves := movegen.LegalMoves(&b, colour)
	if len(moves) == 0 {
		return msg(fmt.Sprintf("%v has no legal moves; it must pass", colour)), nil
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d legal moves for %v:\n", len(moves), colour)
	for _, m := range moves {
		fmt.Fprintf(&sb, "  %v flips %d\n", m, movegen.Flips(&b, m, colour))
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) configure(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 0:
		out, err := sc.config.YAML()
		if err != nil {
			return nil, err
		}
		return msg(strings.TrimSuffix(out, "\n")), nil
	case 2:
		if err := sc.config.Set(cmd.args[0], cmd.args[1]); err != nil {
			return nil, err
		}
		return msg("set " + cmd.args[0] + " to " + cmd.args[1]), nil
	}
	return nil, errors.New("usage: config [key value]")
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 1 && cmd.args[0] == "show" {
		return msg(automatic.Results.String()), nil
	}
	if len(cmd.args) == 1 && cmd.args[0] == "stop" {
		if sc.autoplayCancel == nil || automatic.IsPlaying.Value() == 0 {
			return nil, errors.New("no games are being played")
		}
		sc.autoplayCancel()
		return msg("stopping games"), nil
	}

	numGames := defaultAutoplayGames
	players := []string{automatic.EnginePlayerName, automatic.EnginePlayerName}
	if len(cmd.args) > 0 {
		n, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, err
		}
		numGames = n
	}
	copy(players, cmd.args[min(len(cmd.args), 1):])

	threads := 1
	if t, ok := cmd.options["threads"]; ok {
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, err
		}
		threads = max(n, 1)
	}
	file := defaultAutoplayFile
	if f, ok := cmd.options["file"]; ok {
		file = f
	}

	ctx, cancel := context.WithCancel(context.Background())
	err := automatic.StartCompVCompGames(ctx, sc.config, numGames, threads, file,
		players[0], players[1])
	if err != nil {
		cancel()
		return nil, err
	}
	sc.autoplayCancel = cancel
	log.Info().Int("games", numGames).Str("black", players[0]).
		Str("white", players[1]).Str("file", file).Msg("autoplay-started")
	return msg(fmt.Sprintf("playing %d games of %s vs %s, logging to %s",
		numGames, players[0], players[1], file)), nil
}
