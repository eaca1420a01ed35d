// player speaks the referee protocol on stdin/stdout: one command per line
// (gen_move, play_move <move>, game_over), replying with move text.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/bot"
	"github.com/ingenious/othello/config"
	"github.com/ingenious/othello/coordinator"
	"github.com/ingenious/othello/worker"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	closer, err := cfg.SetupLogging()
	if err != nil {
		log.Fatal().Err(err).Msg("logging-setup")
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var units []worker.Unit
	if cfg.NatsURL != "" && cfg.Workers > 1 {
		nc, err := bot.Connect(ctx, cfg.NatsURL, "othello-player")
		if err != nil {
			log.Fatal().Err(err).Msg("nats-connect")
		}
		defer nc.Close()
		units = coordinator.NewUnits(cfg.Workers, nc, cfg.WorkerSubject)
	} else {
		units = coordinator.NewUnits(cfg.Workers, nil, "")
	}

	log.Info().Str("colour", cfg.Colour.String()).Int("workers", len(units)).
		Dur("time-limit", cfg.TimeLimit).Int("depth", cfg.Depth).Msg("player-starting")

	c := coordinator.New(cfg.Colour, worker.NewDistributor(units, worker.ParamsFromConfig(cfg)))
	if err := c.Serve(ctx, os.Stdin, os.Stdout); err != nil {
		log.Err(err).Msg("session-ended")
		return
	}
	b := c.Board()
	log.Info().Msgf("final position\n%s", b.ToDisplayText())
}
