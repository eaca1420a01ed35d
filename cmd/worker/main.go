// worker is a remote search unit. It answers jobs on
// <worker-subject>.<worker-id> until interrupted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/bot"
	"github.com/ingenious/othello/config"
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
	if cfg.NatsURL == "" {
		log.Fatal().Msg("a worker process needs --nats-url")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	nc, err := bot.Connect(ctx, cfg.NatsURL, fmt.Sprintf("othello-worker-%d", cfg.WorkerID))
	if err != nil {
		log.Fatal().Err(err).Msg("nats-connect")
	}
	defer nc.Close()

	if err := bot.Main(ctx, nc, cfg.WorkerSubject, bot.NewBot(cfg.WorkerID)); err != nil {
		log.Err(err).Msg("worker-stopped")
	}
	log.Info().Msg("server gracefully shutting down")
}
