package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/bot"
	"github.com/ingenious/othello/config"
	"github.com/ingenious/othello/shell"
)

var (
	GitVersion string
)

//go:embed othello.txt
var banner string

func main() {
	fs := config.FlagSet("othello-shell")
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-flags")
	}
	cfg := &config.Config{}
	if err := cfg.LoadFlags(fs); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	closer, err := cfg.SetupLogging()
	if err != nil {
		log.Fatal().Err(err).Msg("logging-setup")
	}
	defer closer.Close()
	fmt.Println(banner)
	fmt.Println(GitVersion)

	var nc bot.Requester
	if cfg.NatsURL != "" {
		conn, err := bot.Connect(context.Background(), cfg.NatsURL, "othello-shell")
		if err != nil {
			log.Fatal().Err(err).Msg("nats-connect")
		}
		defer conn.Close()
		nc = conn
	}

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	sc := shell.NewShellController(cfg, nc)
	// Anything left after the flags is run as a single command.
	if line := strings.TrimSpace(strings.Join(fs.Args(), " ")); line == "" {
		go sc.Loop(sig)
	} else {
		sc.Execute(sig, line)
		sig <- syscall.SIGINT
	}

	log.Info().Msg("started loop")
	<-idleConnsClosed

	sc.Cleanup()
	log.Info().Msg("server gracefully shutting down")
}
