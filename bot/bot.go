// Package bot runs search workers as separate processes reachable over
// NATS, and provides the client side the coordinator uses to reach them.
package bot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/worker"
)

// Subject is the NATS subject worker id listens on.
func Subject(prefix string, id int) string {
	return fmt.Sprintf("%s.%d", prefix, id)
}

// Bot answers search jobs with a local unit.
type Bot struct {
	id   int
	unit worker.LocalUnit
}

func NewBot(id int) *Bot {
	return &Bot{id: id}
}

func (bot *Bot) ID() int {
	return bot.id
}

func (bot *Bot) handle(ctx context.Context, data []byte) Response {
	job, err := DecodeJob(data)
	if err != nil {
		return errorResponse("could not parse job", err)
	}
	if job.Worker != bot.id {
		log.Warn().Int("job-worker", job.Worker).Int("bot", bot.id).Msg("job-for-other-worker")
	}
	res, err := bot.unit.Search(ctx, job)
	if err != nil {
		return errorResponse("search failed", err)
	}
	log.Info().Int("worker", res.Worker).Str("move", res.Move.String()).
		Int("score", res.Score).Msg("job-done")
	return Response{Result: &res}
}

// Handle answers one encoded job with an encoded response.
func (bot *Bot) Handle(ctx context.Context, data []byte) []byte {
	resp := bot.handle(ctx, data)
	out, err := json.Marshal(resp)
	if err != nil {
		// Should never happen, but the requester still needs an answer.
		return []byte(`{"error":"could not encode response"}`)
	}
	return out
}

// Main subscribes bot to its subject and serves jobs until ctx is done.
func Main(ctx context.Context, nc *nats.Conn, prefix string, bot *Bot) error {
	subject := Subject(prefix, bot.ID())
	sub, err := nc.Subscribe(subject, func(m *nats.Msg) {
		log.Debug().Msgf("RECV: %d bytes", len(m.Data))
		if err := m.Respond(bot.Handle(ctx, m.Data)); err != nil {
			log.Err(err).Msg("respond-failed")
		}
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	if err := nc.Flush(); err != nil {
		return err
	}
	if err := nc.LastError(); err != nil {
		return err
	}
	log.Info().Msgf("Listening on [%s]", subject)

	<-ctx.Done()
	log.Info().Str("subject", subject).Msg("unsubscribing")
	return sub.Drain()
}
