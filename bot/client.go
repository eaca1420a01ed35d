package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ingenious/othello/worker"
)

// RequestSlack is added to the time a remote worker is given for a job, to
// cover transport and decoding.
const RequestSlack = 2 * time.Second

// Requester sends a request and waits for its reply. *nats.Conn is one.
type Requester interface {
	RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error)
}

// Client is a worker.Unit backed by a remote bot.
type Client struct {
	nc     Requester
	prefix string
}

func NewClient(nc Requester, prefix string) *Client {
	return &Client{nc: nc, prefix: prefix}
}

// Timeout is how long a job may take remotely: the per-move budget for each
// assigned move, plus slack. Without a time limit there is no timeout.
func Timeout(job worker.Job) time.Duration {
	if job.Params.TimeLimit <= 0 {
		return 0
	}
	return job.Params.TimeLimit*time.Duration(len(job.Moves)) + RequestSlack
}

// Search sends the job to the bot listening for job.Worker.
func (c *Client) Search(ctx context.Context, job worker.Job) (worker.Result, error) {
	data, err := EncodeJob(job)
	if err != nil {
		return worker.NoCandidate(job.Worker), err
	}
	if t := Timeout(job); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	subject := Subject(c.prefix, job.Worker)
	res, err := c.nc.RequestWithContext(ctx, subject, data)
	if err != nil {
		log.Error().Msgf("%v for request to %s", err, subject)
		return worker.NoCandidate(job.Worker), err
	}
	log.Debug().Msgf("res: %v", string(res.Data))
	result, err := DecodeResponse(res.Data)
	if err != nil {
		return worker.NoCandidate(job.Worker), err
	}
	if result.HasCandidate() && !lo.Contains(job.Moves, result.Move.Cell()) {
		return worker.NoCandidate(job.Worker),
			fmt.Errorf("%w: move %s was not assigned to worker %d", ErrRemote, result.Move, job.Worker)
	}
	return result, nil
}
