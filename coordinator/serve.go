package coordinator

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/ingenious/othello/move"
)

// Serve reads one command per line from r and writes replies to w, until
// game_over, end of input, or ctx ends. Commands that fail are logged and
// the session carries on; a failed gen_move is answered with a pass.
func (c *Coordinator) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields, err := shellquote.Split(scanner.Text())
		if err != nil {
			log.Err(err).Str("line", scanner.Text()).Msg("unparseable-command")
			continue
		}
		if len(fields) == 0 {
			continue
		}
		cmd := Command(fields[0])
		text := strings.Join(fields[1:], " ")

		reply, err := c.Handle(ctx, cmd, text)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Err(err).Str("command", string(cmd)).Msg("command-failed")
			if cmd != CmdGenMove {
				continue
			}
			reply = move.PassText
		}
		if reply != "" {
			if _, err := io.WriteString(w, reply); err != nil {
				return err
			}
		}
		if c.over {
			return nil
		}
	}
	return scanner.Err()
}
