package coordinator

import (
	"github.com/ingenious/othello/bot"
	"github.com/ingenious/othello/worker"
)

// NewUnits builds the search units for a player. Unit 0 always searches
// in-process. The others are remote bots reached through nc, or more local
// units if nc is nil.
func NewUnits(workers int, nc bot.Requester, prefix string) []worker.Unit {
	workers = max(workers, 1)
	units := make([]worker.Unit, workers)
	units[0] = worker.LocalUnit{}
	var rest worker.Unit = worker.LocalUnit{}
	if nc != nil {
		rest = bot.NewClient(nc, prefix)
	}
	for i := 1; i < workers; i++ {
		units[i] = rest
	}
	return units
}
