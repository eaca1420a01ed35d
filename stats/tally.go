package stats

import (
	"fmt"
	"sync"
)

// Tally accumulates finished games. It is safe for concurrent use.
type Tally struct {
	sync.Mutex
	games      int
	blackWins  int
	whiteWins  int
	draws      int
	discMargin Statistic
}

// Add records one game by its final disc counts.
func (t *Tally) Add(black, white int) {
	t.Lock()
	defer t.Unlock()
	t.games++
	switch {
	case black > white:
		t.blackWins++
	case white > black:
		t.whiteWins++
	default:
		t.draws++
	}
	t.discMargin.Push(float64(black - white))
}

func (t *Tally) Reset() {
	t.Lock()
	defer t.Unlock()
	t.games, t.blackWins, t.whiteWins, t.draws = 0, 0, 0, 0
	t.discMargin = Statistic{}
}

func (t *Tally) Games() int {
	t.Lock()
	defer t.Unlock()
	return t.games
}

// Wins returns black wins, white wins and draws.
func (t *Tally) Wins() (int, int, int) {
	t.Lock()
	defer t.Unlock()
	return t.blackWins, t.whiteWins, t.draws
}

// MeanMargin is the average of black's discs minus white's.
func (t *Tally) MeanMargin() float64 {
	t.Lock()
	defer t.Unlock()
	return t.discMargin.Mean()
}

func (t *Tally) String() string {
	t.Lock()
	defer t.Unlock()
	if t.games == 0 {
		return "no games played"
	}
	return fmt.Sprintf("%d games: black %d, white %d, draws %d; black margin %.2f ± %.2f (95%%)",
		t.games, t.blackWins, t.whiteWins, t.draws,
		t.discMargin.Mean(), ConfidenceInterval(&t.discMargin, 95))
}
