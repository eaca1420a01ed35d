package stats

import (
	"strings"
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
		is.Equal(s.Count(), len(c.scores))
	}
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(0), 0))
	is.True(ZVal(95) > 1.959 && ZVal(95) < 1.961)
	is.True(ZVal(99) > 2.575 && ZVal(99) < 2.577)
}

func TestTally(t *testing.T) {
	is := is.New(t)
	tally := &Tally{}
	is.Equal(tally.String(), "no games played")

	var wg sync.WaitGroup
	for _, g := range [][2]int{{40, 24}, {20, 44}, {32, 32}, {50, 14}} {
		g := g
		wg.Add(1)
		go func() {
			defer wg.Done()
			tally.Add(g[0], g[1])
		}()
	}
	wg.Wait()

	is.Equal(tally.Games(), 4)
	b, w, d := tally.Wins()
	is.Equal([3]int{b, w, d}, [3]int{2, 1, 1})
	// Margins 16, -24, 0, 36.
	is.True(FuzzyEqual(tally.MeanMargin(), 7))
	is.True(strings.HasPrefix(tally.String(), "4 games: black 2, white 1, draws 1; black margin 7.00 ± "))

	tally.Reset()
	is.Equal(tally.Games(), 0)
}
