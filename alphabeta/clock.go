package alphabeta

import "time"

// Clock is the time source of the search. Tests swap in a fake one so the
// deadline can be exercised without waiting.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}
