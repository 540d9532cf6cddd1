package match

import "time"

// Clock is the engine's time source. Production uses the UTC system
// clock; tests inject a deterministic clock.
type Clock interface {
	Now() time.Time
}

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
