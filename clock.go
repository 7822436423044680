package motion

import "time"

// processStart anchors the uptime on platforms without a readable monotonic clock.
var processStart = time.Now()

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Uptime() time.Duration { return uptime() }

// SystemClock returns the Clock reading the platform monotonic clock,
// the time base of the platform event timestamps.
func SystemClock() Clock {
	return systemClock{}
}

type processClock struct {
	start time.Time
}

func (c processClock) Now() time.Time { return time.Now() }

func (c processClock) Uptime() time.Duration { return time.Since(c.start) }

// ProcessClock returns a Clock with the boot time anchored at the call.
// It suits event sources stamping their events relative to their own start.
func ProcessClock() Clock {
	return processClock{start: time.Now()}
}
