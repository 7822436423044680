//go:build linux

package motion

import (
	"time"

	"golang.org/x/sys/unix"
)

// uptime reads CLOCK_MONOTONIC, the clock behind the input event timestamps.
func uptime() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return time.Since(processStart)
	}
	return time.Duration(ts.Nano())
}
