//go:build !linux

package motion

import "time"

func uptime() time.Duration {
	return time.Since(processStart)
}
