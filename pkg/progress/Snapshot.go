// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package progress

import (
	"time"
)

const (
	Megabyte = 1024 * 1024
)

// Snapshot is a consistent view of a transfer taken under the state lock.
type Snapshot struct {
	Completed int64
	Total     int64
	Elapsed   time.Duration
	// Speed is the average throughput in bytes per second since the transfer started.
	Speed float64
	// Percent is zero when the total is unknown.
	Percent float64
}

// Remaining estimates the time left at the current average speed.
// Returns zero if the total is unknown or nothing has been transferred yet.
func (s Snapshot) Remaining() time.Duration {
	if s.Total <= 0 || s.Speed <= 0 || s.Completed >= s.Total {
		return 0
	}
	return time.Duration(float64(s.Total-s.Completed) / s.Speed * float64(time.Second))
}

func (s Snapshot) Fields() map[string]interface{} {
	return map[string]interface{}{
		"completed": s.Completed,
		"total":     s.Total,
		"elapsed":   s.Elapsed.String(),
		"remaining": s.Remaining().String(),
		"speed":     FormatSpeed(s.Speed),
		"percent":   formatPercent(s),
	}
}
