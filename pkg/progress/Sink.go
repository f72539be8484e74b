// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package progress

import (
	"fmt"
	"time"
)

// Sink receives a snapshot after every chunk written by any worker.
type Sink interface {
	Report(s Snapshot)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(s Snapshot)

func (f SinkFunc) Report(s Snapshot) {
	f(s)
}

// Discard drops every report.
var Discard Sink = SinkFunc(func(s Snapshot) {})

type Logger interface {
	Log(msg string, fields ...map[string]interface{}) error
}

// LogSink writes progress records through a structured logger at most once per interval.
// The final report of a transfer with a known total is always written.
type LogSink struct {
	logger   Logger
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

func (ls *LogSink) Report(s Snapshot) {
	now := ls.now()
	done := s.Total > 0 && s.Completed >= s.Total
	if !done && !ls.last.IsZero() && now.Sub(ls.last) < ls.interval {
		return
	}
	ls.last = now
	_ = ls.logger.Log("Progress", s.Fields())
}

func NewLogSink(logger Logger, interval time.Duration) *LogSink {
	return &LogSink{
		logger:   logger,
		interval: interval,
		now:      time.Now,
	}
}

// FormatSpeed formats a speed in bytes per second as MB/s, where 1 MB is 1 MiB.
func FormatSpeed(speed float64) string {
	return fmt.Sprintf("%.2f MB/s", speed/Megabyte)
}

func formatPercent(s Snapshot) string {
	return fmt.Sprintf("%.2f%%", s.Percent)
}
