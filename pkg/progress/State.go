// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package progress

import (
	"sync"
	"time"
)

// State is the byte counter shared by every worker of a single transfer.
// The counter and every value derived from it are only touched while holding mu.
type State struct {
	mu        sync.Mutex
	completed int64
	total     int64
	start     time.Time
	now       func() time.Time
	sink      Sink
}

// Add increments the counter by n and publishes the resulting snapshot to the sink.
// The sink is called with the lock held, so reports from concurrent workers are serialized.
func (s *State) Add(n int64) Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed += n
	snapshot := s.snapshot()
	if s.sink != nil {
		s.sink.Report(snapshot)
	}
	return snapshot
}

// Snapshot returns the current values without changing the counter.
func (s *State) Snapshot() Snapshot {
	if s == nil {
		return Snapshot{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *State) snapshot() Snapshot {
	elapsed := s.now().Sub(s.start)
	speed := float64(0)
	if elapsed > 0 {
		speed = float64(s.completed) / elapsed.Seconds()
	}
	percent := float64(0)
	if s.total > 0 {
		percent = float64(s.completed) / float64(s.total) * 100
	}
	return Snapshot{
		Completed: s.completed,
		Total:     s.total,
		Elapsed:   elapsed,
		Speed:     speed,
		Percent:   percent,
	}
}

// NewState returns a counter for a transfer of total bytes that reports to sink.
// A total of zero means the size is unknown.  The sink may be nil.
func NewState(total int64, sink Sink) *State {
	return &State{
		total: total,
		start: time.Now(),
		now:   time.Now,
		sink:  sink,
	}
}
