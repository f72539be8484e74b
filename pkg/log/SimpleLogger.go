// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/navwar/gotransfer/pkg/ts"
)

// SimpleLogger writes one JSON object per line.
// Every line includes the message as "msg" and the current time as "ts".
type SimpleLogger struct {
	mu       sync.Mutex
	writer   io.Writer
	layout   ts.Layout
	location *time.Location
	now      func() time.Time
}

// Log writes the message and the merged fields as a single line.
// Later fields override earlier ones, but never "msg" or "ts".
func (s *SimpleLogger) Log(msg string, fields ...map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if s.location != nil {
		now = now.In(s.location)
	}
	m := map[string]interface{}{}
	for _, f := range fields {
		for k, v := range f {
			m[k] = v
		}
	}
	m["msg"] = msg
	m["ts"] = s.layout.Format(now)
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshaling log message %q: %w", msg, err)
	}
	_, err = s.writer.Write(append(b, '\n'))
	if err != nil {
		return fmt.Errorf("error writing log message %q: %w", msg, err)
	}
	return nil
}

// SetTime sets the layout and location used to format the "ts" field.
// A nil location keeps the location of the clock.
func (s *SimpleLogger) SetTime(layout ts.Layout, location *time.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = layout
	s.location = location
}

func NewSimpleLogger(w io.Writer) *SimpleLogger {
	return &SimpleLogger{
		writer: w,
		layout: ts.Layout(time.RFC3339Nano),
		now:    time.Now,
	}
}
