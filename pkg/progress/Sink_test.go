// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct {
	messages []string
	fields   []map[string]interface{}
}

func (l *testLogger) Log(msg string, fields ...map[string]interface{}) error {
	l.messages = append(l.messages, msg)
	if len(fields) > 0 {
		l.fields = append(l.fields, fields[0])
	}
	return nil
}

func TestLogSinkThrottle(t *testing.T) {
	logger := &testLogger{}
	ls := NewLogSink(logger, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ls.now = func() time.Time { return now }

	ls.Report(Snapshot{Completed: 1, Total: 10})
	ls.Report(Snapshot{Completed: 2, Total: 10})
	ls.Report(Snapshot{Completed: 3, Total: 10})
	require.Len(t, logger.messages, 1)

	now = now.Add(2 * time.Minute)
	ls.Report(Snapshot{Completed: 4, Total: 10})
	require.Len(t, logger.messages, 2)

	// the final report is never dropped
	ls.Report(Snapshot{Completed: 10, Total: 10, Percent: 100})
	require.Len(t, logger.messages, 3)
	assert.Equal(t, "Progress", logger.messages[2])
	assert.Equal(t, int64(10), logger.fields[2]["completed"])
	assert.Equal(t, "100.00%", logger.fields[2]["percent"])
}

func TestSinkFunc(t *testing.T) {
	count := 0
	s := NewState(4, SinkFunc(func(s Snapshot) {
		count++
	}))
	s.Add(2)
	s.Add(2)
	assert.Equal(t, 2, count)
	Discard.Report(Snapshot{})
}

func TestBar(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	b := NewBar("Downloading", buf)
	assert.NoError(t, b.Finish())
	b.Report(Snapshot{Completed: 5, Total: 15})
	b.Report(Snapshot{Completed: 15, Total: 15, Percent: 100})
	assert.NoError(t, b.Finish())
	assert.Contains(t, buf.String(), "Downloading")
}

func TestBarUnknownTotal(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	b := NewBar("Downloading", buf)
	b.Report(Snapshot{Completed: 5})
	assert.NoError(t, b.Finish())
	assert.Contains(t, buf.String(), "Downloading")
}
