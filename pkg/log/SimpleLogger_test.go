// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/smithy-go/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navwar/gotransfer/pkg/ts"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	lines := []map[string]interface{}{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		m := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestSimpleLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSimpleLogger(buf)
	logger.now = func() time.Time {
		return time.Date(2022, time.June, 7, 8, 9, 10, 0, time.UTC)
	}
	logger.SetTime(ts.ParseLayout("DateTime"), nil)

	err := logger.Log("Copying file", map[string]interface{}{
		"src": "a.txt",
		"msg": "ignored",
	}, map[string]interface{}{
		"dst": "b.txt",
	})
	require.NoError(t, err)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, map[string]interface{}{
		"msg": "Copying file",
		"ts":  "2022-06-07 08:09:10",
		"src": "a.txt",
		"dst": "b.txt",
	}, lines[0])
}

func TestSimpleLoggerLocation(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSimpleLogger(buf)
	logger.now = func() time.Time {
		return time.Date(2022, time.June, 7, 8, 9, 10, 0, time.UTC)
	}
	location, err := ts.ParseLocation("-7")
	require.NoError(t, err)
	logger.SetTime(ts.ParseLayout("TimeOnly"), location)

	require.NoError(t, logger.Log("Done"))
	assert.Equal(t, "01:09:10", decodeLines(t, buf)[0]["ts"])
}

func TestSimpleLoggerConcurrent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewSimpleLogger(buf)
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = logger.Log("Progress", map[string]interface{}{"worker": i})
		}(i)
	}
	wg.Wait()
	assert.Len(t, decodeLines(t, buf), 10)
}

func TestClientLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewClientLogger(NewSimpleLogger(buf))
	logger.Logf(logging.Debug, "Request\n%s", "GET /bucket/key HTTP/1.1")
	logger.Logf(logging.Warn, "retrying %d", 2)
	logger.Logf(logging.Debug, "Request Signature:\n%s", "AWS4-HMAC-SHA256")
	logger.Logf(logging.Debug, "Response\n%s", "HTTP/1.1 200 OK")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 4)
	assert.Equal(t, "Request", lines[0]["msg"])
	assert.Equal(t, "GET /bucket/key HTTP/1.1", lines[0]["details"])
	assert.Equal(t, "DEBUG", lines[0]["classification"])
	assert.Equal(t, "Client Event", lines[1]["msg"])
	assert.Equal(t, "retrying 2", lines[1]["details"])
	assert.Equal(t, "Request Signature", lines[2]["msg"])
	assert.Equal(t, "AWS4-HMAC-SHA256", lines[2]["details"])
	assert.Equal(t, "Response", lines[3]["msg"])
	assert.Equal(t, "HTTP/1.1 200 OK", lines[3]["details"])
}
