// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package log

import (
	"fmt"
	"strings"

	"github.com/aws/smithy-go/logging"
)

// ClientLogger adapts a SimpleLogger to the logger used by AWS clients.
type ClientLogger struct {
	logger *SimpleLogger
}

// clientEvents maps the prefixes of AWS SDK debug output to log messages.
var clientEvents = []struct {
	prefix string
	msg    string
}{
	{prefix: "Request Signature:\n", msg: "Request Signature"},
	{prefix: "Request\n", msg: "Request"},
	{prefix: "Response\n", msg: "Response"},
}

// Logf writes one line per client event.
// The message names the kind of event and the details hold the rest of the event,
// such as the dumped request or response.
func (c *ClientLogger) Logf(classification logging.Classification, format string, v ...interface{}) {
	event := fmt.Sprintf(format, v...)
	msg, details := "Client Event", event
	for _, e := range clientEvents {
		if rest, ok := strings.CutPrefix(event, e.prefix); ok {
			msg, details = e.msg, rest
			break
		}
	}
	_ = c.logger.Log(msg, map[string]interface{}{
		"classification": string(classification),
		"details":        details,
	})
}

func NewClientLogger(logger *SimpleLogger) *ClientLogger {
	return &ClientLogger{logger: logger}
}
