// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

// Logger is implemented by log.SimpleLogger.  Implementations must be safe for concurrent use,
// since every worker of a transfer logs through the same logger.
type Logger interface {
	Log(msg string, fields ...map[string]interface{}) error
}
