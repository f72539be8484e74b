// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/viper"

	"github.com/navwar/gotransfer/pkg/fs"
	"github.com/navwar/gotransfer/pkg/log"
	"github.com/navwar/gotransfer/pkg/ts"
)

// InitLogger returns a logger writing to the configured log path.
// "-" is stdout and the null device discards every record.
func InitLogger(v *viper.Viper) (*log.SimpleLogger, error) {
	logger, err := openLogger(v.GetString(FlagLogPath), v.GetString(FlagLogPerm))
	if err != nil {
		return nil, err
	}
	location, err := ts.ParseLocation(v.GetString(FlagLogTimeZone))
	if err != nil {
		return nil, fmt.Errorf("error parsing log time zone: %w", err)
	}
	logger.SetTime(ts.ParseLayout(v.GetString(FlagLogTimeLayout)), location)
	return logger, nil
}

func openLogger(path string, perm string) (*log.SimpleLogger, error) {

	if path == os.DevNull {
		return log.NewSimpleLogger(io.Discard), nil
	}

	if path == "-" {
		return log.NewSimpleLogger(os.Stdout), nil
	}

	fileMode := os.FileMode(0600)

	if len(perm) > 0 {
		fm, err := strconv.ParseUint(perm, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("error parsing file permissions for log file from %q", perm)
		}
		fileMode = os.FileMode(fm)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	return log.NewSimpleLogger(f), nil
}

// FileLogger returns the logger used for per-file records, which is nil unless debug is enabled.
func FileLogger(v *viper.Viper, logger *log.SimpleLogger) fs.Logger {
	if v.GetBool(FlagDebug) {
		return logger
	}
	return nil
}
