// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/navwar/gotransfer/pkg/lfs"
	"github.com/navwar/gotransfer/pkg/remote"
	"github.com/navwar/gotransfer/pkg/ts"
)

func InitViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	return v, nil
}

func CheckAWSConfig(v *viper.Viper) error {
	if retryMaxAttempts := v.GetInt(FlagAWSRetryMaxAttempts); retryMaxAttempts < 0 {
		return fmt.Errorf("%q value %d is invalid, expecting value greater than or equal to 0", FlagAWSRetryMaxAttempts, retryMaxAttempts)
	}
	return nil
}

func CheckLogConfig(v *viper.Viper) error {
	logPath := v.GetString(FlagLogPath)
	if len(logPath) == 0 {
		return fmt.Errorf("log path is missing")
	}
	logPerm := v.GetString(FlagLogPerm)
	if len(logPerm) == 0 {
		return fmt.Errorf("log perm is missing")
	}
	_, err := strconv.ParseUint(logPerm, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid format for log perm: %s", logPerm)
	}
	if len(v.GetString(FlagLogTimeLayout)) == 0 {
		return fmt.Errorf("log time layout is missing")
	}
	if _, err := ts.ParseLocation(v.GetString(FlagLogTimeZone)); err != nil {
		return fmt.Errorf("invalid log time zone %q: %w", v.GetString(FlagLogTimeZone), err)
	}
	return nil
}

func CheckTransferConfig(v *viper.Viper) error {
	if chunkSize := v.GetInt(FlagChunkSize); chunkSize <= 0 {
		return fmt.Errorf("chunk size must be greater than zero, but found %d", chunkSize)
	}
	if progressInterval := v.GetDuration(FlagProgressInterval); progressInterval < 0 {
		return fmt.Errorf("progress interval cannot be negative, but found %s", progressInterval)
	}
	return nil
}

// CheckPaths returns an error if the local source and destination are the same path,
// or if the source is a directory that contains or is contained by the destination.
func CheckPaths(source string, destination string) error {
	sourceAbsolutePath, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("error creating absolute path for source: %q", source)
	}
	destinationAbsolutePath, err := filepath.Abs(destination)
	if err != nil {
		return fmt.Errorf("error creating absolute path for destination: %q", destination)
	}
	if sourceAbsolutePath == destinationAbsolutePath {
		return fmt.Errorf("%w: %q", lfs.ErrSameSourceDestination, source)
	}
	// check for cycle errors
	if fi, err := os.Stat(sourceAbsolutePath); err == nil && fi.IsDir() {
		if err := lfs.Check(sourceAbsolutePath, destinationAbsolutePath); err != nil {
			return err
		}
	}
	return nil
}

// CheckCopyConfig checks the arguments to gocopy, which are the destination followed by the source.
func CheckCopyConfig(v *viper.Viper, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expecting 2 positional arguments for destination and source, but found %d arguments", len(args))
	}
	destination, source := args[0], args[1]
	if remote.IsURL(destination) {
		return fmt.Errorf("destination must be a local path, but found %q", destination)
	}
	if !remote.IsURL(source) {
		if err := CheckPaths(source, destination); err != nil {
			return err
		}
	}
	if threads := v.GetInt(FlagThreads); threads == 0 {
		return errors.New("threads cannot be zero")
	} else if threads < -1 {
		return fmt.Errorf("threads must be positive or -1, but found %d", threads)
	}
	if err := CheckTransferConfig(v); err != nil {
		return err
	}
	if err := CheckAWSConfig(v); err != nil {
		return fmt.Errorf("error with AWS configuration: %w", err)
	}
	if err := CheckLogConfig(v); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	return nil
}

// CheckMoveConfig checks the arguments to gomove, which are the source followed by the destination.
func CheckMoveConfig(v *viper.Viper, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expecting 2 positional arguments for source and destination, but found %d arguments", len(args))
	}
	source, destination := args[0], args[1]
	if remote.IsURL(source) || remote.IsURL(destination) {
		return fmt.Errorf("source and destination must be local paths")
	}
	if err := CheckPaths(source, destination); err != nil {
		return err
	}
	if err := CheckTransferConfig(v); err != nil {
		return err
	}
	if err := CheckLogConfig(v); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	return nil
}
