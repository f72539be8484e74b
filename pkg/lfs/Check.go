// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	ErrSameSourceDestination = errors.New("source and destination must be different")
	ErrCycle                 = errors.New("cycle error")
)

// Check returns an error if copying the directory tree at source into destination would
// read its own output or overwrite its own input.
func Check(source string, destination string) error {
	source = filepath.Clean(source)
	destination = filepath.Clean(destination)
	if source == destination {
		return fmt.Errorf("%w: %q", ErrSameSourceDestination, source)
	}
	sourceDirectories := Split(source)
	destinationDirectories := Split(destination)
	i := 0
	for ; i < len(sourceDirectories) && i < len(destinationDirectories); i++ {
		if sourceDirectories[i] != destinationDirectories[i] {
			return nil
		}
	}
	if len(sourceDirectories) > i {
		return fmt.Errorf("%w: destination %q is a parent of source %q", ErrCycle, destination, source)
	}
	return fmt.Errorf("%w: source %q is a parent of destination %q", ErrCycle, source, destination)
}
