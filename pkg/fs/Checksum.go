// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Checksum returns the xxHash64 digest of the file contents.
func Checksum(ctx context.Context, fileSystem FileSystem, name string) (uint64, error) {
	f, err := fileSystem.Open(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("error opening %q: %w", name, err)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, fmt.Errorf("error reading %q: %w", name, err)
	}
	return h.Sum64(), nil
}

func VerifyChecksum(ctx context.Context, sourceFileSystem FileSystem, sourceName string, destinationFileSystem FileSystem, destinationName string) error {
	sourceChecksum, err := Checksum(ctx, sourceFileSystem, sourceName)
	if err != nil {
		return fmt.Errorf("error calculating checksum of source: %w", err)
	}
	destinationChecksum, err := Checksum(ctx, destinationFileSystem, destinationName)
	if err != nil {
		return fmt.Errorf("error calculating checksum of destination: %w", err)
	}
	if sourceChecksum != destinationChecksum {
		return fmt.Errorf("%w: %q (%x) and %q (%x)", ErrChecksumMismatch, sourceName, sourceChecksum, destinationName, destinationChecksum)
	}
	return nil
}
