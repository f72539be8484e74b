// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
	"fmt"
	"os"
	"time"
)

// CopyMetadata copies the permission bits and modification time of the source onto the destination.
func CopyMetadata(ctx context.Context, sourceFileSystem FileSystem, sourceName string, destinationFileSystem FileSystem, destinationName string) error {
	sourceFileInfo, err := sourceFileSystem.Stat(ctx, sourceName)
	if err != nil {
		return fmt.Errorf("error stating source %q: %w", sourceName, err)
	}
	return applyMetadata(ctx, destinationFileSystem, destinationName, sourceFileInfo.Mode(), sourceFileInfo.ModTime())
}

// MirrorDirectories applies the recorded metadata of each source directory to its destination,
// in the order given.  Destination directories that do not exist are skipped.
func MirrorDirectories(ctx context.Context, input *MirrorInput) error {
	destinationFileSystem := input.DestinationFileSystem
	for _, directory := range input.Directories {
		if _, err := destinationFileSystem.Stat(ctx, directory.Destination); err != nil {
			if destinationFileSystem.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("error stating destination directory %q: %w", directory.Destination, err)
		}
		if input.Logger != nil {
			_ = input.Logger.Log("Mirroring directory", map[string]interface{}{
				"src":  directory.Source,
				"dst":  directory.Destination,
				"mode": directory.Mode.Perm().String(),
			})
		}
		err := applyMetadata(ctx, destinationFileSystem, directory.Destination, directory.Mode, directory.ModTime)
		if err != nil {
			return err
		}
	}
	return nil
}

func applyMetadata(ctx context.Context, fileSystem FileSystem, name string, mode os.FileMode, modTime time.Time) error {
	if err := fileSystem.Chmod(ctx, name, mode.Perm()); err != nil {
		return fmt.Errorf("error changing permissions for %q: %w", name, err)
	}
	// Preserve Modification time
	if err := fileSystem.Chtimes(ctx, name, time.Now(), modTime); err != nil {
		return fmt.Errorf("error changing timestamps for %q: %w", name, err)
	}
	return nil
}

// EqualTimestamp reports whether a and b are equal once truncated to precision d.
func EqualTimestamp(a time.Time, b time.Time, d time.Duration) bool {
	return a.Truncate(d).Equal(b.Truncate(d))
}
