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
	"os"
)

// Size returns the size of the file at name, or the sum of the sizes of
// every regular file below name if it is a directory.
// Symbolic links to regular files count as their target.  Special files are not counted.
func Size(ctx context.Context, fileSystem FileSystem, name string) (int64, error) {
	fileInfo, err := fileSystem.Stat(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("error stating %q: %w", name, err)
	}
	if !fileInfo.IsDir() {
		return fileInfo.Size(), nil
	}
	total := int64(0)
	err = fileSystem.Walk(ctx, name, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if size, ok := regularSize(ctx, fileSystem, p, info); ok {
			total += size
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("error calculating size of %q: %w", name, err)
	}
	return total, nil
}
