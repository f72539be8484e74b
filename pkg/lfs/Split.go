// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package lfs

import (
	"os"
	"path/filepath"
	"strings"
)

// Split splits the path into its elements using the path separator for the local operating system.
// An absolute path begins with the separator as its own element.  Empty and "." elements are dropped.
func Split(p string) []string {
	dirs := []string{}
	if len(p) > 0 && os.IsPathSeparator(p[0]) {
		dirs = append(dirs, string(filepath.Separator))
	}
	parts := strings.FieldsFunc(p, func(r rune) bool {
		return r < 128 && os.IsPathSeparator(uint8(r))
	})
	for _, part := range parts {
		if part == "." {
			continue
		}
		dirs = append(dirs, part)
	}
	return dirs
}
