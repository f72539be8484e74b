// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"os"
	"time"
)

type FileInfo interface {
	IsDir() bool
	Name() string
	Mode() os.FileMode
	ModTime() time.Time
	Size() int64
	String() string
}

// SameFile reports whether a and b describe the same file.
// Only file information that exposes an OSFileInfo method can be compared.
func SameFile(a FileInfo, b FileInfo) bool {
	type osFileInfo interface {
		OSFileInfo() os.FileInfo
	}
	x, ok := a.(osFileInfo)
	if !ok {
		return false
	}
	y, ok := b.(osFileInfo)
	if !ok {
		return false
	}
	return os.SameFile(x.OSFileInfo(), y.OSFileInfo())
}
