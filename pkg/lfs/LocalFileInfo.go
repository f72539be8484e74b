// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lfs

import (
	"fmt"
	"os"
	"time"
)

type LocalFileInfo struct {
	name    string
	mode    os.FileMode
	modTime time.Time
	size    int64
	source  os.FileInfo
}

func (lfi *LocalFileInfo) IsDir() bool {
	return lfi.mode.IsDir()
}

func (lfi *LocalFileInfo) Mode() os.FileMode {
	return lfi.mode
}

func (lfi *LocalFileInfo) ModTime() time.Time {
	return lfi.modTime
}

func (lfi *LocalFileInfo) Name() string {
	return lfi.name
}

// OSFileInfo returns the file information this was built from.
func (lfi *LocalFileInfo) OSFileInfo() os.FileInfo {
	return lfi.source
}

func (lfi *LocalFileInfo) Size() int64 {
	return lfi.size
}

func (lfi *LocalFileInfo) String() string {
	return fmt.Sprintf("LocalFileInfo(name=%q, mode=%s, modTime=%s, size=%d)", lfi.name, lfi.mode, lfi.modTime.Format(time.RFC3339), lfi.size)
}

func NewLocalFileInfo(fi os.FileInfo) *LocalFileInfo {
	return &LocalFileInfo{
		name:    fi.Name(),
		mode:    fi.Mode(),
		modTime: fi.ModTime(),
		size:    fi.Size(),
		source:  fi,
	}
}
