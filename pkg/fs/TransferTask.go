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

// TransferTask is one file-to-file copy.  Each task is consumed by exactly one worker.
type TransferTask struct {
	Source      string
	Destination string
}

// DirectoryTask pairs a source directory with its destination and keeps the
// source metadata as it was when the tree was walked.
type DirectoryTask struct {
	Source      string
	Destination string
	Mode        os.FileMode
	ModTime     time.Time
}
