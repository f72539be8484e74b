// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"github.com/navwar/gotransfer/pkg/progress"
)

type CopyInput struct {
	ChunkSize             int
	SourceName            string
	SourceFileSystem      FileSystem
	DestinationName       string
	DestinationFileSystem FileSystem
	Logger                Logger
	Mirror                bool
	Progress              *progress.State
	Verify                bool
}
