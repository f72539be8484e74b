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

type MoveInput struct {
	CheckFreeSpace        bool
	ChunkSize             int
	Source                string // could be file or directory
	SourceFileSystem      FileSystem
	Destination           string // could be file or directory
	DestinationFileSystem FileSystem
	Logger                Logger
	Sink                  progress.Sink
	Verify                bool
}
