// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"github.com/navwar/gotransfer/pkg/progress"
)

type DistributeInput struct {
	ChunkSize             int
	Tasks                 []TransferTask
	SourceFileSystem      FileSystem
	DestinationFileSystem FileSystem
	Logger                Logger
	MaxThreads            int
	Mirror                bool
	Progress              *progress.State
	Verify                bool
}
