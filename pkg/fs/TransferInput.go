// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"time"

	"github.com/navwar/gotransfer/pkg/progress"
)

type TransferInput struct {
	CheckFreeSpace        bool
	ChunkSize             int
	Source                string // could be file or directory
	SourceFileSystem      FileSystem
	Destination           string // could be file or directory
	DestinationFileSystem FileSystem
	Logger                Logger
	MaxThreads            int
	Mirror                bool
	Sink                  progress.Sink
	Verify                bool
}

type TransferOutput struct {
	Files   int
	Bytes   int64
	Total   int64
	Elapsed time.Duration
	Speed   float64
}

func (o *TransferOutput) Fields() map[string]interface{} {
	return map[string]interface{}{
		"files":   o.Files,
		"bytes":   o.Bytes,
		"total":   o.Total,
		"elapsed": o.Elapsed.String(),
		"speed":   progress.FormatSpeed(o.Speed),
	}
}

func NewTransferOutput(files int, state *progress.State) *TransferOutput {
	snapshot := state.Snapshot()
	return &TransferOutput{
		Files:   files,
		Bytes:   snapshot.Completed,
		Total:   snapshot.Total,
		Elapsed: snapshot.Elapsed,
		Speed:   snapshot.Speed,
	}
}
