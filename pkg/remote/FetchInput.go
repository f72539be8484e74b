// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package remote

import (
	"net/http"

	"github.com/navwar/gotransfer/pkg/fs"
	"github.com/navwar/gotransfer/pkg/progress"
	"github.com/navwar/gotransfer/pkg/s3fs"
)

type FetchInput struct {
	CheckFreeSpace        bool
	ChunkSize             int
	Source                string // http, https, or s3 url
	Destination           string // could be file or directory
	DestinationFileSystem fs.FileSystem
	HTTPClient            *http.Client
	S3Client              s3fs.GetObjectAPI
	Logger                fs.Logger
	Sink                  progress.Sink
	UserAgent             string
}
