// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

type WalkInput struct {
	SourceDirectory       string
	SourceFileSystem      FileSystem
	DestinationDirectory  string
	DestinationFileSystem FileSystem
}
