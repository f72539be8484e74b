// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"errors"
)

var (
	ErrSourceNotExist    = errors.New("source does not exist")
	ErrInsufficientSpace = errors.New("insufficient space at destination")
	ErrChecksumMismatch  = errors.New("checksum mismatch")
	ErrFreeSpaceUnknown  = errors.New("free space is unknown")
	ErrSameFile          = errors.New("source and destination are the same file")
	ErrUnsupportedEntry  = errors.New("source contains entries that are not directories or regular files")
)
