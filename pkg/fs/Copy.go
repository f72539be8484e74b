// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/navwar/gotransfer/pkg/progress"
)

const (
	DefaultChunkSize = 1024 * 1024 // 1 MiB
)

// Copy copies a single regular file in fixed-size chunks, adding every chunk to the shared progress state.
// Returns the number of bytes written.
func Copy(ctx context.Context, input *CopyInput) (int64, error) {
	if input.Logger != nil {
		_ = input.Logger.Log("Copying file", map[string]interface{}{
			"src": input.SourceName,
			"dst": input.DestinationName,
		})
	}

	sourceFileSystem := input.SourceFileSystem
	destinationFileSystem := input.DestinationFileSystem

	chunkSize := input.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	// create missing parent directories
	parent := destinationFileSystem.Dir(input.DestinationName)
	if _, err := destinationFileSystem.Stat(ctx, parent); err != nil {
		if !destinationFileSystem.IsNotExist(err) {
			return 0, fmt.Errorf("error stating destination parent %q: %w", parent, err)
		}
		if err := destinationFileSystem.MkdirAll(ctx, parent, 0755); err != nil {
			return 0, fmt.Errorf("error creating parent directories for %q: %w", input.DestinationName, err)
		}
	}

	// open source file
	sourceFile, err := sourceFileSystem.Open(ctx, input.SourceName)
	if err != nil {
		return 0, fmt.Errorf("error opening source file at %q: %w", input.SourceName, err)
	}

	// open destination file
	destinationFile, err := destinationFileSystem.OpenFile(ctx, input.DestinationName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		_ = sourceFile.Close() // silently close source file
		return 0, fmt.Errorf("error creating destination file at %q: %w", input.DestinationName, err)
	}

	// copy chunks from source to destination
	written, err := CopyChunks(ctx, destinationFile, sourceFile, make([]byte, chunkSize), input.Progress)
	if err != nil {
		_ = sourceFile.Close()      // silently close source file
		_ = destinationFile.Close() // silently close destination file
		return written, fmt.Errorf("error copying from %q to %q: %w", input.SourceName, input.DestinationName, err)
	}

	err = sourceFile.Close()
	if err != nil {
		_ = destinationFile.Close() // silently close destination file
		return written, fmt.Errorf("error closing source file after copying: %w", err)
	}

	err = destinationFile.Close()
	if err != nil {
		return written, fmt.Errorf("error closing destination file after copying: %w", err)
	}

	if input.Verify {
		err := VerifyChecksum(ctx, sourceFileSystem, input.SourceName, destinationFileSystem, input.DestinationName)
		if err != nil {
			return written, err
		}
	}

	if input.Mirror {
		err := CopyMetadata(ctx, sourceFileSystem, input.SourceName, destinationFileSystem, input.DestinationName)
		if err != nil {
			return written, err
		}
	}

	if input.Logger != nil {
		_ = input.Logger.Log("Done copying file", map[string]interface{}{
			"src":     input.SourceName,
			"dst":     input.DestinationName,
			"written": written,
		})
	}

	return written, nil
}

// CopyChunks fills buf from r until EOF and writes each chunk to w in full before reading the next one.
// Each chunk is added to state after it is written.  The context is checked between chunks.
func CopyChunks(ctx context.Context, w io.Writer, r io.Reader, buf []byte, state *progress.State) (int64, error) {
	written := int64(0)
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, readErr := io.ReadFull(r, buf)
		if n > 0 {
			m, writeErr := w.Write(buf[:n])
			if writeErr == nil && m != n {
				writeErr = io.ErrShortWrite
			}
			if writeErr != nil {
				return written, writeErr
			}
			written += int64(n)
			state.Add(int64(n))
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
