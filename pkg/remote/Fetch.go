// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/navwar/gotransfer/pkg/fs"
	"github.com/navwar/gotransfer/pkg/progress"
	"github.com/navwar/gotransfer/pkg/s3fs"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMissingS3Client  = errors.New("missing s3 client")
)

// Fetch downloads a single remote object to the destination.
// The declared content length is used as the progress total; if it is unknown, then the total is zero.
func Fetch(ctx context.Context, input *FetchInput) (*fs.TransferOutput, error) {
	destinationFileSystem := input.DestinationFileSystem

	name, err := Basename(input.Source)
	if err != nil {
		return nil, err
	}

	destination := fs.ResolveDestination(ctx, destinationFileSystem, input.Destination, name)

	body, total, err := open(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.CheckFreeSpace {
		if err := fs.CheckFreeSpace(ctx, destinationFileSystem, destination, total); err != nil {
			_ = body.Close() // silently close body
			return nil, err
		}
	}

	if input.Logger != nil {
		_ = input.Logger.Log("Downloading", map[string]interface{}{
			"src":   input.Source,
			"dst":   destination,
			"total": total,
		})
	}

	// create missing parent directories
	parent := destinationFileSystem.Dir(destination)
	if err := destinationFileSystem.MkdirAll(ctx, parent, 0755); err != nil {
		_ = body.Close() // silently close body
		return nil, fmt.Errorf("error creating parent directories for %q: %w", destination, err)
	}

	destinationFile, err := destinationFileSystem.OpenFile(ctx, destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		_ = body.Close() // silently close body
		return nil, fmt.Errorf("error creating destination file at %q: %w", destination, err)
	}

	chunkSize := input.ChunkSize
	if chunkSize <= 0 {
		chunkSize = fs.DefaultChunkSize
	}

	state := progress.NewState(total, input.Sink)

	_, err = ReadChunks(ctx, destinationFile, body, make([]byte, chunkSize), state)
	if err != nil {
		_ = body.Close()            // silently close body
		_ = destinationFile.Close() // silently close destination file
		return nil, fmt.Errorf("error downloading %q to %q: %w", input.Source, destination, err)
	}

	err = body.Close()
	if err != nil {
		_ = destinationFile.Close() // silently close destination file
		return nil, fmt.Errorf("error closing response body after downloading: %w", err)
	}

	err = destinationFile.Close()
	if err != nil {
		return nil, fmt.Errorf("error closing destination file after downloading: %w", err)
	}

	return fs.NewTransferOutput(1, state), nil
}

// ReadChunks writes each chunk as delivered by r to w, adding it to state.
// Unlike fs.CopyChunks, it does not wait for the buffer to fill.
func ReadChunks(ctx context.Context, w io.Writer, r io.Reader, buf []byte, state *progress.State) (int64, error) {
	written := int64(0)
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, readErr := r.Read(buf)
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
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

func open(ctx context.Context, input *FetchInput) (io.ReadCloser, int64, error) {
	if strings.HasPrefix(strings.ToLower(input.Source), s3fs.Scheme) {
		if input.S3Client == nil {
			return nil, 0, fmt.Errorf("%w: cannot fetch %q", ErrMissingS3Client, input.Source)
		}
		bucket, key, err := s3fs.Parse(input.Source)
		if err != nil {
			return nil, 0, err
		}
		body, total, err := s3fs.Open(ctx, input.S3Client, bucket, key)
		if err != nil {
			if s3fs.IsNotExist(err) {
				return nil, 0, fmt.Errorf("%w: %q", fs.ErrSourceNotExist, input.Source)
			}
			return nil, 0, err
		}
		return body, total, nil
	}

	httpClient := input.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, input.Source, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("error creating request for %q: %w", input.Source, err)
	}
	if len(input.UserAgent) > 0 {
		req.Header.Set("User-Agent", input.UserAgent)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("error requesting %q: %w", input.Source, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, 0, fmt.Errorf("%w: %q", fs.ErrSourceNotExist, input.Source)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, 0, fmt.Errorf("%w %q from %q", ErrUnexpectedStatus, resp.Status, input.Source)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	return resp.Body, total, nil
}
