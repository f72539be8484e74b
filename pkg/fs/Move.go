// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs

import (
	"context"
	"fmt"

	"github.com/navwar/gotransfer/pkg/progress"
)

// Move copies source to destination with its metadata and deletes each source file once it has been copied.
// Moves are single-threaded.  A failure leaves the files already moved at the destination only,
// and every remaining file at the source.
func Move(ctx context.Context, input *MoveInput) (*TransferOutput, error) {
	sourceFileSystem := input.SourceFileSystem
	destinationFileSystem := input.DestinationFileSystem

	sourceFileInfo, err := StatSource(ctx, sourceFileSystem, input.Source)
	if err != nil {
		return nil, err
	}

	destination := input.Destination
	if !sourceFileInfo.IsDir() {
		destination = ResolveDestination(ctx, destinationFileSystem, destination, sourceFileSystem.Base(input.Source))
		if SameDestination(ctx, sourceFileInfo, input.Source, destinationFileSystem, destination) {
			return nil, fmt.Errorf("%w: %q", ErrSameFile, destination)
		}
	}

	total, err := Size(ctx, sourceFileSystem, input.Source)
	if err != nil {
		return nil, err
	}

	if input.CheckFreeSpace {
		if err := CheckFreeSpace(ctx, destinationFileSystem, destination, total); err != nil {
			return nil, err
		}
	}

	state := progress.NewState(total, input.Sink)

	moveFile := func(source string, destination string) error {
		_, err := Copy(ctx, &CopyInput{
			ChunkSize:             input.ChunkSize,
			SourceName:            source,
			SourceFileSystem:      sourceFileSystem,
			DestinationName:       destination,
			DestinationFileSystem: destinationFileSystem,
			Logger:                input.Logger,
			Mirror:                true,
			Progress:              state,
			Verify:                input.Verify,
		})
		if err != nil {
			return fmt.Errorf("error copying %q to %q: %w", source, destination, err)
		}
		if err := sourceFileSystem.Remove(ctx, source); err != nil {
			return fmt.Errorf("error removing %q after copying: %w", source, err)
		}
		return nil
	}

	// if source is a file
	if !sourceFileInfo.IsDir() {
		if err := moveFile(input.Source, destination); err != nil {
			return nil, err
		}
		return NewTransferOutput(1, state), nil
	}

	// if source is a directory
	walkInput := &WalkInput{
		SourceDirectory:       input.Source,
		SourceFileSystem:      sourceFileSystem,
		DestinationDirectory:  destination,
		DestinationFileSystem: destinationFileSystem,
	}

	// record directory metadata before removing files changes it
	walkOutput, err := Scan(ctx, walkInput)
	if err != nil {
		return nil, err
	}

	// removing the source tree would delete entries that were never copied
	if len(walkOutput.Skipped) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEntry, walkOutput.Skipped)
	}

	directories, tasks := walkOutput.Directories, walkOutput.Tasks

	for _, directory := range directories {
		if err := destinationFileSystem.MkdirAll(ctx, directory.Destination, 0755); err != nil {
			return nil, fmt.Errorf("error creating destination directory %q: %w", directory.Destination, err)
		}
	}

	for i, task := range tasks {
		if err := moveFile(task.Source, task.Destination); err != nil {
			return NewTransferOutput(i, state), err
		}
	}

	err = MirrorDirectories(ctx, &MirrorInput{
		Directories:           directories,
		DestinationFileSystem: destinationFileSystem,
		Logger:                input.Logger,
	})
	if err != nil {
		return NewTransferOutput(len(tasks), state), fmt.Errorf("error mirroring directories from %q to %q: %w", input.Source, destination, err)
	}

	if err := sourceFileSystem.RemoveAll(ctx, input.Source); err != nil {
		return NewTransferOutput(len(tasks), state), fmt.Errorf("error removing source directory %q: %w", input.Source, err)
	}

	return NewTransferOutput(len(tasks), state), nil
}
