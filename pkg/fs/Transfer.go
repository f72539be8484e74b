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

	"github.com/navwar/gotransfer/pkg/progress"
)

// Transfer copies a file or a directory tree from source to destination.
// Directory trees are copied by MaxThreads workers; single files are always copied by the caller's goroutine.
func Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
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

	if input.Logger != nil {
		_ = input.Logger.Log("Transferring", map[string]interface{}{
			"src":     input.Source,
			"dst":     destination,
			"total":   total,
			"threads": input.MaxThreads,
		})
	}

	state := progress.NewState(total, input.Sink)

	// if source is a file
	if !sourceFileInfo.IsDir() {
		_, err := Copy(ctx, &CopyInput{
			ChunkSize:             input.ChunkSize,
			SourceName:            input.Source,
			SourceFileSystem:      sourceFileSystem,
			DestinationName:       destination,
			DestinationFileSystem: destinationFileSystem,
			Logger:                input.Logger,
			Mirror:                input.Mirror,
			Progress:              state,
			Verify:                input.Verify,
		})
		if err != nil {
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

	walkOutput, err := Scan(ctx, walkInput)
	if err != nil {
		return nil, err
	}

	if input.Logger != nil {
		for _, skipped := range walkOutput.Skipped {
			_ = input.Logger.Log("Skipping entry that is not a regular file", map[string]interface{}{
				"src": skipped,
			})
		}
	}

	count, err := Distribute(ctx, &DistributeInput{
		ChunkSize:             input.ChunkSize,
		Tasks:                 walkOutput.Tasks,
		SourceFileSystem:      sourceFileSystem,
		DestinationFileSystem: destinationFileSystem,
		Logger:                input.Logger,
		MaxThreads:            input.MaxThreads,
		Mirror:                input.Mirror,
		Progress:              state,
		Verify:                input.Verify,
	})
	if err != nil {
		return nil, fmt.Errorf("error copying directory %q to %q: %w", input.Source, destination, err)
	}

	// apply directory metadata once all workers have exited
	if input.Mirror {
		err := MirrorDirectories(ctx, &MirrorInput{
			Directories:           walkOutput.Directories,
			DestinationFileSystem: destinationFileSystem,
			Logger:                input.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("error mirroring directories from %q to %q: %w", input.Source, destination, err)
		}
	}

	return NewTransferOutput(count, state), nil
}

// StatSource stats the source of a transfer, wrapping ErrSourceNotExist if it is missing.
func StatSource(ctx context.Context, fileSystem FileSystem, name string) (FileInfo, error) {
	fileInfo, err := fileSystem.Stat(ctx, name)
	if err != nil {
		if fileSystem.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotExist, name)
		}
		return nil, fmt.Errorf("error stating source %q: %w", name, err)
	}
	return fileInfo, nil
}

// SameDestination reports whether writing to destination would overwrite the source.
// Names are compared first.  If both files exist on file systems backed by the operating system,
// then hard links and paths through symbolic links are detected as well.
func SameDestination(ctx context.Context, sourceFileInfo FileInfo, source string, destinationFileSystem FileSystem, destination string) bool {
	if source == destination {
		return true
	}
	destinationFileInfo, err := destinationFileSystem.Stat(ctx, destination)
	if err != nil {
		return false
	}
	return SameFile(sourceFileInfo, destinationFileInfo)
}

// ResolveDestination returns destination joined with base if destination is an existing directory.
// Otherwise, returns destination unchanged.
func ResolveDestination(ctx context.Context, fileSystem FileSystem, destination string, base string) string {
	if fileInfo, err := fileSystem.Stat(ctx, destination); err == nil && fileInfo.IsDir() {
		return fileSystem.Join(destination, base)
	}
	return destination
}

// CheckFreeSpace returns an error if the volume holding name has less than size bytes available.
// If the free space cannot be determined, then no error is returned.
func CheckFreeSpace(ctx context.Context, fileSystem FileSystem, name string, size int64) error {
	if size <= 0 {
		return nil
	}
	free, err := fileSystem.FreeSpace(ctx, name)
	if err != nil {
		return nil
	}
	if uint64(size) > free {
		return fmt.Errorf("%w: %q requires %d bytes, but only %d bytes are available", ErrInsufficientSpace, name, size, free)
	}
	return nil
}
