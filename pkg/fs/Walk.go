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
	"os"
)

// WalkOutput is the result of scanning a source directory.
type WalkOutput struct {
	Tasks       []TransferTask
	Directories []DirectoryTask
	// Skipped lists the source entries that are neither directories nor regular files,
	// including symbolic links to directories and dangling symbolic links.
	Skipped []string
}

// Scan walks the source directory once, in lexical order, and returns a task for every regular file,
// every directory including the source directory itself, and every entry that cannot be copied.
// A symbolic link to a regular file is copied as the content of its target.
// Destination directories are not created.
func Scan(ctx context.Context, input *WalkInput) (*WalkOutput, error) {
	sourceFileSystem := input.SourceFileSystem
	destinationFileSystem := input.DestinationFileSystem
	output := &WalkOutput{
		Tasks:       []TransferTask{},
		Directories: []DirectoryTask{},
		Skipped:     []string{},
	}
	err := sourceFileSystem.Walk(ctx, input.SourceDirectory, func(source string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		relative, err := sourceFileSystem.Relative(ctx, input.SourceDirectory, source)
		if err != nil {
			return fmt.Errorf("error creating relative path for %q: %w", source, err)
		}
		destination := destinationFileSystem.Join(input.DestinationDirectory, relative)
		if info.IsDir() {
			output.Directories = append(output.Directories, DirectoryTask{
				Source:      source,
				Destination: destination,
				Mode:        info.Mode(),
				ModTime:     info.ModTime(),
			})
			return nil
		}
		if _, ok := regularSize(ctx, sourceFileSystem, source, info); ok {
			output.Tasks = append(output.Tasks, TransferTask{
				Source:      source,
				Destination: destination,
			})
			return nil
		}
		output.Skipped = append(output.Skipped, source)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking source directory %q: %w", input.SourceDirectory, err)
	}
	return output, nil
}

// regularSize returns the size of the regular file described by info.
// If info describes a symbolic link, then the link is followed once.
func regularSize(ctx context.Context, fileSystem FileSystem, name string, info os.FileInfo) (int64, bool) {
	if info.Mode().IsRegular() {
		return info.Size(), true
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return 0, false
	}
	target, err := fileSystem.Stat(ctx, name)
	if err != nil || !target.Mode().IsRegular() {
		return 0, false
	}
	return target.Size(), true
}
