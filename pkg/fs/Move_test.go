// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navwar/gotransfer/pkg/fs"
)

func TestMoveDirectory(t *testing.T) {
	ctx := context.Background()
	fileSystem := newScenario(t)

	output, err := fs.Move(ctx, &fs.MoveInput{
		Source:                "/src",
		SourceFileSystem:      fileSystem,
		Destination:           "/dst",
		DestinationFileSystem: fileSystem,
		Verify:                true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Files)
	assert.Equal(t, int64(15), output.Bytes)

	_, err = fileSystem.Stat(ctx, "/src")
	assert.True(t, fileSystem.IsNotExist(err))

	assert.Equal(t, "hello", readFile(t, fileSystem, "/dst/a.txt"))
	assert.Equal(t, "0123456789", readFile(t, fileSystem, "/dst/sub/b.txt"))

	fi, err := fileSystem.Stat(ctx, "/dst/a.txt")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), fi.Mode().Perm())
	assert.True(t, fi.ModTime().Equal(modTime))

	fi, err = fileSystem.Stat(ctx, "/dst/sub")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0750), fi.Mode().Perm())
	assert.True(t, fi.ModTime().Equal(modTime))
}

func TestMoveEmptySubdirectory(t *testing.T) {
	ctx := context.Background()
	fileSystem := newScenario(t)
	require.NoError(t, fileSystem.MkdirAll(ctx, "/src/empty", 0700))

	_, err := fs.Move(ctx, &fs.MoveInput{
		Source:                "/src",
		SourceFileSystem:      fileSystem,
		Destination:           "/dst",
		DestinationFileSystem: fileSystem,
	})
	require.NoError(t, err)

	fi, err := fileSystem.Stat(ctx, "/dst/empty")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestMoveFile(t *testing.T) {
	ctx := context.Background()
	fileSystem := newScenario(t)
	require.NoError(t, fileSystem.MkdirAll(ctx, "/dst", 0755))

	output, err := fs.Move(ctx, &fs.MoveInput{
		Source:                "/src/a.txt",
		SourceFileSystem:      fileSystem,
		Destination:           "/dst",
		DestinationFileSystem: fileSystem,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Files)
	assert.Equal(t, "hello", readFile(t, fileSystem, "/dst/a.txt"))

	_, err = fileSystem.Stat(ctx, "/src/a.txt")
	assert.True(t, fileSystem.IsNotExist(err))

	// siblings are untouched
	assert.Equal(t, "0123456789", readFile(t, fileSystem, "/src/sub/b.txt"))
}

func TestMoveMissingSource(t *testing.T) {
	ctx := context.Background()
	fileSystem := newMemoryFileSystem()

	_, err := fs.Move(ctx, &fs.MoveInput{
		Source:                "/missing",
		SourceFileSystem:      fileSystem,
		Destination:           "/dst",
		DestinationFileSystem: fileSystem,
	})
	assert.ErrorIs(t, err, fs.ErrSourceNotExist)
}

func TestMoveFailure(t *testing.T) {
	ctx := context.Background()
	fileSystem := &failingFileSystem{LocalFileSystem: newMemoryFileSystem(), name: "/src/b.txt"}
	writeFile(t, fileSystem, "/src/a.txt", "aaa", 0644)
	writeFile(t, fileSystem, "/src/b.txt", "bbb", 0644)
	writeFile(t, fileSystem, "/src/c.txt", "ccc", 0644)

	output, err := fs.Move(ctx, &fs.MoveInput{
		Source:                "/src",
		SourceFileSystem:      fileSystem,
		Destination:           "/dst",
		DestinationFileSystem: fileSystem,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	require.NotNil(t, output)
	assert.Equal(t, 1, output.Files)

	// moved files exist at the destination only
	assert.Equal(t, "aaa", readFile(t, fileSystem, "/dst/a.txt"))
	_, err = fileSystem.Stat(ctx, "/src/a.txt")
	assert.True(t, fileSystem.IsNotExist(err))

	// the failing file and every later file remain at the source
	assert.Equal(t, "bbb", readFile(t, fileSystem, "/src/b.txt"))
	assert.Equal(t, "ccc", readFile(t, fileSystem, "/src/c.txt"))
	_, err = fileSystem.Stat(ctx, "/dst/c.txt")
	assert.True(t, fileSystem.IsNotExist(err))
}
