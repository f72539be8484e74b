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

func TestSize(t *testing.T) {
	ctx := context.Background()
	fileSystem := newScenario(t)

	size, err := fs.Size(ctx, fileSystem, "/src")
	require.NoError(t, err)
	assert.Equal(t, int64(15), size)

	size, err = fs.Size(ctx, fileSystem, "/src/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(10), size)

	require.NoError(t, fileSystem.MkdirAll(ctx, "/empty", 0755))
	size, err = fs.Size(ctx, fileSystem, "/empty")
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)

	_, err = fs.Size(ctx, fileSystem, "/missing")
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	ctx := context.Background()
	fileSystem := newScenario(t)
	input := &fs.WalkInput{
		SourceDirectory:       "/src",
		SourceFileSystem:      fileSystem,
		DestinationDirectory:  "/dst",
		DestinationFileSystem: fileSystem,
	}

	output, err := fs.Scan(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, []fs.TransferTask{
		{Source: "/src/a.txt", Destination: "/dst/a.txt"},
		{Source: "/src/sub/b.txt", Destination: "/dst/sub/b.txt"},
	}, output.Tasks)
	assert.Empty(t, output.Skipped)

	directories := output.Directories
	require.Len(t, directories, 2)
	assert.Equal(t, "/dst", directories[0].Destination)
	assert.Equal(t, "/src/sub", directories[1].Source)
	assert.Equal(t, "/dst/sub", directories[1].Destination)
	assert.Equal(t, os.FileMode(0750), directories[1].Mode.Perm())
	assert.True(t, directories[1].ModTime.Equal(modTime))

	// walking does not create destination directories
	_, err = fileSystem.Stat(ctx, "/dst")
	assert.True(t, fileSystem.IsNotExist(err))
}
