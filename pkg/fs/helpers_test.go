// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/navwar/gotransfer/pkg/fs"
	"github.com/navwar/gotransfer/pkg/lfs"
)

var (
	modTime = time.Date(2021, time.March, 4, 5, 6, 7, 0, time.UTC)
)

func newMemoryFileSystem() *lfs.LocalFileSystem {
	return lfs.NewLocalFileSystemFromFs(afero.NewMemMapFs())
}

func writeFile(t *testing.T, fileSystem fs.FileSystem, name string, data string, mode os.FileMode) {
	ctx := context.Background()
	require.NoError(t, fileSystem.MkdirAll(ctx, fileSystem.Dir(name), 0755))
	f, err := fileSystem.OpenFile(ctx, name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	require.NoError(t, err)
	_, err = f.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, fileSystem.Chmod(ctx, name, mode))
	require.NoError(t, fileSystem.Chtimes(ctx, name, modTime, modTime))
}

func readFile(t *testing.T, fileSystem fs.FileSystem, name string) string {
	f, err := fileSystem.Open(context.Background(), name)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(data)
}

// newScenario creates a.txt (5 bytes) and sub/b.txt (10 bytes) below /src.
func newScenario(t *testing.T) *lfs.LocalFileSystem {
	fileSystem := newMemoryFileSystem()
	writeFile(t, fileSystem, "/src/a.txt", "hello", 0640)
	writeFile(t, fileSystem, "/src/sub/b.txt", "0123456789", 0600)
	ctx := context.Background()
	require.NoError(t, fileSystem.Chmod(ctx, "/src/sub", 0750))
	require.NoError(t, fileSystem.Chtimes(ctx, "/src/sub", modTime, modTime))
	require.NoError(t, fileSystem.Chtimes(ctx, "/src", modTime, modTime))
	return fileSystem
}

// limitedFileSystem reports a fixed amount of free space.
type limitedFileSystem struct {
	*lfs.LocalFileSystem
	free uint64
}

func (l *limitedFileSystem) FreeSpace(ctx context.Context, name string) (uint64, error) {
	return l.free, nil
}

// failingFileSystem fails to open one source file.
type failingFileSystem struct {
	*lfs.LocalFileSystem
	name string
}

func (f *failingFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	if name == f.name {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.LocalFileSystem.Open(ctx, name)
}

// writeOSFile creates a file on the operating system, including missing parent directories.
func writeOSFile(t *testing.T, name string, data string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, []byte(data), 0644))
}

func readOSFile(t *testing.T, name string) string {
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}
