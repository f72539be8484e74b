// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package lfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/spf13/afero"

	"github.com/navwar/gotransfer/pkg/fs"
)

type LocalFileSystem struct {
	fs   afero.Fs
	root string
	osFs bool // backed by the operating system
}

func (lfs *LocalFileSystem) Base(name string) string {
	return filepath.Base(name)
}

func (lfs *LocalFileSystem) Chmod(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.Chmod(name, mode)
}

func (lfs *LocalFileSystem) Chtimes(ctx context.Context, name string, atime time.Time, mtime time.Time) error {
	return lfs.fs.Chtimes(name, atime, mtime)
}

func (lfs *LocalFileSystem) Dir(name string) string {
	return filepath.Dir(name)
}

// FreeSpace returns the bytes available to unprivileged users on the volume that would hold name.
// Returns fs.ErrFreeSpaceUnknown if the file system is not backed by the operating system.
func (lfs *LocalFileSystem) FreeSpace(ctx context.Context, name string) (uint64, error) {
	if !lfs.osFs {
		return 0, fs.ErrFreeSpaceUnknown
	}
	p := name
	if len(lfs.root) > 0 {
		p = filepath.Join(lfs.root, name)
	}
	// find the nearest ancestor that exists
	for {
		if _, err := os.Stat(p); err == nil {
			break
		}
		parent := filepath.Dir(p)
		if parent == p {
			return 0, fmt.Errorf("%w: no existing ancestor of %q", fs.ErrFreeSpaceUnknown, name)
		}
		p = parent
	}
	usage, err := disk.UsageWithContext(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("error retrieving disk usage for %q: %w", p, err)
	}
	return usage.Free, nil
}

func (lfs *LocalFileSystem) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (lfs *LocalFileSystem) Join(name ...string) string {
	return filepath.Join(name...)
}

func (lfs *LocalFileSystem) MkdirAll(ctx context.Context, name string, mode os.FileMode) error {
	return lfs.fs.MkdirAll(name, mode)
}

func (lfs *LocalFileSystem) Open(ctx context.Context, name string) (fs.File, error) {
	f, err := lfs.fs.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (lfs *LocalFileSystem) OpenFile(ctx context.Context, name string, flag int, perm os.FileMode) (fs.File, error) {
	f, err := lfs.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (lfs *LocalFileSystem) Relative(ctx context.Context, basepath string, targpath string) (string, error) {
	return filepath.Rel(basepath, targpath)
}

func (lfs *LocalFileSystem) Remove(ctx context.Context, name string) error {
	return lfs.fs.Remove(name)
}

func (lfs *LocalFileSystem) RemoveAll(ctx context.Context, name string) error {
	return lfs.fs.RemoveAll(name)
}

func (lfs *LocalFileSystem) Stat(ctx context.Context, name string) (fs.FileInfo, error) {
	fi, err := lfs.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	return NewLocalFileInfo(fi), nil
}

// Walk walks the file tree rooted at root in lexical order, calling fn for each file or directory.
// If root is a symbolic link to a directory, then the directory is walked and every path passed to fn
// is still below root.  Symbolic links below root are not followed.
func (lfs *LocalFileSystem) Walk(ctx context.Context, root string, fn filepath.WalkFunc) error {
	resolved, err := lfs.resolve(root)
	if err != nil || resolved == root {
		return afero.Walk(lfs.fs, root, fn)
	}
	return afero.Walk(lfs.fs, resolved, func(p string, info os.FileInfo, err error) error {
		relative, relErr := filepath.Rel(resolved, p)
		if relErr != nil {
			return fmt.Errorf("error creating relative path for %q: %w", p, relErr)
		}
		return fn(filepath.Join(root, relative), info, err)
	})
}

// resolve evaluates the symbolic links in name and returns the result as a name within the file system.
func (lfs *LocalFileSystem) resolve(name string) (string, error) {
	if !lfs.osFs {
		return name, nil
	}
	if len(lfs.root) == 0 {
		return filepath.EvalSymlinks(name)
	}
	base, err := filepath.EvalSymlinks(lfs.root)
	if err != nil {
		return "", err
	}
	target, err := filepath.EvalSymlinks(filepath.Join(lfs.root, name))
	if err != nil {
		return "", err
	}
	relative, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	if relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q resolves outside of %q", name, lfs.root)
	}
	return filepath.Join(string(filepath.Separator), relative), nil
}

// NewLocalFileSystem returns a file system rooted at rootPath.
// If rootPath is empty, then names are passed to the operating system unchanged.
func NewLocalFileSystem(rootPath string) *LocalFileSystem {
	if len(rootPath) == 0 {
		return &LocalFileSystem{fs: afero.NewOsFs(), osFs: true}
	}
	return &LocalFileSystem{
		fs:   afero.NewBasePathFs(afero.NewOsFs(), rootPath),
		root: rootPath,
		osFs: true,
	}
}

// NewReadOnlyLocalFileSystem returns a file system rooted at rootPath that rejects every write.
func NewReadOnlyLocalFileSystem(rootPath string) *LocalFileSystem {
	if len(rootPath) == 0 {
		return &LocalFileSystem{fs: afero.NewReadOnlyFs(afero.NewOsFs()), osFs: true}
	}
	return &LocalFileSystem{
		fs:   afero.NewBasePathFs(afero.NewReadOnlyFs(afero.NewOsFs()), rootPath),
		root: rootPath,
		osFs: true,
	}
}

// NewLocalFileSystemFromFs wraps an existing afero file system, such as a memory-backed one.
func NewLocalFileSystemFromFs(f afero.Fs) *LocalFileSystem {
	return &LocalFileSystem{fs: f}
}
