package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the read-only view of the disk the loader searches for settings.
// Paths are absolute.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// RootedFS serves absolute paths from an fs.FS mounted at Root.
type RootedFS struct {
	FS   fs.FS
	Root string
}

// NewOSFS returns the real filesystem.
func NewOSFS() FileSystem {
	return osFS{}
}

// NewMapFSAdapter mounts fsys at root, typically an fstest.MapFS in tests.
func NewMapFSAdapter(root string, fsys fs.FS) *RootedFS {
	return &RootedFS{FS: fsys, Root: filepath.Clean(root)}
}

// Stat implements FileSystem.
func (r *RootedFS) Stat(path string) (fs.FileInfo, error) {
	name, ok := r.name(path)
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return fs.Stat(r.FS, name)
}

// ReadFile implements FileSystem.
func (r *RootedFS) ReadFile(path string) ([]byte, error) {
	name, ok := r.name(path)
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return fs.ReadFile(r.FS, name)
}

// name maps path to an fs.FS name. ok is false for paths outside Root.
func (r *RootedFS) name(path string) (string, bool) {
	rel, err := filepath.Rel(r.Root, filepath.Clean(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

type osFS struct{}

func (osFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- path is built from the working directory or XDG config home
	return os.ReadFile(path)
}
