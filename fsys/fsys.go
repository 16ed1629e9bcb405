// Package fsys holds the thin filesystem accessors the scanner is built on.
package fsys

import (
	"io/fs"
	"os"
)

// FileSystem is the set of filesystem operations a scan needs.
// Every call may block; callers fan them out and join the results.
type FileSystem interface {
	// ReadDir lists the names of the direct entries of dir, sorted by name.
	ReadDir(dir string) ([]string, error)
	// Stat follows symlinks.
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	Remove(path string) error
}

type osFileSystem struct{}

// OS returns the FileSystem backed by the host operating system.
func OS() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (osFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFileSystem) Remove(path string) error {
	return os.Remove(path)
}
