package resources

import (
	"github.com/LegacyCodeHQ/resprune/fsys"
)

// failingFS fails the operations on failPath with err and forwards
// everything else to the host filesystem.
type failingFS struct {
	fsys.FileSystem
	failPath string
	err      error
}

func newFailingFS(failPath string, err error) failingFS {
	return failingFS{FileSystem: fsys.OS(), failPath: failPath, err: err}
}

func (f failingFS) ReadDir(dir string) ([]string, error) {
	if dir == f.failPath {
		return nil, f.err
	}
	return f.FileSystem.ReadDir(dir)
}

func (f failingFS) ReadFile(path string) ([]byte, error) {
	if path == f.failPath {
		return nil, f.err
	}
	return f.FileSystem.ReadFile(path)
}

func (f failingFS) Remove(path string) error {
	if path == f.failPath {
		return f.err
	}
	return f.FileSystem.Remove(path)
}
