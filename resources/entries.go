package resources

import (
	"context"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/LegacyCodeHQ/resprune/fsys"
	"golang.org/x/sync/errgroup"
)

// dirEntries splits the direct entries of dir into files and directories.
// Entries are stat'ed concurrently; both slices keep listing order.
func dirEntries(ctx context.Context, fs fsys.FileSystem, dir string) (files, dirs []string, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	names, err := withFSSlot(ctx, func() ([]string, error) { return fs.ReadDir(dir) })
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	paths := make([]string, len(names))
	isDir := make([]bool, len(names))
	isFile := make([]bool, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
		g.Go(func() error {
			info, err := withFSSlot(gctx, func() (iofs.FileInfo, error) { return fs.Stat(paths[i]) })
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", paths[i], err)
			}
			isDir[i] = info.IsDir()
			isFile[i] = info.Mode().IsRegular()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for i, path := range paths {
		switch {
		case isDir[i]:
			dirs = append(dirs, path)
		case isFile[i]:
			files = append(files, path)
		}
	}
	return files, dirs, nil
}
