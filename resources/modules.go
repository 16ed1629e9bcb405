package resources

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/LegacyCodeHQ/resprune/fsys"
	"golang.org/x/sync/errgroup"
)

// BuildDescriptors are the file names that mark a directory as a module.
var BuildDescriptors = []string{"build.gradle", "build.gradle.kts"}

// Module is a directory that directly contains a build descriptor.
type Module struct {
	Dir string
	// Parent is the directory of the enclosing module, empty for modules
	// found directly by walking the scanned root.
	Parent string
}

// SourceDir is the directory scanned for source files.
func (m Module) SourceDir() string {
	return filepath.Join(m.Dir, "src")
}

// FindModules returns all modules below root. Only module directories are
// searched for nested modules; root itself is never reported as a module.
// Each level's modules come first, followed by their nested modules in
// parent order.
func FindModules(ctx context.Context, fs fsys.FileSystem, root string) ([]Module, error) {
	return findModules(ctx, fs, root, "")
}

func findModules(ctx context.Context, fs fsys.FileSystem, dir, parent string) ([]Module, error) {
	_, dirs, err := dirEntries(ctx, fs, dir)
	if err != nil {
		return nil, err
	}

	isModule := make([]bool, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			names, err := withFSSlot(gctx, func() ([]string, error) { return fs.ReadDir(candidate) })
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", candidate, err)
			}
			isModule[i] = containsBuildDescriptor(names)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var modules []Module
	for i, candidate := range dirs {
		if isModule[i] {
			modules = append(modules, Module{Dir: candidate, Parent: parent})
		}
	}

	nested := make([][]Module, len(modules))
	g, gctx = errgroup.WithContext(ctx)
	for i, module := range modules {
		g.Go(func() error {
			inner, err := findModules(gctx, fs, module.Dir, module.Dir)
			nested[i] = inner
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, inner := range nested {
		modules = append(modules, inner...)
	}
	return modules, nil
}

func containsBuildDescriptor(names []string) bool {
	for _, name := range names {
		if slices.Contains(BuildDescriptors, name) {
			return true
		}
	}
	return false
}
