package resources

import (
	"context"
	"strings"

	"github.com/LegacyCodeHQ/resprune/fsys"
	"golang.org/x/sync/errgroup"
)

// SourceExtensions are the file extensions scanned for references.
var SourceExtensions = []string{".java", ".kt", ".xml"}

// IsSourceFile reports whether path has one of SourceExtensions.
func IsSourceFile(path string) bool {
	for _, ext := range SourceExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// CollectSourceFiles recursively collects source files below dir. Every
// subdirectory is visited, build outputs included.
func CollectSourceFiles(ctx context.Context, fs fsys.FileSystem, dir string) ([]string, error) {
	files, dirs, err := dirEntries(ctx, fs, dir)
	if err != nil {
		return nil, err
	}

	var sources []string
	for _, file := range files {
		if IsSourceFile(file) {
			sources = append(sources, file)
		}
	}

	nested := make([][]string, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range dirs {
		g.Go(func() error {
			inner, err := CollectSourceFiles(gctx, fs, sub)
			nested[i] = inner
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, inner := range nested {
		sources = append(sources, inner...)
	}
	return sources, nil
}
