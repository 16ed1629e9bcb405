package resources

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/LegacyCodeHQ/resprune/fsys"
	"github.com/LegacyCodeHQ/resprune/internal/logging"
	"golang.org/x/sync/errgroup"
)

// sourceReadParallelism bounds concurrent source reads to stay clear of
// file descriptor limits on large trees.
const sourceReadParallelism = 64

// Result is the outcome of a run.
type Result struct {
	Category Category
	// Declared holds every declared resource name, without duplicates.
	Declared []string
	// Unused holds the declared names no source file refers to.
	Unused []string
	// Pruned is set when the run removed unused files, even when there were
	// none to remove. It stays false for dry runs and shared declarations.
	Pruned bool
	// Deleted holds the unused names whose files were removed.
	Deleted []string
}

// Run finds unused resources and, unless cfg.DryRun is set, deletes them.
func Run(ctx context.Context, cfg Config) (Result, error) {
	result, err := FindUnused(ctx, cfg)
	if err != nil {
		return result, err
	}
	deletes, err := cfg.Category.DeletesFiles()
	if err != nil {
		return result, err
	}
	if cfg.DryRun || !deletes {
		return result, nil
	}

	result.Pruned = true
	result.Deleted, err = DeleteUnused(ctx, cfg, result.Unused)
	if err != nil {
		return result, err
	}
	return result, nil
}

// FindUnused resolves the declared resources of cfg.Category that no source
// file of any module below cfg.RootDir refers to.
func FindUnused(ctx context.Context, cfg Config) (Result, error) {
	logger := logging.FromContext(ctx)
	fs := cfg.fileSystem()
	result := Result{Category: cfg.Category}

	if _, _, err := cfg.Category.ReferencePatterns(); err != nil {
		return result, err
	}

	start := time.Now()
	modules, err := FindModules(ctx, fs, cfg.RootDir)
	if err != nil {
		return result, fmt.Errorf("failed to find modules: %w", err)
	}
	logger.Debug("found modules", "count", len(modules), "elapsed", time.Since(start))

	start = time.Now()
	sources, err := collectModuleSources(ctx, fs, modules)
	if err != nil {
		return result, fmt.Errorf("failed to collect source files: %w", err)
	}
	logger.Debug("collected source files", "count", len(sources), "elapsed", time.Since(start))

	declared, err := CollectResourceNames(ctx, fs, cfg.ResourcesPath, cfg.Category)
	if err != nil {
		return result, fmt.Errorf("failed to collect resources: %w", err)
	}
	result.Declared = deduplicateNames(declared)
	logger.Debug("collected resources", "category", cfg.Category, "count", len(result.Declared))

	start = time.Now()
	used, err := findUsedNames(ctx, fsys.FileSystemContentReader(fs), sources, result.Declared, cfg.Category)
	if err != nil {
		return result, fmt.Errorf("failed to scan source files: %w", err)
	}
	logger.Debug("scanned source files", "used", len(used), "elapsed", time.Since(start))

	for _, name := range result.Declared {
		if !used[name] {
			result.Unused = append(result.Unused, name)
		}
	}
	return result, nil
}

// DeleteUnused removes <ResourcesPath>/<name>.xml for each name when the
// category keeps one resource per file. Shared declarations are never
// touched. Deletions run concurrently and the first failure fails the call.
func DeleteUnused(ctx context.Context, cfg Config, names []string) ([]string, error) {
	deletes, err := cfg.Category.DeletesFiles()
	if err != nil {
		return nil, err
	}
	if !deletes || len(names) == 0 {
		return nil, nil
	}

	fs := cfg.fileSystem()
	logger := logging.FromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		path := filepath.Join(cfg.ResourcesPath, name+".xml")
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fs.Remove(path); err != nil {
				return fmt.Errorf("failed to delete %s: %w", path, err)
			}
			logger.Debug("deleted resource", "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

func collectModuleSources(ctx context.Context, fs fsys.FileSystem, modules []Module) ([]string, error) {
	perModule := make([][]string, len(modules))
	g, gctx := errgroup.WithContext(ctx)
	for i, module := range modules {
		g.Go(func() error {
			sources, err := CollectSourceFiles(gctx, fs, module.SourceDir())
			perModule[i] = sources
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var sources []string
	for _, moduleSources := range perModule {
		sources = append(sources, moduleSources...)
	}
	return sources, nil
}

func findUsedNames(
	ctx context.Context,
	readContent fsys.ContentReader,
	sources []string,
	names []string,
	category Category,
) (map[string]bool, error) {
	perFile := make([][]string, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sourceReadParallelism)
	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			content, err := readContent(source)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", source, err)
			}
			perFile[i], err = FindReferences(content, names, category)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	for _, fileUsed := range perFile {
		for _, name := range fileUsed {
			used[name] = true
		}
	}
	return used, nil
}

// deduplicateNames removes duplicate entries while preserving insertion order
func deduplicateNames(names []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			result = append(result, n)
		}
	}
	return result
}
