package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/LegacyCodeHQ/resprune/internal/logging"
	"github.com/LegacyCodeHQ/resprune/resources"
	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"build":        true,
	".gradle":      true,
	".idea":        true,
	".vscode":      true,
}

func watchAndRescan(ctx context.Context, cfg resources.Config, r *reporter) error {
	logger := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, cfg.RootDir); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}
	if err := watcher.Add(resourcesWatchDir(cfg)); err != nil {
		return fmt.Errorf("failed to watch resources: %w", err)
	}

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Create) {
				addIfDirectory(event.Name, watcher.Add)
			}

			if !isRelevantChange(event, cfg) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, rescanFunc(ctx, cfg, r))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}

// rescanFunc returns the debounced rescan. It does nothing once ctx is done,
// so a timer firing during shutdown neither logs nor prints.
func rescanFunc(ctx context.Context, cfg resources.Config, r *reporter) func() {
	logger := logging.FromContext(ctx)
	return func() {
		if ctx.Err() != nil {
			return
		}
		if err := r.rescan(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("rescan failed", "err", err)
		}
	}
}

// resourcesWatchDir is the directory holding the declared resources.
func resourcesWatchDir(cfg resources.Config) string {
	if resources.IsDeclarationsFile(cfg.ResourcesPath) {
		return filepath.Dir(cfg.ResourcesPath)
	}
	return cfg.ResourcesPath
}

func isRelevantChange(event fsnotify.Event, cfg resources.Config) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Clean(event.Name)
	if resources.IsSourceFile(name) || slices.Contains(resources.BuildDescriptors, filepath.Base(name)) {
		return true
	}

	resourcesPath := filepath.Clean(cfg.ResourcesPath)
	if resources.IsDeclarationsFile(resourcesPath) {
		return name == resourcesPath
	}
	return name == resourcesPath || strings.HasPrefix(name, resourcesPath+string(filepath.Separator))
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return addWatchDirsWithAdder(root, watcher.Add)
}

func addWatchDirsWithAdder(root string, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	})
}

func addIfDirectory(path string, add func(string) error) {
	if skippedDirs[filepath.Base(path)] {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if info.IsDir() {
		_ = addWatchDirsWithAdder(path, add)
	}
}
