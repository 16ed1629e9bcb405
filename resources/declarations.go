package resources

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/LegacyCodeHQ/resprune/fsys"
)

// DeclarationsFileExtension marks a resources path as a single shared
// declarations file rather than a directory of resource files.
const DeclarationsFileExtension = ".xml"

// IsDeclarationsFile reports whether path names a shared declarations file.
func IsDeclarationsFile(path string) bool {
	return strings.HasSuffix(path, DeclarationsFileExtension)
}

// CollectResourceNames returns the resource names declared at path.
//
// A directory yields one name per file: the file name up to its first dot,
// so icon.9.png declares icon. Subdirectories are skipped.
// A declarations file yields the name attribute of the first
// <tag name="..."> element on each line, tag being the category's
// declaration tag.
func CollectResourceNames(ctx context.Context, fs fsys.FileSystem, path string, category Category) ([]string, error) {
	if IsDeclarationsFile(path) {
		return collectDeclaredNames(fs, path, category)
	}
	return collectFileNames(ctx, fs, path)
}

func collectFileNames(ctx context.Context, fs fsys.FileSystem, dir string) ([]string, error) {
	files, _, err := dirEntries(ctx, fs, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, ResourceNameFromFile(file))
	}
	return names, nil
}

// ResourceNameFromFile strips the directory and everything from the first
// dot of the base name.
func ResourceNameFromFile(path string) string {
	name, _, _ := strings.Cut(filepath.Base(path), ".")
	return name
}

func collectDeclaredNames(fs fsys.FileSystem, path string, category Category) ([]string, error) {
	pattern, err := declarationPattern(category)
	if err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParseDeclarations(string(content), pattern), nil
}

func declarationPattern(category Category) (*regexp.Regexp, error) {
	tag, err := category.DeclarationTag()
	if err != nil {
		return nil, err
	}
	return regexp.MustCompile(`<` + regexp.QuoteMeta(tag) + ` name="([^"]*)"`), nil
}

// ParseDeclarations applies pattern to each line of content and collects the
// first captured group of the first match per line.
func ParseDeclarations(content string, pattern *regexp.Regexp) []string {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		match := pattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		names = append(names, match[1])
	}
	return names
}
