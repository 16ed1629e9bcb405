package resources

import (
	"errors"
	"fmt"
)

// Category is the kind of resource being pruned. It doubles as the mode
// argument on the command line.
type Category string

const (
	CategoryDrawable Category = "drawable"
	CategoryColor    Category = "color"
	CategoryDimen    Category = "dimen"
	CategoryLayout   Category = "layout"
)

var (
	// ErrUnknownCategory is returned when a mode names no known resource category.
	ErrUnknownCategory = errors.New("unknown mode")
	// ErrUnsupportedDeclarations is returned when a category cannot be read
	// from a shared declarations file.
	ErrUnsupportedDeclarations = errors.New("category has no shared declarations file")
)

// Categories returns every known category.
func Categories() []Category {
	return []Category{CategoryDrawable, CategoryColor, CategoryDimen, CategoryLayout}
}

func (c Category) String() string {
	return string(c)
}

// ReferencePatterns returns the code accessor (R.<category>.<name>) and
// markup accessor (<category>/<name>) prefixes for c.
func (c Category) ReferencePatterns() (code, markup string, err error) {
	switch c {
	case CategoryDrawable, CategoryColor, CategoryDimen, CategoryLayout:
		return "R." + string(c) + ".", string(c) + "/", nil
	}
	return "", "", unknownCategoryError(c)
}

// DeclarationTag returns the element name used to declare c inside a shared
// values file.
func (c Category) DeclarationTag() (string, error) {
	switch c {
	case CategoryColor, CategoryDimen:
		return string(c), nil
	case CategoryDrawable, CategoryLayout:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDeclarations, c)
	}
	return "", unknownCategoryError(c)
}

// DeletesFiles reports whether unused resources of c live in files of their
// own and are deleted.
func (c Category) DeletesFiles() (bool, error) {
	switch c {
	case CategoryDrawable, CategoryLayout:
		return true, nil
	case CategoryColor, CategoryDimen:
		return false, nil
	}
	return false, unknownCategoryError(c)
}

func unknownCategoryError(c Category) error {
	return fmt.Errorf("%w: %q (valid options: drawable, color, dimen, layout)", ErrUnknownCategory, string(c))
}
