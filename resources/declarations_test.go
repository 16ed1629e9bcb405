package resources

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/resprune/fsys"
	"github.com/LegacyCodeHQ/resprune/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectResourceNames_DirectoryUsesTextBeforeFirstDot(t *testing.T) {
	dir := t.TempDir()
	testhelpers.WriteTree(t, dir, map[string]string{
		"icon.9.png": "",
		"logo.xml":   "",
		"nested/":    "",
	})

	names, err := CollectResourceNames(context.Background(), fsys.OS(), dir, CategoryDrawable)
	require.NoError(t, err)

	assert.Equal(t, []string{"icon", "logo"}, names)
}

func TestCollectResourceNames_DeclarationsFile(t *testing.T) {
	dir := t.TempDir()
	testhelpers.WriteTree(t, dir, map[string]string{
		"values/dimens.xml": `<resources>
    <dimen name="margin">8dp</dimen>
    <dimen name="padding">4dp</dimen><dimen name="ignored">2dp</dimen>
    <color name="red">#F00</color>
</resources>
`,
	})

	names, err := CollectResourceNames(context.Background(), fsys.OS(), filepath.Join(dir, "values", "dimens.xml"), CategoryDimen)
	require.NoError(t, err)

	assert.Equal(t, []string{"margin", "padding"}, names)
}

func TestCollectResourceNames_DeclarationsFileRejectsFileCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawables.xml")

	_, err := CollectResourceNames(context.Background(), fsys.OS(), path, CategoryDrawable)
	assert.ErrorIs(t, err, ErrUnsupportedDeclarations)

	_, err = CollectResourceNames(context.Background(), fsys.OS(), path, Category("foo"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCollectResourceNames_MissingDeclarationsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.xml")

	_, err := CollectResourceNames(context.Background(), fsys.OS(), path, CategoryColor)

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseDeclarations_RoundTrip(t *testing.T) {
	pattern, err := declarationPattern(CategoryColor)
	require.NoError(t, err)

	assert.Equal(t, []string{"primary"}, ParseDeclarations(`<color name="primary">#FFF</color>`, pattern))
}

func TestResourceNameFromFile(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"icon.xml", "icon"},
		{"icon.9.png", "icon"},
		{filepath.Join("res", "drawable", "logo.webp"), "logo"},
		{"README", "README"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceNameFromFile(tt.path))
		})
	}
}
