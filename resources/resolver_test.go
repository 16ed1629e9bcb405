package resources

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/resprune/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawableProject(t *testing.T) (root, drawables string) {
	t.Helper()
	root = t.TempDir()
	testhelpers.WriteTree(t, root, map[string]string{
		"app/build.gradle":          "",
		"app/src/MainActivity.java": "R.drawable.logo",
		"res/drawable/logo.xml":     "<shape/>",
		"res/drawable/unused.xml":   "<shape/>",
	})
	return root, filepath.Join(root, "res", "drawable")
}

func colorProject(t *testing.T) (root, colors string) {
	t.Helper()
	root = t.TempDir()
	testhelpers.WriteTree(t, root, map[string]string{
		"app/build.gradle":      "",
		"app/src/Theme.kt":      "val accent = R.color.red",
		"res/values/colors.xml": "<resources>\n<color name=\"red\">#F00</color>\n<color name=\"blue\">#00F</color>\n</resources>\n",
	})
	return root, filepath.Join(root, "res", "values", "colors.xml")
}

func TestRun_DrawableDeletesUnusedFiles(t *testing.T) {
	root, drawables := drawableProject(t)
	cfg := Config{Category: CategoryDrawable, RootDir: root, ResourcesPath: drawables}

	result, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"logo", "unused"}, result.Declared)
	assert.Equal(t, []string{"unused"}, result.Unused)
	assert.True(t, result.Pruned)
	assert.Equal(t, []string{"unused"}, result.Deleted)
	assert.FileExists(t, filepath.Join(drawables, "logo.xml"))
	assert.NoFileExists(t, filepath.Join(drawables, "unused.xml"))
}

func TestRun_DrawableSecondRunFindsNothing(t *testing.T) {
	root, drawables := drawableProject(t)
	cfg := Config{Category: CategoryDrawable, RootDir: root, ResourcesPath: drawables}

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	result, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Empty(t, result.Unused)
	assert.True(t, result.Pruned)
	assert.Empty(t, result.Deleted)
}

func TestRun_ColorReportsWithoutDeleting(t *testing.T) {
	root, colors := colorProject(t)
	cfg := Config{Category: CategoryColor, RootDir: root, ResourcesPath: colors}

	for range 2 {
		result, err := Run(context.Background(), cfg)
		require.NoError(t, err)

		assert.Equal(t, []string{"blue"}, result.Unused)
		assert.False(t, result.Pruned)
		assert.Empty(t, result.Deleted)
	}

	content, err := os.ReadFile(colors)
	require.NoError(t, err)
	assert.Contains(t, string(content), `<color name="blue">`)
}

func TestRun_DryRunKeepsFiles(t *testing.T) {
	root, drawables := drawableProject(t)
	cfg := Config{Category: CategoryDrawable, RootDir: root, ResourcesPath: drawables, DryRun: true}

	result, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"unused"}, result.Unused)
	assert.False(t, result.Pruned)
	assert.Empty(t, result.Deleted)
	assert.FileExists(t, filepath.Join(drawables, "unused.xml"))
}

func TestRun_UnknownModeFails(t *testing.T) {
	root, drawables := drawableProject(t)
	cfg := Config{Category: Category("foo"), RootDir: root, ResourcesPath: drawables}

	_, err := Run(context.Background(), cfg)

	require.ErrorIs(t, err, ErrUnknownCategory)
	assert.FileExists(t, filepath.Join(drawables, "unused.xml"))
}

func TestRun_MarkupReferencesCount(t *testing.T) {
	root := t.TempDir()
	testhelpers.WriteTree(t, root, map[string]string{
		"app/build.gradle":              "",
		"app/src/main/res/layout/a.xml": `<include layout="@layout/header"/>`,
		"app/feature/build.gradle.kts":  "",
		"app/feature/src/Screen.kt":     "setContentView(R.layout.screen)",
		"layouts/header.xml":            "",
		"layouts/screen.xml":            "",
		"layouts/orphan.xml":            "",
	})
	cfg := Config{Category: CategoryLayout, RootDir: root, ResourcesPath: filepath.Join(root, "layouts")}

	result, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"orphan"}, result.Unused)
	assert.NoFileExists(t, filepath.Join(root, "layouts", "orphan.xml"))
}

func TestFindUnused_DuplicateNamesReportedOnce(t *testing.T) {
	root := t.TempDir()
	testhelpers.WriteTree(t, root, map[string]string{
		"app/build.gradle":  "",
		"app/src/":          "",
		"drawable/icon.png": "",
		"drawable/icon.xml": "",
	})
	cfg := Config{Category: CategoryDrawable, RootDir: root, ResourcesPath: filepath.Join(root, "drawable")}

	result, err := FindUnused(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"icon"}, result.Unused)
}

func TestFindUnused_ReadFailureAborts(t *testing.T) {
	root, drawables := drawableProject(t)
	denied := errors.New("permission denied")
	cfg := Config{
		Category:      CategoryDrawable,
		RootDir:       root,
		ResourcesPath: drawables,
		FS:            newFailingFS(filepath.Join(root, "app", "src", "MainActivity.java"), denied),
	}

	_, err := Run(context.Background(), cfg)

	require.ErrorIs(t, err, denied)
	assert.FileExists(t, filepath.Join(drawables, "unused.xml"))
}

func TestFindUnused_ModuleWithoutSourcesFails(t *testing.T) {
	root := t.TempDir()
	testhelpers.WriteTree(t, root, map[string]string{
		"app/build.gradle":      "",
		"res/drawable/logo.xml": "",
	})
	cfg := Config{Category: CategoryDrawable, RootDir: root, ResourcesPath: filepath.Join(root, "res", "drawable")}

	_, err := FindUnused(context.Background(), cfg)

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDeleteUnused_FileNamedDifferentlyFails(t *testing.T) {
	root := t.TempDir()
	testhelpers.WriteTree(t, root, map[string]string{
		"drawable/icon.9.png": "",
	})
	cfg := Config{Category: CategoryDrawable, ResourcesPath: filepath.Join(root, "drawable")}

	_, err := DeleteUnused(context.Background(), cfg, []string{"icon"})

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDeleteUnused_SharedCategoriesNeverDelete(t *testing.T) {
	cfg := Config{Category: CategoryDimen, ResourcesPath: filepath.Join(t.TempDir(), "dimens.xml")}

	deleted, err := DeleteUnused(context.Background(), cfg, []string{"margin"})
	require.NoError(t, err)

	assert.Empty(t, deleted)
}

func TestDeleteUnused_RemoveFailureFailsRun(t *testing.T) {
	root, drawables := drawableProject(t)
	denied := errors.New("read-only filesystem")
	cfg := Config{
		Category:      CategoryDrawable,
		RootDir:       root,
		ResourcesPath: drawables,
		FS:            newFailingFS(filepath.Join(drawables, "unused.xml"), denied),
	}

	_, err := Run(context.Background(), cfg)

	assert.ErrorIs(t, err, denied)
}
