// Package testhelpers holds fixtures shared by package tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Goldie creates a goldie instance storing golden files as testdata/<name>.gold.txt
func Goldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}

// WriteTree creates files below root. Keys are slash-separated paths relative
// to root; a key ending in "/" creates an empty directory.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755), "failed to create directory %s", rel)
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "failed to create parent of %s", rel)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to create file %s", rel)
	}
}

// AndroidProject lays out a root project with an app module whose sources
// refer to the logo drawable, plus a drawable directory declaring logo and
// unused. It returns the drawable directory.
func AndroidProject(t *testing.T, root string) string {
	t.Helper()
	WriteTree(t, root, map[string]string{
		"build.gradle":                         "// root project\n",
		"app/build.gradle":                     "apply plugin: 'com.android.application'\n",
		"app/src/MainActivity.java":            "class MainActivity { int id = R.drawable.logo; }\n",
		"app/src/main/res/drawable/logo.xml":   "<shape/>\n",
		"app/src/main/res/drawable/unused.xml": "<shape/>\n",
		"app/src/main/res/values/colors.xml":   "<resources>\n    <color name=\"red\">#F00</color>\n    <color name=\"blue\">#00F</color>\n</resources>\n",
		"app/src/main/res/layout/activity.xml": "<ImageView android:src=\"@color/red\"/>\n",
	})
	return filepath.Join(root, "app", "src", "main", "res", "drawable")
}
