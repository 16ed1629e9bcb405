package modules

import (
	"bytes"
	"testing"

	"github.com/LegacyCodeHQ/resprune/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMultiModuleProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testhelpers.WriteTree(t, root, map[string]string{
		"build.gradle":                 "",
		"app/build.gradle":             "",
		"app/feature/build.gradle.kts": "",
		"lib/build.gradle":             "",
		"docs/inner/build.gradle":      "",
	})
	return root
}

func TestModulesCommand_TextTree(t *testing.T) {
	root := writeMultiModuleProject(t)

	cmd := NewCommand()
	cmd.SetArgs([]string{root})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())

	g := testhelpers.Goldie(t)
	g.Assert(t, "modules_text", stdout.Bytes())
}

func TestModulesCommand_DOT(t *testing.T) {
	root := writeMultiModuleProject(t)

	cmd := NewCommand()
	cmd.SetArgs([]string{root, "-f", "dot"})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())

	g := testhelpers.Goldie(t)
	g.Assert(t, "modules_dot", stdout.Bytes())
}

func TestModulesCommand_NoModules(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{t.TempDir()})
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "No modules found\n", stdout.String())
}

func TestModulesCommand_UnknownFormat(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{t.TempDir(), "-f", "svg"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	assert.ErrorContains(t, err, "unknown format: svg (valid options: text, dot)")
}
