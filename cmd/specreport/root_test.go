package specreport

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/specreport/pkg/testutil"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

const minimalRun = `{
  "run": {"title": "cli run"},
  "units": [
    {
      "specs": [
        {
          "name": "Login",
          "scenarios": [
            {"name": "ok", "steps": [{"text": "log in", "status": "passed"}]}
          ]
        }
      ]
    }
  ]
}`

func TestUsageTemplateApplied(t *testing.T) {
	var buf bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	// Section headers pass through boldUpper; without a tty that leaves
	// plain uppercase text.
	out := buf.String()
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "AVAILABLE COMMANDS:")
	assert.Contains(t, out, "FLAGS:")
	assert.Contains(t, out, "generate")
}

func TestFormatsCmd(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"formats"})

	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestGenerateCmd(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)
	testutil.CreateFile(t, tmp, "run.json", minimalRun)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"generate", "--run-file", "run.json", "--output", "out", "--format", "json"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.True(t, testutil.FileExists(t, filepath.Join(tmp, "out", "json", "summary.json")))
	assert.True(t, testutil.FileExists(t, filepath.Join(tmp, "out", "json", "Login", "Login.json")))
}

func TestGenerateCmdMissingRunFile(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"generate", "--run-file", "absent.json", "--output", "out"})

	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestGenConfigCmdWrite(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"gen-config", "--write"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	content := testutil.ReadFile(t, filepath.Join(tmp, ".specreport.toml"))
	assert.Contains(t, content, "[reports]")

	// A second write never clobbers the existing file
	rootCmd = NewRootCmd()
	rootCmd.SetArgs([]string{"gen-config", "--write"})
	require.NoError(t, rootCmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
}
