package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// isolateHome points HOME and the cache directory at fresh temp dirs so no
// test reads or writes the real ~/.skillbook.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	for _, k := range []string{"SKILLBOOK_ROOT", "SKILLBOOK_COLOR", "SKILLBOOK_LOG_LEVEL", "SKILLBOOK_LOG_FORMAT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func writeSkill(t *testing.T, root, dir, content string) string {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	path := filepath.Join(skillDir, "SKILL.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// sampleRoot builds a skills root with two skills and one directory that is
// not a skill.
func sampleRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeSkill(t, root, "alpha-skill", "---\nname: Alpha Tools\ndescription: Memory leak hunting\nversion: 2.0\n---\n# Alpha\n")
	writeSkill(t, root, "beta-skill", "---\nname: Beta Helpers\nactivation: swiftui\n---\n# Beta\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "notes"), 0o755))
	return root
}

// runCLI executes the root command with args and returns everything written
// to stdout and stderr. Command-local flag variables are reset first since
// cobra keeps their values between executions.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagListFormat = "text"
	flagShowRaw = false
	flagExportForce = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}
