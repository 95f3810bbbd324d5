package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeSkill creates root/dir/SKILL.md with content and returns the document path.
func writeSkill(t *testing.T, root, dir, content string) string {
	t.Helper()
	skillDir := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(skillDir, 0o755))
	path := filepath.Join(skillDir, DocumentName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func header(fields ...string) string {
	s := "---\n"
	for i := 0; i+1 < len(fields); i += 2 {
		s += fields[i] + ": " + fields[i+1] + "\n"
	}
	return s + "---\n\n# Body\n"
}

func displayNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.DisplayName)
	}
	return names
}
