package exporter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kamusis/skillbook/internal/exporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func readFile(t *testing.T, dir, rel string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, rel))
	require.NoError(t, err)
	return string(b)
}

func TestExportDir_CopyAndExclude(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "swift-skill")
	dst := filepath.Join(tmp, "out", "swift-skill")

	writeFile(t, src, "SKILL.md", "---\nname: swift\n---\n")
	writeFile(t, src, "examples/demo.swift", "print(1)")
	writeFile(t, src, "scratch.tmp", "junk")
	writeFile(t, src, ".DS_Store", "junk")
	writeFile(t, src, "__pycache__/x.pyc", "junk")
	writeFile(t, src, "deep/nested/build.log", "junk")

	excludes := []string{".DS_Store", "*.tmp", "__pycache__/", "**/*.log"}
	r, err := exporter.ExportDir(src, dst, exporter.Options{Excludes: excludes})
	require.NoError(t, err)

	assert.Equal(t, 2, r.Copied)
	assert.Equal(t, 4, r.Excluded)
	assert.Empty(t, r.Conflicts)
	assert.Equal(t, "---\nname: swift\n---\n", readFile(t, dst, "SKILL.md"))
	assert.Equal(t, "print(1)", readFile(t, dst, "examples/demo.swift"))
	for _, rel := range []string{"scratch.tmp", ".DS_Store", "__pycache__", "deep/nested/build.log"} {
		_, err := os.Stat(filepath.Join(dst, rel))
		assert.True(t, os.IsNotExist(err), "%s should have been excluded", rel)
	}
}

func TestExportDir_DirectoryPatternDoesNotMatchFiles(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	writeFile(t, src, "build", "a file named build")

	r, err := exporter.ExportDir(src, dst, exporter.Options{Excludes: []string{"build/"}})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Copied)
	assert.Equal(t, "a file named build", readFile(t, dst, "build"))
}

func TestExportDir_IdenticalAndConflict(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, src, "SKILL.md", "new version")
	writeFile(t, src, "same.md", "identical")
	writeFile(t, dst, "SKILL.md", "old version")
	writeFile(t, dst, "same.md", "identical")

	r, err := exporter.ExportDir(src, dst, exporter.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, r.Copied)
	assert.Equal(t, 1, r.Skipped)
	require.Len(t, r.Conflicts, 1)

	assert.Equal(t, filepath.Join(dst, "SKILL.md"), r.Conflicts[0].Existing)
	assert.Equal(t, filepath.Join(dst, "SKILL.conflict-skillbook.md"), r.Conflicts[0].Conflict)
	assert.Equal(t, "old version", readFile(t, dst, "SKILL.md"))
	assert.Equal(t, "new version", readFile(t, dst, "SKILL.conflict-skillbook.md"))
}

func TestExportDir_Force(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")

	writeFile(t, src, "SKILL.md", "new version")
	writeFile(t, dst, "SKILL.md", "old version")

	r, err := exporter.ExportDir(src, dst, exporter.Options{Force: true, Tag: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Overwritten)
	assert.Empty(t, r.Conflicts)
	assert.Equal(t, "new version", readFile(t, dst, "SKILL.md"))
}

func TestExportDir_MissingSource(t *testing.T) {
	tmp := t.TempDir()
	_, err := exporter.ExportDir(filepath.Join(tmp, "missing"), filepath.Join(tmp, "dst"), exporter.Options{})
	assert.Error(t, err)
}

func TestExportDir_DestinationInsideSource(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a-skill")
	writeFile(t, src, "SKILL.md", "body")

	for _, dst := range []string{
		src,
		filepath.Join(src, "out", "a-skill"),
		filepath.Join(src, "out", "..", "nested"),
	} {
		r, err := exporter.ExportDir(src, dst, exporter.Options{})
		require.ErrorIs(t, err, exporter.ErrNestedDestination, dst)
		assert.Zero(t, r.Copied)
	}

	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "nothing may be written into the source")
}

func TestExportDir_DestinationInsideSourceThroughSymlink(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a-skill")
	writeFile(t, src, "SKILL.md", "body")
	alias := filepath.Join(tmp, "alias")
	require.NoError(t, os.Symlink(src, alias))

	_, err := exporter.ExportDir(src, filepath.Join(alias, "out"), exporter.Options{})
	require.ErrorIs(t, err, exporter.ErrNestedDestination)
	assert.NoDirExists(t, filepath.Join(src, "out"))
}

func TestExportDir_SiblingWithSharedPrefix(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "a-skill")
	writeFile(t, src, "SKILL.md", "body")

	r, err := exporter.ExportDir(src, filepath.Join(tmp, "a-skill-copy"), exporter.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Copied)
}

func TestExportDir_SymlinksAreRecreated(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	writeFile(t, src, "real/a.txt", "a")
	require.NoError(t, os.Symlink("real", filepath.Join(src, "shared")))
	require.NoError(t, os.Symlink("real/a.txt", filepath.Join(src, "a-link.txt")))

	r, err := exporter.ExportDir(src, dst, exporter.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Copied)
	assert.Equal(t, 2, r.Links)

	for link, target := range map[string]string{"shared": "real", "a-link.txt": "real/a.txt"} {
		got, err := os.Readlink(filepath.Join(dst, link))
		require.NoError(t, err)
		assert.Equal(t, target, got)
	}

	r, err = exporter.ExportDir(src, dst, exporter.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Skipped)
	assert.Zero(t, r.Links)
}

func TestExportDir_SymlinkConflictAndForce(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	dst := filepath.Join(tmp, "dst")
	writeFile(t, src, "real/a.txt", "a")
	require.NoError(t, os.Symlink("real", filepath.Join(src, "shared")))
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.Symlink("elsewhere", filepath.Join(dst, "shared")))

	r, err := exporter.ExportDir(src, dst, exporter.Options{})
	require.NoError(t, err)
	require.Len(t, r.Conflicts, 1)
	got, err := os.Readlink(filepath.Join(dst, "shared.conflict-skillbook"))
	require.NoError(t, err)
	assert.Equal(t, "real", got)

	r, err = exporter.ExportDir(src, dst, exporter.Options{Force: true})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Overwritten)
	got, err = os.Readlink(filepath.Join(dst, "shared"))
	require.NoError(t, err)
	assert.Equal(t, "real", got)
}

func TestExportDir_SymlinkedSourceIsWalked(t *testing.T) {
	tmp := t.TempDir()
	stored := filepath.Join(tmp, "store", "a-skill")
	writeFile(t, stored, "SKILL.md", "body")
	writeFile(t, stored, "refs/notes.md", "notes")
	src := filepath.Join(tmp, "a-skill")
	require.NoError(t, os.Symlink(stored, src))

	dst := filepath.Join(tmp, "out", "a-skill")
	r, err := exporter.ExportDir(src, dst, exporter.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Copied)
	assert.Equal(t, "notes", readFile(t, dst, "refs/notes.md"))
}
