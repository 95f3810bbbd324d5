package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSkills(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "good-skill", "---\nname: Good\n---\nbody\n")
	writeSkill(t, root, "open-skill", "---\nname: Open\nbody without a closing line\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty-skill"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "notes"), 0o755))

	var buf bytes.Buffer
	ok := checkSkills(&buf, root)

	assert.True(t, ok)
	out := buf.String()
	assert.Contains(t, out, "skills root: "+root)
	assert.Contains(t, out, "-  [empty-skill] no SKILL.md")
	assert.Contains(t, out, "⚠  [open-skill] header is never closed")
	assert.NotContains(t, out, "[good-skill]")
	assert.NotContains(t, out, "notes")
	assert.Contains(t, out, "2 of 3 skill director(ies) readable")
}

func TestCheckSkillsUnreadableDocument(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "bad-skill", "SKILL.md"), 0o755))

	var buf bytes.Buffer
	assert.False(t, checkSkills(&buf, root))
	assert.Contains(t, buf.String(), "✗  [bad-skill] unreadable")
}

func TestCheckSkillsMissingRoot(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, checkSkills(&buf, filepath.Join(t.TempDir(), "missing")))
	assert.Contains(t, buf.String(), "skills root not accessible")
}

func TestCheckSkillsRootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "root.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	var buf bytes.Buffer
	assert.False(t, checkSkills(&buf, file))
	assert.Contains(t, buf.String(), "skills root is not a directory")
}
