// Package exporter copies a skill container into a destination directory,
// applying exclude filtering and MD5-based conflict resolution.
package exporter

import (
	"crypto/md5"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultTag names conflict files written by an export.
const DefaultTag = "skillbook"

// ErrNestedDestination is returned when the destination lies inside the source.
var ErrNestedDestination = errors.New("destination is inside the source directory")

// ConflictPair records a conflict found during export.
type ConflictPair struct {
	Existing string // file already present at the destination
	Conflict string // where the incoming version was written
}

// Options controls ExportDir.
type Options struct {
	// Excludes are doublestar patterns matched against both the slash-separated
	// relative path and the base name. A trailing "/" restricts a pattern to
	// directories.
	Excludes []string
	// Force overwrites differing destination files instead of writing
	// conflict copies next to them.
	Force bool
	// Tag is inserted into conflict file names; DefaultTag when empty.
	Tag string
}

// Result is returned by ExportDir.
type Result struct {
	Copied      int // new files written
	Skipped     int // identical files left alone
	Overwritten int // differing files replaced (Force only)
	Excluded    int // files and directories filtered out
	Links       int // symlinks recreated as links
	Conflicts   []ConflictPair
}

// ExportDir copies the tree rooted at srcDir into dstDir. Symlinks inside the
// tree are recreated as symlinks. A dstDir inside srcDir is rejected with
// ErrNestedDestination.
func ExportDir(srcDir, dstDir string, opts Options) (*Result, error) {
	tag := opts.Tag
	if tag == "" {
		tag = DefaultTag
	}
	result := &Result{}

	srcReal, err := filepath.EvalSymlinks(srcDir)
	if err != nil {
		return result, fmt.Errorf("cannot resolve %s: %w", srcDir, err)
	}
	dstReal, err := resolveMissing(dstDir)
	if err != nil {
		return result, err
	}
	if isWithin(srcReal, dstReal) {
		return result, fmt.Errorf("%w: %s", ErrNestedDestination, dstDir)
	}

	// Walk the resolved source so a symlinked skill container is descended into.
	err = filepath.WalkDir(srcReal, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == srcReal {
			return os.MkdirAll(dstDir, 0o755)
		}

		rel, err := filepath.Rel(srcReal, path)
		if err != nil {
			return err
		}

		// ── Exclude filtering ─────────────────────────────────────────────────
		if matchesExclude(rel, d.IsDir(), opts.Excludes) {
			result.Excluded++
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		dst := filepath.Join(dstDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return exportLink(path, dst, tag, opts.Force, result)
		}

		// ── MD5 conflict resolution ───────────────────────────────────────────
		if _, err := os.Stat(dst); err == nil {
			srcMD5, err := fileMD5(path)
			if err != nil {
				return fmt.Errorf("md5 %s: %w", path, err)
			}
			dstMD5, err := fileMD5(dst)
			if err != nil {
				return fmt.Errorf("md5 %s: %w", dst, err)
			}
			if srcMD5 == dstMD5 {
				result.Skipped++
				return nil
			}
			if opts.Force {
				if err := copyFile(path, dst); err != nil {
					return fmt.Errorf("copy %s → %s: %w", path, dst, err)
				}
				result.Overwritten++
				return nil
			}
			conflictDst := conflictPath(dst, tag)
			if err := copyFile(path, conflictDst); err != nil {
				return fmt.Errorf("conflict copy %s → %s: %w", path, conflictDst, err)
			}
			result.Conflicts = append(result.Conflicts, ConflictPair{
				Existing: dst,
				Conflict: conflictDst,
			})
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := copyFile(path, dst); err != nil {
			return fmt.Errorf("copy %s → %s: %w", path, dst, err)
		}
		result.Copied++
		return nil
	})
	if err != nil {
		return result, err
	}
	return result, nil
}

// exportLink recreates the symlink at path as dst, keeping its target as is.
// Links are never followed, so a link to a directory is not descended into.
func exportLink(path, dst, tag string, force bool, result *Result) error {
	target, err := os.Readlink(path)
	if err != nil {
		return fmt.Errorf("cannot read link %s: %w", path, err)
	}

	if _, err := os.Lstat(dst); err == nil {
		if existing, err := os.Readlink(dst); err == nil && existing == target {
			result.Skipped++
			return nil
		}
		if !force {
			conflictDst := conflictPath(dst, tag)
			_ = os.Remove(conflictDst)
			if err := os.Symlink(target, conflictDst); err != nil {
				return fmt.Errorf("conflict link %s → %s: %w", conflictDst, target, err)
			}
			result.Conflicts = append(result.Conflicts, ConflictPair{Existing: dst, Conflict: conflictDst})
			return nil
		}
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("cannot replace %s: %w", dst, err)
		}
		result.Overwritten++
	} else {
		result.Links++
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.Symlink(target, dst); err != nil {
		return fmt.Errorf("link %s → %s: %w", dst, target, err)
	}
	return nil
}

// resolveMissing is filepath.EvalSymlinks for a path that may not exist yet:
// the deepest existing ancestor is resolved and the rest appended.
func resolveMissing(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", p, err)
	}
	var tail []string
	for dir := abs; ; dir = filepath.Dir(dir) {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			for i := len(tail) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, tail[i])
			}
			return resolved, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		tail = append(tail, filepath.Base(dir))
	}
}

// isWithin reports whether p is dir or lies below it.
func isWithin(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// conflictPath builds the conflict filename for an incoming file.
// Strategy: insert .conflict-<tag> before the final extension.
//
//	SKILL.md          → SKILL.conflict-skillbook.md
//	notes.prompt.md   → notes.prompt.conflict-skillbook.md
func conflictPath(original, tag string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(original, ext)
	return base + ".conflict-" + tag + ext
}

// matchesExclude reports whether relPath matches any of the given patterns.
func matchesExclude(relPath string, isDir bool, patterns []string) bool {
	rel := filepath.ToSlash(relPath)
	name := filepath.Base(relPath)
	for _, pattern := range patterns {
		if strings.HasSuffix(pattern, "/") {
			if !isDir {
				continue
			}
			pattern = strings.TrimSuffix(pattern, "/")
		}
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// fileMD5 returns the hex-encoded MD5 digest of the file at path.
func fileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// copyFile copies src to dst, preserving permissions.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
