// Package catalog discovers skill containers under a root directory, parses
// their SKILL.md headers and resolves user-supplied names to documents.
//
// A catalog is never cached: every call re-reads the filesystem so results
// always reflect its current state.
package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamusis/skillbook/internal/logger"
)

// Catalog is the set of skills found under a root directory.
type Catalog struct {
	root string
}

// New returns a Catalog rooted at root. Relative roots are made absolute so
// that entry document paths are absolute.
func New(root string) *Catalog {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Catalog{root: root}
}

// Root returns the catalog's root directory.
func (c *Catalog) Root() string {
	return c.root
}

// Scan lists every skill container under the root, sorted by display name.
//
// Scan never fails. Children that are not directories ending in SkillSuffix,
// containers without a SKILL.md and documents that cannot be read are left
// out of the result.
func (c *Catalog) Scan(ctx context.Context) []Entry {
	log := logger.G(ctx).WithField("root", c.root)

	children, err := os.ReadDir(c.root)
	if err != nil {
		log.WithError(err).Debug("cannot read catalog root")
		return []Entry{}
	}

	out := make([]Entry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		if !strings.HasSuffix(name, SkillSuffix) {
			continue
		}
		docPath, ok := c.documentIn(name)
		if !ok {
			continue
		}
		h, err := ReadHeader(docPath)
		if err != nil {
			log.WithError(err).WithField("path", docPath).Debug("skipping unreadable skill document")
			continue
		}
		out = append(out, newEntry(name, docPath, h))
	}

	SortEntries(out)
	log.WithField("count", len(out)).Debug("catalog scanned")
	return out
}

// Containers returns the names of all children of the root that look like
// skill containers, whether or not they hold a SKILL.md.
func (c *Catalog) Containers() ([]string, error) {
	children, err := os.ReadDir(c.root)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, child := range children {
		name := child.Name()
		if !strings.HasSuffix(name, SkillSuffix) {
			continue
		}
		if info, err := os.Stat(filepath.Join(c.root, name)); err == nil && info.IsDir() {
			out = append(out, name)
		}
	}
	return out, nil
}

// documentIn returns the SKILL.md path inside root/dirName when both the
// directory and the document exist. Symlinked containers are followed.
func (c *Catalog) documentIn(dirName string) (string, bool) {
	dir := filepath.Join(c.root, dirName)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	docPath := filepath.Join(dir, DocumentName)
	if _, err := os.Stat(docPath); err != nil {
		return "", false
	}
	return docPath, true
}
