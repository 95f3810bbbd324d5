package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kamusis/skillbook/internal/logger"
)

// Resolve returns the document path of the skill identified by name.
//
// Lookup is tiered and the first hit wins:
//  1. a container named exactly name;
//  2. a container named name+SkillSuffix, when name lacks the suffix;
//  3. the first entry, in catalog order, whose display name contains name,
//     ignoring case.
//
// When nothing matches the returned error wraps ErrNotFound.
func (c *Catalog) Resolve(ctx context.Context, name string) (string, error) {
	log := logger.G(ctx).WithField("name", name)

	if p, ok := c.documentIn(name); ok {
		log.WithField("path", p).Debug("resolved by directory name")
		return p, nil
	}

	if !strings.HasSuffix(name, SkillSuffix) {
		if p, ok := c.documentIn(name + SkillSuffix); ok {
			log.WithField("path", p).Debug("resolved by suffixed directory name")
			return p, nil
		}
	}

	query := lower(name)
	for _, e := range c.Scan(ctx) {
		if containsFold(e.DisplayName, query) {
			log.WithField("path", e.DocumentPath).Debug("resolved by display name")
			return e.DocumentPath, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Lookup resolves name like Resolve and returns the full entry for the
// matched document.
func (c *Catalog) Lookup(ctx context.Context, name string) (Entry, error) {
	docPath, err := c.Resolve(ctx, name)
	if err != nil {
		return Entry{}, err
	}
	h, err := ReadHeader(docPath)
	if err != nil {
		return Entry{}, err
	}
	return newEntry(filepath.Base(filepath.Dir(docPath)), docPath, h), nil
}
