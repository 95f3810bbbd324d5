package catalog

import "context"

// Search returns the entries whose display name, description or activation
// hint contains keyword, ignoring case. Results keep catalog order.
func (c *Catalog) Search(ctx context.Context, keyword string) []Entry {
	return Filter(c.Scan(ctx), keyword)
}

// Filter returns the entries matching keyword the same way Search does.
func Filter(entries []Entry, keyword string) []Entry {
	q := lower(keyword)
	out := []Entry{}
	for _, e := range entries {
		if containsFold(e.DisplayName, q) ||
			containsFold(e.Description, q) ||
			containsFold(e.Activation, q) {
			out = append(out, e)
		}
	}
	return out
}
