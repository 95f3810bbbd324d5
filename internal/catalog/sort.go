package catalog

import "sort"

// SortEntries sorts entries by display name using plain byte-wise string
// comparison, so upper-case names sort before lower-case ones. Entries with
// equal display names keep their relative order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DisplayName < entries[j].DisplayName
	})
}
