package pagination

import (
	"sort"

	"github.com/rshade/postview/internal/posts"
)

// SortPosts returns a copy of items ordered by date for the given sort order.
// The sort is stable: posts with equal dates keep their insertion order in both
// directions. The input slice is never modified. Unknown orders fall back to newest.
func SortPosts(items []posts.Post, order SortOrder) []posts.Post {
	sorted := make([]posts.Post, len(items))
	copy(sorted, items)

	// Compare in one direction only so that equal dates never report less-than,
	// which is what keeps ties in insertion order for SliceStable.
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOldest {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Date.After(sorted[j].Date)
	})

	return sorted
}
