package pagination

import (
	"fmt"

	"github.com/rshade/postview/internal/posts"
)

// Page is the result of applying a ViewState to the full collection.
type Page struct {
	// Items are the posts on the current page in display order.
	Items []posts.Post `json:"items"`

	// RangeStart is the 1-based index of the first item shown (0 when empty).
	RangeStart int `json:"rangeStart"`

	// RangeEnd is the 1-based inclusive index of the last item shown (0 when empty).
	RangeEnd int `json:"rangeEnd"`

	// PageCount is ceil(Total / PostsPerPage).
	PageCount int `json:"pageCount"`

	// Total is the size of the full collection.
	Total int `json:"total"`
}

// ComputeVisiblePage sorts the collection for view.SortOrder and slices out the current page.
// A page past the end yields no items; the controller keeps CurrentPage in range so
// that only happens for callers passing an unclamped state.
func ComputeVisiblePage(items []posts.Post, view ViewState) Page {
	total := len(items)
	page := Page{
		Items: []posts.Post{},
		Total: total,
	}
	if total == 0 || view.PostsPerPage <= 0 {
		return page
	}

	page.PageCount = CalculateTotalPages(total, view.PostsPerPage)
	if view.CurrentPage > page.PageCount {
		return page
	}

	start := view.Offset()
	if start < 0 {
		start = 0
	}
	if start >= total {
		return page
	}
	end := min(start+view.PostsPerPage, total)

	sorted := SortPosts(items, view.SortOrder)
	page.Items = sorted[start:end]
	page.RangeStart = start + 1
	page.RangeEnd = end
	return page
}

// Control describes the pagination buttons and label. Current and Count let a sink
// address the neighbouring pages without holding its own copy of the view state.
type Control struct {
	PrevDisabled bool   `json:"prevDisabled"`
	NextDisabled bool   `json:"nextDisabled"`
	Label        string `json:"label"`
	Current      int    `json:"currentPage"`
	Count        int    `json:"pageCount"`
}

// NewControl builds the pagination control for currentPage of pageCount.
// Both buttons are disabled when there are no pages.
func NewControl(currentPage, pageCount int) Control {
	return Control{
		PrevDisabled: currentPage <= 1,
		NextDisabled: currentPage >= pageCount,
		Label:        fmt.Sprintf("%d / %d", currentPage, pageCount),
		Current:      currentPage,
		Count:        pageCount,
	}
}

// StatusText renders the "Showing a - b of n items" status line.
func StatusText(rangeStart, rangeEnd, total int) string {
	return fmt.Sprintf("Showing %d - %d of %d items", rangeStart, rangeEnd, total)
}

// Status renders the status line for p.
func (p Page) Status() string {
	return StatusText(p.RangeStart, p.RangeEnd, p.Total)
}
