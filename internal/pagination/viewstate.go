package pagination

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Defaults and limits for the view state.
const (
	DefaultPage         = 1
	MinPage             = 1
	DefaultPostsPerPage = 10
	DefaultSortOrder    = SortNewest
)

// SortOrder is the display order of posts by date.
type SortOrder string

const (
	// SortNewest orders posts by date, most recent first.
	SortNewest SortOrder = "newest"
	// SortOldest orders posts by date, earliest first.
	SortOldest SortOrder = "oldest"
)

// AllowedPageSizes is the fixed set of page sizes a user can pick from.
//
//nolint:gochecknoglobals // Fixed option list shared by validation, flags and the TUI.
var AllowedPageSizes = []int{10, 20, 50}

// Validation errors.
var (
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidPageSize  = errors.New("page size must be one of 10, 20, 50")
	ErrInvalidSortOrder = errors.New("sort order must be 'newest' or 'oldest'")
)

// Valid reports whether o is a known sort order.
func (o SortOrder) Valid() bool {
	return o == SortNewest || o == SortOldest
}

// Toggle returns the opposite sort order. Unknown orders toggle to the default.
func (o SortOrder) Toggle() SortOrder {
	if o == SortNewest {
		return SortOldest
	}
	return SortNewest
}

// String implements fmt.Stringer.
func (o SortOrder) String() string {
	return string(o)
}

// ParseSortOrder parses a user-supplied sort order, ignoring case and surrounding space.
func ParseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if !order.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, s)
	}
	return order, nil
}

// IsAllowedPageSize reports whether size is in AllowedPageSizes.
func IsAllowedPageSize(size int) bool {
	return slices.Contains(AllowedPageSizes, size)
}

// NextPageSize returns the allowed page size after size, wrapping around.
// Sizes outside the allowed set restart from the first option.
func NextPageSize(size int) int {
	idx := slices.Index(AllowedPageSizes, size)
	if idx < 0 {
		return AllowedPageSizes[0]
	}
	return AllowedPageSizes[(idx+1)%len(AllowedPageSizes)]
}

// ParsePageSize parses and validates a page size string.
func ParsePageSize(s string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPageSize, s)
	}
	if !IsAllowedPageSize(size) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
	}
	return size, nil
}

// ViewState governs what the user sees.
type ViewState struct {
	// CurrentPage is the 1-based page number.
	CurrentPage int `json:"currentPage"`

	// PostsPerPage is drawn from AllowedPageSizes.
	PostsPerPage int `json:"postsPerPage"`

	// SortOrder is newest or oldest.
	SortOrder SortOrder `json:"sortOrder"`
}

// DefaultViewState returns the state used when nothing valid was persisted.
func DefaultViewState() ViewState {
	return ViewState{
		CurrentPage:  DefaultPage,
		PostsPerPage: DefaultPostsPerPage,
		SortOrder:    DefaultSortOrder,
	}
}

// Validate checks the collection-independent invariants of the state.
// The upper page bound depends on the collection size and is enforced by Clamp.
func (v ViewState) Validate() error {
	if v.CurrentPage < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, v.CurrentPage)
	}
	if !IsAllowedPageSize(v.PostsPerPage) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, v.PostsPerPage)
	}
	if !v.SortOrder.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, v.SortOrder)
	}
	return nil
}

// PageCount returns ceil(total / PostsPerPage), or 0 for an empty collection.
func (v ViewState) PageCount(total int) int {
	return CalculateTotalPages(total, v.PostsPerPage)
}

// Clamp returns a copy of v with CurrentPage forced into [1, max(1, pageCount)].
func (v ViewState) Clamp(total int) ViewState {
	v.CurrentPage = ClampPage(v.CurrentPage, v.PageCount(total))
	return v
}

// Offset returns the zero-based index of the first item on the current page.
func (v ViewState) Offset() int {
	return (v.CurrentPage - 1) * v.PostsPerPage
}

// CalculateTotalPages calculates the number of pages needed for totalItems.
func CalculateTotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// ClampPage forces page into [1, pageCount]. A zero page count still yields page 1.
func ClampPage(page, pageCount int) int {
	if page > pageCount {
		page = pageCount
	}
	if page < MinPage {
		page = MinPage
	}
	return page
}
