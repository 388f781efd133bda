// Package pagination derives what the user currently sees from the full post collection.
//
// This package contains the pure view logic shared by every render surface:
//   - ViewState: the (page, page size, sort order) tuple with validation and clamping
//   - SortPosts: stable date ordering for the newest/oldest sort orders
//   - ComputeVisiblePage: the page slice, display range and page count
//   - Control and StatusText: the pagination control and status line contracts
//
// Nothing here performs I/O or holds state; the controller package owns the single
// mutable ViewState and calls into these functions on every transition.
package pagination
