// Package render provides the non-interactive render sink used by `postview list`.
//
// Snapshot records whatever the controller pushes; WriteText and WriteJSON turn a
// snapshot into terminal or machine-readable output.
package render

import (
	"github.com/rshade/postview/internal/controller"
	"github.com/rshade/postview/internal/pagination"
)

// Snapshot is a controller.Sink that keeps the most recent render.
type Snapshot struct {
	Items      []controller.Item    `json:"items"`
	Pagination pagination.Control   `json:"pagination"`
	Status     string               `json:"status"`
	SortOrder  pagination.SortOrder `json:"sortOrder"`
	PageSize   int                  `json:"postsPerPage"`
}

// RenderItems implements controller.Sink.
func (s *Snapshot) RenderItems(items []controller.Item) {
	s.Items = make([]controller.Item, len(items))
	copy(s.Items, items)
}

// RenderPagination implements controller.Sink.
func (s *Snapshot) RenderPagination(c pagination.Control) {
	s.Pagination = c
}

// RenderStatus implements controller.Sink.
func (s *Snapshot) RenderStatus(status string) {
	s.Status = status
}

// RenderSelectors implements controller.Sink.
func (s *Snapshot) RenderSelectors(order pagination.SortOrder, pageSize int) {
	s.SortOrder = order
	s.PageSize = pageSize
}

var _ controller.Sink = (*Snapshot)(nil)
