package controller

import (
	"context"
	"time"

	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/posts"
)

// Item is one rendered list entry.
type Item struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	ImageRef string    `json:"imageRef"`
	Date     time.Time `json:"date"`
}

// Sink displays computed output. Implementations must not retain the slices they receive.
type Sink interface {
	// RenderItems replaces the displayed list.
	RenderItems(items []Item)

	// RenderPagination updates the pagination control.
	RenderPagination(control pagination.Control)

	// RenderStatus updates the status line.
	RenderStatus(status string)

	// RenderSelectors reflects the active sort order and page size in the sink's pickers.
	RenderSelectors(order pagination.SortOrder, pageSize int)
}

// StateStore persists the view state. Save must not fail the caller; Load reports
// false when nothing usable is stored.
type StateStore interface {
	Save(ctx context.Context, v pagination.ViewState)
	Load(ctx context.Context) (pagination.ViewState, bool)
}

func toItems(in []posts.Post) []Item {
	out := make([]Item, len(in))
	for i, p := range in {
		out[i] = Item{
			ID:       p.ID,
			Title:    p.Title,
			ImageRef: p.Image,
			Date:     p.Date,
		}
	}
	return out
}

// NopSink discards everything. Useful when only the state transition matters.
type NopSink struct{}

func (NopSink) RenderItems([]Item) {}

func (NopSink) RenderPagination(pagination.Control) {}

func (NopSink) RenderStatus(string) {}

func (NopSink) RenderSelectors(pagination.SortOrder, int) {}

var _ Sink = NopSink{}
