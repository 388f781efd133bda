package controller

import (
	"context"

	"github.com/rshade/postview/internal/logging"
	"github.com/rshade/postview/internal/pagination"
)

// Handler types for the three user intents.
type (
	PageHandler      func(ctx context.Context, page int)
	SortOrderHandler func(ctx context.Context, order pagination.SortOrder)
	PageSizeHandler  func(ctx context.Context, size int)
)

// Bridge carries user intent from an input surface to registered handlers.
// Handlers run synchronously, in registration order, on the caller's goroutine.
type Bridge struct {
	pageHandlers []PageHandler
	sortHandlers []SortOrderHandler
	sizeHandlers []PageSizeHandler
}

// NewBridge returns a bridge with no handlers.
func NewBridge() *Bridge {
	return &Bridge{}
}

// OnPageChangeRequested registers h for page requests.
func (b *Bridge) OnPageChangeRequested(h PageHandler) {
	b.pageHandlers = append(b.pageHandlers, h)
}

// OnSortOrderChanged registers h for sort order changes.
func (b *Bridge) OnSortOrderChanged(h SortOrderHandler) {
	b.sortHandlers = append(b.sortHandlers, h)
}

// OnPageSizeChanged registers h for page size changes.
func (b *Bridge) OnPageSizeChanged(h PageSizeHandler) {
	b.sizeHandlers = append(b.sizeHandlers, h)
}

// RequestPage emits a page change request.
func (b *Bridge) RequestPage(ctx context.Context, page int) {
	for _, h := range b.pageHandlers {
		h(ctx, page)
	}
}

// ChangeSortOrder emits a sort order change.
func (b *Bridge) ChangeSortOrder(ctx context.Context, order pagination.SortOrder) {
	for _, h := range b.sortHandlers {
		h(ctx, order)
	}
}

// ChangePageSize emits a page size change.
func (b *Bridge) ChangePageSize(ctx context.Context, size int) {
	for _, h := range b.sizeHandlers {
		h(ctx, size)
	}
}

// Bind routes the bridge's events to c. Rejected sort orders and page sizes are
// logged and leave the view unchanged.
func Bind(b *Bridge, c *Controller) {
	b.OnPageChangeRequested(func(ctx context.Context, page int) {
		c.ChangePage(ctx, page)
	})

	b.OnSortOrderChanged(func(ctx context.Context, order pagination.SortOrder) {
		if _, err := c.ChangeSortOrder(ctx, order); err != nil {
			logger := logging.FromContext(ctx)
			logger.Warn().Str("component", "bridge").Err(err).Msg("sort order change rejected")
		}
	})

	b.OnPageSizeChanged(func(ctx context.Context, size int) {
		if _, err := c.ChangePageSize(ctx, size); err != nil {
			logger := logging.FromContext(ctx)
			logger.Warn().Str("component", "bridge").Err(err).Msg("page size change rejected")
		}
	})
}
