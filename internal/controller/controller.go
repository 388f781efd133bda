package controller

import (
	"context"
	"fmt"
	"math"

	"github.com/rshade/postview/internal/logging"
	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/posts"
)

// Controller owns the view state for one post collection.
// It is not safe for concurrent use; callers drive it from a single event loop.
type Controller struct {
	posts []posts.Post
	state pagination.ViewState
	store StateStore
	sink  Sink
}

// New creates a controller for items. The initial state is the persisted snapshot
// when store has a usable one, clamped to the collection; otherwise the default.
// A nil sink discards renders and a nil store disables persistence. New does not render.
func New(ctx context.Context, items []posts.Post, store StateStore, sink Sink) *Controller {
	if sink == nil {
		sink = NopSink{}
	}
	if store == nil {
		store = nopStore{}
	}

	c := &Controller{
		posts: items,
		state: pagination.DefaultViewState(),
		store: store,
		sink:  sink,
	}

	logger := logging.ComponentLogger(*logging.FromContext(ctx), "controller")

	restored, ok := store.Load(ctx)
	if !ok {
		logger.Debug().Msg("using default view state")
		return c
	}

	clamped := restored.Clamp(len(items))
	c.state = clamped
	if clamped != restored {
		logger.Info().
			Int("persisted_page", restored.CurrentPage).
			Int("current_page", clamped.CurrentPage).
			Msg("persisted page out of range, clamped")
		store.Save(ctx, clamped)
	}

	logger.Debug().
		Int("current_page", c.state.CurrentPage).
		Int("posts_per_page", c.state.PostsPerPage).
		Str("sort_order", c.state.SortOrder.String()).
		Msg("restored view state")
	return c
}

// State returns a copy of the current view state.
func (c *Controller) State() pagination.ViewState {
	return c.state
}

// Total returns the size of the collection.
func (c *Controller) Total() int {
	return len(c.posts)
}

// Page computes what is currently visible.
func (c *Controller) Page() pagination.Page {
	return pagination.ComputeVisiblePage(c.posts, c.state)
}

// Render pushes the current page, pagination control, status and selectors to the sink.
func (c *Controller) Render(_ context.Context) pagination.Page {
	page := c.Page()
	c.sink.RenderItems(toItems(page.Items))
	c.sink.RenderPagination(pagination.NewControl(c.state.CurrentPage, page.PageCount))
	c.sink.RenderStatus(page.Status())
	c.sink.RenderSelectors(c.state.SortOrder, c.state.PostsPerPage)
	return page
}

// ChangePage moves to newPage, clamped to [1, pageCount].
func (c *Controller) ChangePage(ctx context.Context, newPage int) pagination.ViewState {
	pageCount := c.state.PageCount(len(c.posts))
	applied := pagination.ClampPage(newPage, pageCount)
	if applied != newPage {
		logger := logging.FromContext(ctx)
		logger.Debug().
			Str("component", "controller").
			Int("requested_page", newPage).
			Int("applied_page", applied).
			Int("page_count", pageCount).
			Msg("page request clamped")
	}

	c.state.CurrentPage = applied
	c.commit(ctx)
	return c.state
}

// ChangeSortOrder switches the sort order and returns to the first page.
// Unknown orders are rejected and leave the state untouched.
func (c *Controller) ChangeSortOrder(ctx context.Context, order pagination.SortOrder) (pagination.ViewState, error) {
	if !order.Valid() {
		return c.state, fmt.Errorf("%w: got %q", pagination.ErrInvalidSortOrder, order)
	}

	c.state.SortOrder = order
	c.state.CurrentPage = pagination.DefaultPage
	c.commit(ctx)
	return c.state, nil
}

// ChangePageSize switches the page size and returns to the first page.
// Sizes outside pagination.AllowedPageSizes are rejected and leave the state untouched.
func (c *Controller) ChangePageSize(ctx context.Context, size int) (pagination.ViewState, error) {
	if !pagination.IsAllowedPageSize(size) {
		return c.state, fmt.Errorf("%w: got %d", pagination.ErrInvalidPageSize, size)
	}

	c.state.PostsPerPage = size
	c.state.CurrentPage = pagination.DefaultPage
	c.commit(ctx)
	return c.state, nil
}

// NextPage advances one page, staying on the last page at the end.
func (c *Controller) NextPage(ctx context.Context) pagination.ViewState {
	return c.ChangePage(ctx, c.state.CurrentPage+1)
}

// PreviousPage goes back one page, staying on the first page at the start.
func (c *Controller) PreviousPage(ctx context.Context) pagination.ViewState {
	return c.ChangePage(ctx, c.state.CurrentPage-1)
}

// FirstPage jumps to page 1.
func (c *Controller) FirstPage(ctx context.Context) pagination.ViewState {
	return c.ChangePage(ctx, pagination.DefaultPage)
}

// LastPage jumps to the last page.
func (c *Controller) LastPage(ctx context.Context) pagination.ViewState {
	return c.ChangePage(ctx, math.MaxInt)
}

// ToggleSortOrder flips between newest and oldest.
func (c *Controller) ToggleSortOrder(ctx context.Context) pagination.ViewState {
	v, _ := c.ChangeSortOrder(ctx, c.state.SortOrder.Toggle())
	return v
}

// CyclePageSize moves to the next allowed page size.
func (c *Controller) CyclePageSize(ctx context.Context) pagination.ViewState {
	v, _ := c.ChangePageSize(ctx, pagination.NextPageSize(c.state.PostsPerPage))
	return v
}

// commit re-establishes the page invariant, renders, then persists.
func (c *Controller) commit(ctx context.Context) {
	c.state = c.state.Clamp(len(c.posts))
	c.Render(ctx)
	c.store.Save(ctx, c.state)
}

type nopStore struct{}

func (nopStore) Save(context.Context, pagination.ViewState) {}

func (nopStore) Load(context.Context) (pagination.ViewState, bool) {
	return pagination.ViewState{}, false
}
