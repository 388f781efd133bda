package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/postview/internal/pagination"
)

func TestBridge_HandlersRunInOrder(t *testing.T) {
	b := NewBridge()
	var calls []string

	b.OnPageChangeRequested(func(_ context.Context, page int) {
		calls = append(calls, "first")
		assert.Equal(t, 3, page)
	})
	b.OnPageChangeRequested(func(_ context.Context, _ int) {
		calls = append(calls, "second")
	})

	b.RequestPage(context.Background(), 3)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBridge_NoHandlers(t *testing.T) {
	b := NewBridge()
	assert.NotPanics(t, func() {
		ctx := context.Background()
		b.RequestPage(ctx, 1)
		b.ChangeSortOrder(ctx, pagination.SortOldest)
		b.ChangePageSize(ctx, 20)
	})
}

func TestBind(t *testing.T) {
	ctx := context.Background()
	c, sink, _ := newTestController(t, 100)
	b := NewBridge()
	Bind(b, c)

	b.RequestPage(ctx, 6)
	assert.Equal(t, 6, c.State().CurrentPage)
	assert.Equal(t, "Showing 51 - 60 of 100 items", sink.status)

	b.ChangeSortOrder(ctx, pagination.SortOldest)
	assert.Equal(t, pagination.ViewState{CurrentPage: 1, PostsPerPage: 10, SortOrder: pagination.SortOldest}, c.State())

	b.RequestPage(ctx, 2)
	b.ChangePageSize(ctx, 50)
	assert.Equal(t, pagination.ViewState{CurrentPage: 1, PostsPerPage: 50, SortOrder: pagination.SortOldest}, c.State())
}

func TestBind_RejectedInputIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	c, _, _ := newTestController(t, 100)
	b := NewBridge()
	Bind(b, c)

	b.ChangePageSize(ctx, 33)
	b.ChangeSortOrder(ctx, "upside-down")

	assert.Equal(t, pagination.DefaultViewState(), c.State())
	assert.Contains(t, buf.String(), "page size change rejected")
	assert.Contains(t, buf.String(), "sort order change rejected")
}
