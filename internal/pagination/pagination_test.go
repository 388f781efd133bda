package pagination

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/postview/internal/posts"
)

func ids(items []posts.Post) []int {
	out := make([]int, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestViewState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		state   ViewState
		wantErr error
	}{
		{
			name:  "valid default",
			state: DefaultViewState(),
		},
		{
			name:  "valid oldest page 5",
			state: ViewState{CurrentPage: 5, PostsPerPage: 50, SortOrder: SortOldest},
		},
		{
			name:    "zero page",
			state:   ViewState{CurrentPage: 0, PostsPerPage: 10, SortOrder: SortNewest},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "page size not allowed",
			state:   ViewState{CurrentPage: 1, PostsPerPage: 15, SortOrder: SortNewest},
			wantErr: ErrInvalidPageSize,
		},
		{
			name:    "unknown sort order",
			state:   ViewState{CurrentPage: 1, PostsPerPage: 10, SortOrder: "random"},
			wantErr: ErrInvalidSortOrder,
		},
		{
			name:    "empty sort order",
			state:   ViewState{CurrentPage: 1, PostsPerPage: 10},
			wantErr: ErrInvalidSortOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    SortOrder
		wantErr bool
	}{
		{in: "newest", want: SortNewest},
		{in: "oldest", want: SortOldest},
		{in: " OLDEST ", want: SortOldest},
		{in: "asc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortOrder(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSortOrder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageSizes(t *testing.T) {
	t.Run("ParsePageSize", func(t *testing.T) {
		got, err := ParsePageSize("20")
		require.NoError(t, err)
		assert.Equal(t, 20, got)

		_, err = ParsePageSize("25")
		assert.ErrorIs(t, err, ErrInvalidPageSize)

		_, err = ParsePageSize("ten")
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("NextPageSize wraps", func(t *testing.T) {
		assert.Equal(t, 20, NextPageSize(10))
		assert.Equal(t, 50, NextPageSize(20))
		assert.Equal(t, 10, NextPageSize(50))
		assert.Equal(t, 10, NextPageSize(7))
	})

	t.Run("Toggle", func(t *testing.T) {
		assert.Equal(t, SortOldest, SortNewest.Toggle())
		assert.Equal(t, SortNewest, SortOldest.Toggle())
	})
}

func TestCalculations(t *testing.T) {
	t.Run("CalculateTotalPages", func(t *testing.T) {
		assert.Equal(t, 10, CalculateTotalPages(100, 10))
		assert.Equal(t, 5, CalculateTotalPages(100, 20))
		assert.Equal(t, 2, CalculateTotalPages(100, 50))
		assert.Equal(t, 11, CalculateTotalPages(101, 10))
		assert.Equal(t, 1, CalculateTotalPages(3, 10))
		assert.Equal(t, 0, CalculateTotalPages(0, 10))
		assert.Equal(t, 0, CalculateTotalPages(10, 0))
	})

	t.Run("ClampPage", func(t *testing.T) {
		assert.Equal(t, 1, ClampPage(-3, 10))
		assert.Equal(t, 1, ClampPage(0, 10))
		assert.Equal(t, 4, ClampPage(4, 10))
		assert.Equal(t, 10, ClampPage(99, 10))
		assert.Equal(t, 1, ClampPage(5, 0))
	})

	t.Run("Clamp keeps other fields", func(t *testing.T) {
		v := ViewState{CurrentPage: 40, PostsPerPage: 20, SortOrder: SortOldest}
		got := v.Clamp(100)
		assert.Equal(t, ViewState{CurrentPage: 5, PostsPerPage: 20, SortOrder: SortOldest}, got)
		assert.Equal(t, 40, v.CurrentPage, "Clamp must not modify the receiver")
	})
}

func TestSortPosts(t *testing.T) {
	items := posts.Generate(5)

	t.Run("newest first", func(t *testing.T) {
		assert.Equal(t, []int{5, 4, 3, 2, 1}, ids(SortPosts(items, SortNewest)))
	})

	t.Run("oldest first", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(SortPosts(items, SortOldest)))
	})

	t.Run("does not modify input", func(t *testing.T) {
		_ = SortPosts(items, SortNewest)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(items))
	})

	t.Run("ties keep insertion order in both directions", func(t *testing.T) {
		day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		tied := []posts.Post{
			{ID: 1, Date: day},
			{ID: 2, Date: day.AddDate(0, 0, 1)},
			{ID: 3, Date: day},
			{ID: 4, Date: day.AddDate(0, 0, 1)},
			{ID: 5, Date: day},
		}
		assert.Equal(t, []int{2, 4, 1, 3, 5}, ids(SortPosts(tied, SortNewest)))
		assert.Equal(t, []int{1, 3, 5, 2, 4}, ids(SortPosts(tied, SortOldest)))
	})

	t.Run("idempotent", func(t *testing.T) {
		once := SortPosts(items, SortOldest)
		twice := SortPosts(once, SortOldest)
		assert.Equal(t, once, twice)
	})
}

func TestComputeVisiblePage(t *testing.T) {
	all := posts.Generate(100)

	t.Run("first page newest", func(t *testing.T) {
		page := ComputeVisiblePage(all, DefaultViewState())
		assert.Equal(t, []int{100, 99, 98, 97, 96, 95, 94, 93, 92, 91}, ids(page.Items))
		assert.Equal(t, 1, page.RangeStart)
		assert.Equal(t, 10, page.RangeEnd)
		assert.Equal(t, 10, page.PageCount)
		assert.Equal(t, "Showing 1 - 10 of 100 items", page.Status())

		for i := 1; i < len(page.Items); i++ {
			assert.True(t, page.Items[i-1].Date.After(page.Items[i].Date))
		}
	})

	t.Run("last page", func(t *testing.T) {
		page := ComputeVisiblePage(all, ViewState{CurrentPage: 10, PostsPerPage: 10, SortOrder: SortNewest})
		assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, ids(page.Items))
		assert.Equal(t, "Showing 91 - 100 of 100 items", page.Status())
	})

	t.Run("page size 20", func(t *testing.T) {
		page := ComputeVisiblePage(all, ViewState{CurrentPage: 1, PostsPerPage: 20, SortOrder: SortNewest})
		assert.Equal(t, 5, page.PageCount)
		assert.Len(t, page.Items, 20)
	})

	t.Run("oldest second page", func(t *testing.T) {
		page := ComputeVisiblePage(all, ViewState{CurrentPage: 2, PostsPerPage: 10, SortOrder: SortOldest})
		assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, ids(page.Items))
		assert.Equal(t, "Showing 11 - 20 of 100 items", page.Status())
	})

	t.Run("partial last page", func(t *testing.T) {
		page := ComputeVisiblePage(posts.Generate(45), ViewState{CurrentPage: 3, PostsPerPage: 20, SortOrder: SortOldest})
		assert.Equal(t, 3, page.PageCount)
		assert.Equal(t, []int{41, 42, 43, 44, 45}, ids(page.Items))
		assert.Equal(t, "Showing 41 - 45 of 45 items", page.Status())
	})

	t.Run("empty collection", func(t *testing.T) {
		page := ComputeVisiblePage(nil, DefaultViewState())
		assert.Equal(t, 0, page.PageCount)
		assert.Empty(t, page.Items)
		assert.NotNil(t, page.Items)
		assert.Equal(t, "Showing 0 - 0 of 0 items", page.Status())
	})

	t.Run("page past the end yields nothing", func(t *testing.T) {
		page := ComputeVisiblePage(all, ViewState{CurrentPage: 11, PostsPerPage: 10, SortOrder: SortNewest})
		assert.Empty(t, page.Items)
		assert.Equal(t, 10, page.PageCount)
	})

	t.Run("huge page does not wrap to the start", func(t *testing.T) {
		page := ComputeVisiblePage(all, ViewState{CurrentPage: math.MaxInt/10 + 2, PostsPerPage: 10, SortOrder: SortNewest})
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.RangeStart)
		assert.Equal(t, 0, page.RangeEnd)
		assert.Equal(t, 10, page.PageCount)
	})

	t.Run("item count property", func(t *testing.T) {
		for _, n := range []int{1, 9, 10, 11, 49, 50, 51, 100, 137} {
			items := posts.Generate(n)
			for _, size := range AllowedPageSizes {
				for _, order := range []SortOrder{SortNewest, SortOldest} {
					count := CalculateTotalPages(n, size)
					for p := 1; p <= count; p++ {
						page := ComputeVisiblePage(items, ViewState{CurrentPage: p, PostsPerPage: size, SortOrder: order})
						assert.LessOrEqual(t, len(page.Items), size)
						if p != count {
							assert.Len(t, page.Items, size, "n=%d size=%d page=%d", n, size, p)
						}
					}
				}
			}
		}
	})
}

func TestNewControl(t *testing.T) {
	tests := []struct {
		name    string
		current int
		count   int
		want    Control
	}{
		{
			name:    "first of ten",
			current: 1,
			count:   10,
			want:    Control{PrevDisabled: true, NextDisabled: false, Label: "1 / 10", Current: 1, Count: 10},
		},
		{
			name:    "middle",
			current: 4,
			count:   10,
			want:    Control{PrevDisabled: false, NextDisabled: false, Label: "4 / 10", Current: 4, Count: 10},
		},
		{
			name:    "last",
			current: 10,
			count:   10,
			want:    Control{PrevDisabled: false, NextDisabled: true, Label: "10 / 10", Current: 10, Count: 10},
		},
		{
			name:    "single page",
			current: 1,
			count:   1,
			want:    Control{PrevDisabled: true, NextDisabled: true, Label: "1 / 1", Current: 1, Count: 1},
		},
		{
			name:    "no pages",
			current: 1,
			count:   0,
			want:    Control{PrevDisabled: true, NextDisabled: true, Label: "1 / 0", Current: 1, Count: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewControl(tt.current, tt.count))
		})
	}
}
