package posts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("dense ids and daily dates", func(t *testing.T) {
		got := Generate(DefaultCount)
		require.Len(t, got, DefaultCount)

		start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		for i, p := range got {
			assert.Equal(t, i+1, p.ID)
			assert.True(t, start.AddDate(0, 0, i).Equal(p.Date), "post %d date", p.ID)
		}
	})

	t.Run("templated title and image", func(t *testing.T) {
		got := Generate(3)
		require.Len(t, got, 3)
		assert.Equal(t, "Post 2: Lorem ipsum dolor sit amet, consectetur adipiscing elit", got[1].Title)
		assert.Equal(t, "https://picsum.photos/seed/2/300/200", got[1].Image)
	})

	t.Run("last post crosses into later months", func(t *testing.T) {
		got := Generate(100)
		assert.Equal(t, time.Date(2024, time.April, 9, 0, 0, 0, 0, time.UTC), got[99].Date)
	})

	t.Run("non-positive count", func(t *testing.T) {
		assert.Empty(t, Generate(0))
		assert.NotNil(t, Generate(-5))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Generate(10), Generate(10))
	})
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(5)
	assert.Equal(t, 5, src.Len())

	first := src.Posts()
	first[0].Title = "changed"

	second := src.Posts()
	assert.NotEqual(t, "changed", second[0].Title)
}
