package posts

import (
	"fmt"
	"time"
)

// Generator templates and defaults.
const (
	// DefaultCount is the number of posts generated when no count is configured.
	DefaultCount = 100

	titleTemplate = "Post %d: Lorem ipsum dolor sit amet, consectetur adipiscing elit"
	imageTemplate = "https://picsum.photos/seed/%d/300/200"
)

// Post is a single read-only list entry.
type Post struct {
	// ID is unique and dense (1..N), independent of display order.
	ID int `json:"id"`

	// Title is the display string.
	Title string `json:"title"`

	// Image is a URL reference to the post's display asset.
	Image string `json:"image"`

	// Date is used only as a sort key.
	Date time.Time `json:"date"`
}

// baseDate returns the date of the first generated post.
func baseDate() time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// Generate returns n posts where post i (0-based) has ID i+1 and a date i days after
// 2024-01-01 UTC. A non-positive n yields an empty, non-nil slice.
func Generate(n int) []Post {
	if n <= 0 {
		return []Post{}
	}

	out := make([]Post, n)
	start := baseDate()
	for i := range n {
		id := i + 1
		out[i] = Post{
			ID:    id,
			Title: fmt.Sprintf(titleTemplate, id),
			Image: fmt.Sprintf(imageTemplate, id),
			Date:  start.AddDate(0, 0, i),
		}
	}
	return out
}
