package posts

// Source supplies an ordered, read-only sequence of posts.
type Source interface {
	// Posts returns the collection in insertion order. Callers must not modify it.
	Posts() []Post
}

// StaticSource serves a fixed collection generated once at construction.
type StaticSource struct {
	posts []Post
}

// NewStaticSource generates count posts and wraps them in a Source.
func NewStaticSource(count int) *StaticSource {
	return &StaticSource{posts: Generate(count)}
}

// Posts returns a copy of the collection so callers cannot mutate the source.
func (s *StaticSource) Posts() []Post {
	out := make([]Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Len returns the number of posts.
func (s *StaticSource) Len() int {
	return len(s.posts)
}

var _ Source = (*StaticSource)(nil)
