// Package posts provides the read-only post collection displayed by postview.
//
// The collection is synthetic: Generate produces a deterministic sequence of posts
// from an index, so two runs with the same count always see the same data. Posts are
// never mutated after generation; callers that need a different order copy first.
package posts
