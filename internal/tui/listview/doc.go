// Package listview provides a windowed list component for Bubble Tea models.
//
// Only the rows inside the viewport are rendered, and the window follows the
// selection. Key handling stays with the owning model; listview exposes movement
// methods so the owner can route its own key bindings.
package listview
