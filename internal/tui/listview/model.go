package listview

import "strings"

// halfViewportDivisor is used to centre the selection in the viewport.
const halfViewportDivisor = 2

// RenderFunc renders one row. index is the row's position in the list.
type RenderFunc[T any] func(item T, index int, selected bool) string

// Model is a windowed, selectable list of T.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected    int
	visibleFrom int
	visibleTo   int

	height int
	width  int
}

// New creates a list with the given viewport height.
func New[T any](height int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		renderFunc: renderFunc,
		height:     height,
	}
	m.updateVisibleRange()
	return m
}

// SetItems replaces the list contents and moves the selection to the first row.
func (m *Model[T]) SetItems(items []T) {
	m.items = append(m.items[:0], items...)
	m.selected = 0
	m.updateVisibleRange()
}

// SetSize updates the viewport dimensions.
func (m *Model[T]) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	m.width = width
	m.height = height
	m.updateVisibleRange()
}

// MoveUp selects the previous row.
func (m *Model[T]) MoveUp() {
	m.SetSelected(m.selected - 1)
}

// MoveDown selects the next row.
func (m *Model[T]) MoveDown() {
	m.SetSelected(m.selected + 1)
}

// SetSelected selects index, capped to the list bounds.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// updateVisibleRange keeps the selected row inside [visibleFrom, visibleTo).
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	from := m.selected - m.height/halfViewportDivisor
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom, m.visibleTo = from, to
}

// View renders the visible rows.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		if i > m.visibleFrom {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.renderFunc(m.items[i], i, i == m.selected))
	}
	return sb.String()
}

// Len returns the number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the selected index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, or nil when the list is empty.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}

// VisibleFrom returns the first visible index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return m.visibleTo
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}
