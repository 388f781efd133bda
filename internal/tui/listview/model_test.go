package listview

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderInt(item int, _ int, selected bool) string {
	if selected {
		return ">" + strconv.Itoa(item)
	}
	return " " + strconv.Itoa(item)
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestModel_Empty(t *testing.T) {
	m := New(5, renderInt)

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.SelectedItem())
	assert.Empty(t, m.View())

	m.MoveDown()
	assert.Equal(t, 0, m.Selected())
}

func TestModel_Selection(t *testing.T) {
	m := New(5, renderInt)
	m.SetItems(seq(3))

	require.NotNil(t, m.SelectedItem())
	assert.Equal(t, 1, *m.SelectedItem())

	m.MoveDown()
	m.MoveDown()
	m.MoveDown()
	assert.Equal(t, 2, m.Selected())

	m.MoveUp()
	assert.Equal(t, 1, m.Selected())

	m.SetSelected(-4)
	assert.Equal(t, 0, m.Selected())
	m.SetSelected(99)
	assert.Equal(t, 2, m.Selected())
}

func TestModel_SetItemsResetsSelection(t *testing.T) {
	m := New(5, renderInt)
	m.SetItems(seq(10))
	m.SetSelected(7)

	m.SetItems(seq(4))

	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 4, m.Len())
}

func TestModel_Window(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		wantFrom int
		wantTo   int
	}{
		{name: "top", selected: 0, wantFrom: 0, wantTo: 4},
		{name: "middle", selected: 10, wantFrom: 8, wantTo: 12},
		{name: "bottom", selected: 19, wantFrom: 16, wantTo: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(4, renderInt)
			m.SetItems(seq(20))
			m.SetSelected(tt.selected)

			assert.Equal(t, tt.wantFrom, m.VisibleFrom())
			assert.Equal(t, tt.wantTo, m.VisibleTo())
			assert.Len(t, strings.Split(m.View(), "\n"), tt.wantTo-tt.wantFrom)
		})
	}
}

func TestModel_ViewMarksSelection(t *testing.T) {
	m := New(10, renderInt)
	m.SetItems(seq(3))
	m.MoveDown()

	assert.Equal(t, " 1\n>2\n 3", m.View())
}

func TestModel_SetSize(t *testing.T) {
	m := New(10, renderInt)
	m.SetItems(seq(30))
	m.SetSize(80, 0)

	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 1, m.VisibleTo()-m.VisibleFrom())
}
