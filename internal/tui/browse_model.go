package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/postview/internal/controller"
	"github.com/rshade/postview/internal/logging"
	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/render"
	"github.com/rshade/postview/internal/tui/listview"
)

// ViewState is the screen the browse model is showing.
type ViewState int

const (
	// ViewStateList shows the current page.
	ViewStateList ViewState = iota
	// ViewStateDetail shows the selected post.
	ViewStateDetail
	// ViewStateQuitting is set once the user quits.
	ViewStateQuitting
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	// chromeHeight is the number of rows used by everything except the list.
	chromeHeight = 9

	dateLayout = "2006-01-02"
)

// BrowseModel renders pages pushed by the controller and turns key presses into
// bridge events.
type BrowseModel struct {
	ctx    context.Context
	bridge *controller.Bridge

	state ViewState
	keys  keyMap
	help  help.Model

	list     *listview.Model[controller.Item]
	control  pagination.Control
	status   string
	order    pagination.SortOrder
	pageSize int

	width  int
	height int
}

var (
	_ tea.Model       = (*BrowseModel)(nil)
	_ controller.Sink = (*BrowseModel)(nil)
)

// NewBrowseModel creates a model that emits its events on bridge. Pass the model to
// controller.New as the sink and call Render before starting the program.
func NewBrowseModel(ctx context.Context, bridge *controller.Bridge) *BrowseModel {
	m := &BrowseModel{
		ctx:      ctx,
		bridge:   bridge,
		state:    ViewStateList,
		keys:     defaultKeyMap(),
		help:     help.New(),
		order:    pagination.DefaultSortOrder,
		pageSize: pagination.DefaultPostsPerPage,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.list = listview.New(defaultHeight-chromeHeight, m.renderRow)
	return m
}

// RenderItems implements controller.Sink.
func (m *BrowseModel) RenderItems(items []controller.Item) {
	m.list.SetItems(items)
}

// RenderPagination implements controller.Sink.
func (m *BrowseModel) RenderPagination(c pagination.Control) {
	m.control = c
}

// RenderStatus implements controller.Sink.
func (m *BrowseModel) RenderStatus(status string) {
	m.status = status
}

// RenderSelectors implements controller.Sink.
func (m *BrowseModel) RenderSelectors(order pagination.SortOrder, pageSize int) {
	m.order = order
	m.pageSize = pageSize
}

// Init implements tea.Model.
func (m *BrowseModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(msg.Width, msg.Height-chromeHeight)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		switch m.state {
		case ViewStateList:
			m.handleListKey(msg)
		case ViewStateDetail:
			if key.Matches(msg, m.keys.Back) {
				m.state = ViewStateList
			}
		case ViewStateQuitting:
		}
	}
	return m, nil
}

//nolint:cyclop // One branch per binding.
func (m *BrowseModel) handleListKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.PrevPage):
		if !m.control.PrevDisabled {
			m.requestPage(m.control.Current - 1)
		}
	case key.Matches(msg, m.keys.NextPage):
		if !m.control.NextDisabled {
			m.requestPage(m.control.Current + 1)
		}
	case key.Matches(msg, m.keys.FirstPage):
		m.requestPage(pagination.MinPage)
	case key.Matches(msg, m.keys.LastPage):
		m.requestPage(m.control.Count)
	case key.Matches(msg, m.keys.Sort):
		m.bridge.ChangeSortOrder(m.ctx, m.order.Toggle())
	case key.Matches(msg, m.keys.PageSize):
		m.bridge.ChangePageSize(m.ctx, pagination.NextPageSize(m.pageSize))
	case key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
	case key.Matches(msg, m.keys.Open):
		if m.list.SelectedItem() != nil {
			m.state = ViewStateDetail
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

func (m *BrowseModel) requestPage(page int) {
	logger := logging.FromContext(m.ctx)
	logger.Debug().Str("component", "tui").Int("page", page).Msg("page requested")
	m.bridge.RequestPage(m.ctx, page)
}

// View implements tea.Model.
func (m *BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.detailView()
	case ViewStateList:
	}
	return m.listView()
}

func (m *BrowseModel) listView() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Posts"))
	sb.WriteString("\n")
	sb.WriteString(m.selectorsView())
	sb.WriteString("\n\n")

	if m.list.Len() == 0 {
		sb.WriteString(SubtleStyle.Render("No posts."))
	} else {
		sb.WriteString(m.list.View())
	}
	sb.WriteString("\n\n")

	sb.WriteString(render.RenderControl(m.control, DisabledStyle))
	sb.WriteString("\n")
	sb.WriteString(SubtleStyle.Render(m.status))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func (m *BrowseModel) selectorsView() string {
	return LabelStyle.Render("Sort: ") + ValueStyle.Render(sortOrderLabel(m.order)) +
		LabelStyle.Render("   Show: ") + ValueStyle.Render(strconv.Itoa(m.pageSize))
}

func (m *BrowseModel) renderRow(item controller.Item, index int, selected bool) string {
	position := m.rowOffset() + index + 1
	row := fmt.Sprintf("%4d. %s  %s", position, item.Title, item.Date.Format(dateLayout))
	row = lipgloss.NewStyle().MaxWidth(m.width).Render(row)
	if selected {
		return SelectedStyle.Render(row)
	}
	return row
}

func (m *BrowseModel) rowOffset() int {
	if m.control.Current < pagination.MinPage {
		return 0
	}
	return (m.control.Current - 1) * m.pageSize
}

func (m *BrowseModel) detailView() string {
	item := m.list.SelectedItem()
	if item == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("POST DETAIL"))
	sb.WriteString("\n")
	writeField(&sb, "ID:     ", strconv.Itoa(item.ID))
	writeField(&sb, "Title:  ", item.Title)
	writeField(&sb, "Image:  ", item.ImageRef)
	writeField(&sb, "Date:   ", item.Date.Format(dateLayout))

	box := BoxStyle.Width(max(m.width-4, 20)).Render(strings.TrimRight(sb.String(), "\n"))
	return box + "\n" + SubtleStyle.Render("esc back • q quit")
}

func writeField(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Render(label))
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}

func sortOrderLabel(o pagination.SortOrder) string {
	if o == pagination.SortOldest {
		return "Oldest first"
	}
	return "Newest first"
}

// State returns the screen currently shown.
func (m *BrowseModel) State() ViewState {
	return m.state
}
