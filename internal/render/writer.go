package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/postview/internal/pagination"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// dateLayout is the display format for post dates.
const dateLayout = "2006-01-02"

// printer formats list positions with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// TextOptions controls WriteText.
type TextOptions struct {
	// Styled enables lipgloss styling; leave false for pipes and files.
	Styled bool

	// Offset is the zero-based index of the first item, used to number rows.
	Offset int
}

// WriteJSON writes the snapshot as indented JSON.
func WriteJSON(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding list output: %w", err)
	}
	return nil
}

// WriteText writes the page as a numbered list followed by the pagination control
// and status line.
func WriteText(w io.Writer, s *Snapshot, opts TextOptions) error {
	titleStyle := lipgloss.NewStyle()
	faintStyle := lipgloss.NewStyle()
	headerStyle := lipgloss.NewStyle()
	if opts.Styled {
		titleStyle = titleStyle.Bold(true)
		faintStyle = faintStyle.Faint(true)
		headerStyle = headerStyle.Bold(true).Foreground(lipgloss.Color("39"))
	}

	var sb strings.Builder
	_, _ = sb.WriteString(headerStyle.Render(fmt.Sprintf("Sort: %s  Show: %d", s.SortOrder, s.PageSize)))
	_, _ = sb.WriteString("\n\n")

	if len(s.Items) == 0 {
		_, _ = sb.WriteString(faintStyle.Render("No posts."))
		_, _ = sb.WriteString("\n")
	}

	width := len(printer.Sprintf("%d", opts.Offset+len(s.Items)))
	for i, item := range s.Items {
		position := printer.Sprintf("%d", opts.Offset+i+1)
		_, _ = sb.WriteString(fmt.Sprintf("%*s. %s\n", width, position, titleStyle.Render(item.Title)))
		_, _ = sb.WriteString(fmt.Sprintf("%*s  %s  %s\n", width, "",
			faintStyle.Render(item.Date.Format(dateLayout)), faintStyle.Render(item.ImageRef)))
	}

	_, _ = sb.WriteString("\n")
	_, _ = sb.WriteString(RenderControl(s.Pagination, faintStyle))
	_, _ = sb.WriteString("\n")
	_, _ = sb.WriteString(s.Status)
	_, _ = sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderControl renders "< 1 / 10 >" with disabled buttons shown in disabledStyle
// and bracketed as "[<]" / "[>]" so the state survives unstyled output.
func RenderControl(c pagination.Control, disabledStyle lipgloss.Style) string {
	prev, next := "<", ">"
	if c.PrevDisabled {
		prev = disabledStyle.Render("[<]")
	}
	if c.NextDisabled {
		next = disabledStyle.Render("[>]")
	}
	return prev + " " + c.Label + " " + next
}
