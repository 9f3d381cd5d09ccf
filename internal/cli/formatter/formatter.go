// Package formatter renders labctl terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/services/site/view"
)

// Palette shared with the site stylesheet.
var (
	ColorAccent = lipgloss.Color("#4f6ef7")
	ColorDim    = lipgloss.Color("#94a3b8")
	ColorOK     = lipgloss.Color(view.ColorCompleted)
	ColorError  = lipgloss.Color("#fb4934")
)

// Styler renders styled text, or plain text when Color is off.
type Styler struct {
	Color bool
}

func (s Styler) render(style lipgloss.Style, text string) string {
	if !s.Color {
		return text
	}
	return style.Render(text)
}

// Header renders a section header with an underline.
func (s Styler) Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", s.render(lipgloss.NewStyle().Foreground(ColorAccent).Bold(true), upper), s.Dim(line))
}

// Dim renders muted text.
func (s Styler) Dim(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(ColorDim), text)
}

// OK renders a success line.
func (s Styler) OK(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(ColorOK).Bold(true), text)
}

// Error renders a failure line.
func (s Styler) Error(text string) string {
	return s.render(lipgloss.NewStyle().Foreground(ColorError).Bold(true), text)
}

// Status renders a project status in its badge color.
func (s Styler) Status(status content.Status) string {
	return s.render(lipgloss.NewStyle().Foreground(lipgloss.Color(view.StatusColor(status))), string(status))
}

// Table renders an aligned table with a header separator line. Widths are
// measured on visible text so styled cells line up.
func (s Styler) Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	const colGap = 2
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}
	writeRow(headers, func(text string) string {
		return s.render(lipgloss.NewStyle().Foreground(ColorAccent).Bold(true), text)
	})
	for i, w := range widths {
		b.WriteString(s.Dim(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, func(text string) string { return text })
	}
	return b.String()
}
