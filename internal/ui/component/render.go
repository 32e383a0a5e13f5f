// Package component draws panel descriptions as bordered terminal boxes.
package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rovshanmuradov/mirror-dash/internal/ui/panel"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/style"
)

// Box chrome: one column of border on each side plus one column of padding.
const (
	borderWidth  = 2
	paddingWidth = 2
	chromeHeight = 2
)

// Render draws p as a rounded box of exactly width x height cells. Content
// that does not fit is truncated, never wrapped.
func Render(p *panel.Panel, width, height int) string {
	if width <= borderWidth+paddingWidth || height <= chromeHeight {
		return blank(width, height)
	}

	color := p.Border.Color()
	inner := width - borderWidth - paddingWidth
	bodyHeight := height - chromeHeight

	top := topBorder(p.Title, width, color)

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, true, true).
		BorderForeground(color).
		Padding(0, 1).
		Width(width - borderWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight + 1).
		Render(content(p, inner, bodyHeight))

	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

// Empty draws an untitled box for a region nothing was bound to.
func Empty(width, height int) string {
	return Render(&panel.Panel{Border: style.ToneMuted}, width, height)
}

func topBorder(title string, width int, color lipgloss.TerminalColor) string {
	border := lipgloss.RoundedBorder()
	edge := lipgloss.NewStyle().Foreground(color)
	span := width - borderWidth

	if title == "" || span < 6 {
		return edge.Render(border.TopLeft + strings.Repeat(border.Top, span) + border.TopRight)
	}

	// "─ " + title + " " + fill
	title = ansi.Truncate(title, span-4, "…")
	fill := max(span-3-lipgloss.Width(title), 0)

	return edge.Render(border.TopLeft+border.Top+" ") +
		style.PanelTitleStyle.Foreground(color).Render(title) +
		edge.Render(" "+strings.Repeat(border.Top, fill)+border.TopRight)
}

// content renders the panel body fitted to width x height.
func content(p *panel.Panel, width, height int) string {
	var lines []string

	switch {
	case len(p.Grid) > 0:
		lines = append(lines, grid(p.Grid, width))
	case p.Table != nil && len(p.Lines) == 0:
		table := FromPanel(p.Table).SetWidth(width).View()
		for _, l := range strings.Split(table, "\n") {
			lines = append(lines, ansi.Truncate(l, width, ""))
		}
	default:
		for _, l := range p.Lines {
			lines = append(lines, ansi.Truncate(line(l), width, "…"))
		}
	}

	if len(lines) > height {
		lines = lines[:height]
	}

	if p.Centered {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, lines...))
	}
	return strings.Join(lines, "\n")
}

// grid lays cells out in one row: first left, last right, middle centered.
func grid(cells []panel.Line, width int) string {
	n := len(cells)
	each := width / n
	parts := make([]string, n)

	for i, cell := range cells {
		w := each
		align := lipgloss.Center
		switch i {
		case 0:
			align = lipgloss.Left
		case n - 1:
			w = width - each*(n-1)
			align = lipgloss.Right
		}
		parts[i] = lipgloss.NewStyle().
			Width(w).
			Align(align).
			Render(ansi.Truncate(line(cell), w, "…"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// line renders the spans of l with their tones.
func line(l panel.Line) string {
	var b strings.Builder
	for _, s := range l {
		st := s.Tone.Style()
		if s.Bold {
			st = st.Bold(true)
		}
		b.WriteString(st.Render(s.Text))
	}
	return b.String()
}

func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
