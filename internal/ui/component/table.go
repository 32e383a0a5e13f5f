package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rovshanmuradov/mirror-dash/internal/ui/panel"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/style"
)

const (
	cellSeparator   = "│"
	headerRule      = "─"
	headerRuleCross = "┼"
)

// TableColumn represents a column configuration
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
	Style  lipgloss.Style
}

// Table renders a panel table inside a fixed width
type Table struct {
	columns []TableColumn
	rows    [][]string
	width   int

	headerStyle    lipgloss.Style
	separatorStyle lipgloss.Style
}

// NewTable creates a new table component
func NewTable() *Table {
	return &Table{
		headerStyle:    style.TableHeaderStyle,
		separatorStyle: style.TableSeparatorStyle,
	}
}

// FromPanel creates a table from a panel table description.
func FromPanel(t *panel.Table) *Table {
	table := NewTable()
	for _, c := range t.Columns {
		table.AddColumn(c.Header, position(c.Align), c.Tone.Style())
	}
	return table.SetRows(t.Rows)
}

// AddColumn adds an auto-width column to the table
func (t *Table) AddColumn(header string, align lipgloss.Position, cellStyle lipgloss.Style) *Table {
	t.columns = append(t.columns, TableColumn{
		Header: header,
		Align:  align,
		Style:  cellStyle,
	})
	return t
}

// SetRows sets all table rows
func (t *Table) SetRows(rows [][]string) *Table {
	t.rows = rows
	return t
}

// SetWidth sets the table width in cells
func (t *Table) SetWidth(width int) *Table {
	t.width = width
	return t
}

// View renders the table, one line per row
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.columnWidths()
	sep := t.separatorStyle.Render(cellSeparator)

	cells := make([]string, len(t.columns))
	rules := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = renderCell(col.Header, widths[i], col.Align, t.headerStyle)
		rules[i] = strings.Repeat(headerRule, widths[i])
	}
	lines := []string{
		strings.Join(cells, sep),
		t.separatorStyle.Render(strings.Join(rules, headerRuleCross)),
	}

	for _, row := range t.rows {
		rowCells := make([]string, len(t.columns))
		for i, col := range t.columns {
			data := ""
			if i < len(row) {
				data = row[i]
			}
			rowCells[i] = renderCell(data, widths[i], col.Align, col.Style)
		}
		lines = append(lines, strings.Join(rowCells, sep))
	}

	return strings.Join(lines, "\n")
}

// renderCell renders a single table cell
func renderCell(content string, width int, align lipgloss.Position, cellStyle lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(content) > width {
		tail := "..."
		if width <= len(tail) {
			tail = ""
		}
		content = runewidth.Truncate(content, width, tail)
	}
	return cellStyle.Width(width).MaxWidth(width).Align(align).Render(content)
}

// columnWidths splits the table width evenly across columns, giving the
// remainder to the last column. Without a width, columns fit their content.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))

	if t.width <= 0 {
		for i, col := range t.columns {
			widths[i] = runewidth.StringWidth(col.Header)
			for _, row := range t.rows {
				if i < len(row) {
					widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
				}
			}
		}
		return widths
	}

	separatorWidth := len(t.columns) - 1
	available := t.width - separatorWidth
	if available < len(t.columns) {
		available = len(t.columns)
	}

	each := available / len(t.columns)
	for i := range widths {
		widths[i] = each
	}
	widths[len(widths)-1] += available - each*len(t.columns)
	return widths
}

func position(a panel.Align) lipgloss.Position {
	switch a {
	case panel.AlignCenter:
		return lipgloss.Center
	case panel.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
