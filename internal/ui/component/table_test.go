package component

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/mirror-dash/internal/ui/panel"
)

func TestTableView(t *testing.T) {
	table := FromPanel(&panel.Table{
		Columns: []panel.Column{
			{Header: "Asset"},
			{Header: "Size", Align: panel.AlignRight},
		},
		Rows: [][]string{
			{"YES-TOKEN", "12.5000"},
			{"A-very-long-asset-name-here", "1.0000"},
		},
	}).SetWidth(21)

	rows := strings.Split(ansi.Strip(table.View()), "\n")
	require.Len(t, rows, 4)

	assert.Equal(t, "Asset     │      Size", rows[0])
	assert.Equal(t, "──────────┼──────────", rows[1])
	assert.Equal(t, "YES-TOKEN │   12.5000", rows[2])
	assert.Equal(t, "A-very-...│    1.0000", rows[3])
	for _, r := range rows {
		assert.Equal(t, 21, lipgloss.Width(r))
	}
}

func TestTableFitsContentWithoutWidth(t *testing.T) {
	table := NewTable().
		AddColumn("A", lipgloss.Left, lipgloss.NewStyle()).
		AddColumn("Long", lipgloss.Left, lipgloss.NewStyle()).
		SetRows([][]string{{"abc", "x"}})

	rows := strings.Split(ansi.Strip(table.View()), "\n")
	assert.Equal(t, "A  │Long", rows[0])
	assert.Equal(t, "abc│x   ", rows[2])
}

func TestTableHeadersOnlyWithoutRows(t *testing.T) {
	table := NewTable().AddColumn("A", lipgloss.Left, lipgloss.NewStyle())

	assert.Equal(t, "A\n─", ansi.Strip(table.View()))
}

func TestTableNoColumns(t *testing.T) {
	assert.Equal(t, "", NewTable().View())
}
