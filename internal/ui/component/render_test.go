package component

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/mirror-dash/internal/ui/panel"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/style"
)

func assertSize(t *testing.T, out string, width, height int) {
	t.Helper()
	rows := strings.Split(out, "\n")
	require.Len(t, rows, height)
	for i, r := range rows {
		assert.Equal(t, width, lipgloss.Width(r), "row %d: %q", i, ansi.Strip(r))
	}
}

func TestRenderExactSize(t *testing.T) {
	p := &panel.Panel{
		Title:  "⚡ My Last Trade",
		Border: style.ToneWarning,
		Lines: []panel.Line{
			{{Text: "BUY", Tone: style.ToneBuy, Bold: true}, {Text: " Will it rain tomorrow in a very long title"}},
			{{Text: "Amount: $25.00"}},
		},
	}

	for _, size := range [][2]int{{40, 8}, {20, 4}, {12, 3}} {
		out := Render(p, size[0], size[1])
		assertSize(t, out, size[0], size[1])
	}
}

func TestRenderTitleAndBody(t *testing.T) {
	p := &panel.Panel{
		Title:  "🎯 Targets Monitor",
		Border: style.ToneAddress,
		Lines:  []panel.Line{{{Text: "hello"}}},
	}

	out := ansi.Strip(Render(p, 40, 5))
	rows := strings.Split(out, "\n")

	assert.True(t, strings.HasPrefix(rows[0], "╭─ 🎯 Targets Monitor "))
	assert.True(t, strings.HasSuffix(rows[0], "╮"))
	assert.Equal(t, "│ hello", strings.TrimRight(rows[1], " │"))
	assert.True(t, strings.HasPrefix(rows[4], "╰"))
}

func TestRenderTruncatesOverflow(t *testing.T) {
	var lines []panel.Line
	for i := 0; i < 20; i++ {
		lines = append(lines, panel.Line{{Text: strings.Repeat("x", 100)}})
	}
	p := &panel.Panel{Title: "Overflow", Lines: lines}

	out := Render(p, 30, 6)
	assertSize(t, out, 30, 6)
	assert.Contains(t, ansi.Strip(out), "…")
}

func TestRenderCentered(t *testing.T) {
	p := &panel.Panel{
		Title:    "💼 My Positions",
		Centered: true,
		Lines:    []panel.Line{{{Text: "No active positions.", Tone: style.ToneMuted}}},
	}

	out := Render(p, 50, 7)
	assertSize(t, out, 50, 7)

	rows := strings.Split(ansi.Strip(out), "\n")
	assert.NotContains(t, rows[1], "No active positions.")
	assert.Contains(t, rows[3], "No active positions.")
}

func TestRenderGrid(t *testing.T) {
	p := &panel.Panel{
		Border: style.ToneInfo,
		Grid: []panel.Line{
			{{Text: "LEFT"}},
			{{Text: "MID"}},
			{{Text: "RIGHT"}},
		},
	}

	out := Render(p, 62, 3)
	assertSize(t, out, 62, 3)

	row := ansi.Strip(strings.Split(out, "\n")[1])
	assert.True(t, strings.HasPrefix(row, "│ LEFT"))
	assert.True(t, strings.HasSuffix(row, "RIGHT │"))
	assert.Contains(t, row, "MID")
}

func TestRenderTableHeadersOnly(t *testing.T) {
	p := panel.TargetsMonitor(panel.Snapshot{})

	out := ansi.Strip(Render(&p, 60, 6))
	assert.Contains(t, out, "Address")
	assert.Contains(t, out, "Last Check")
	assert.Contains(t, out, "Tx Processed")
	assert.Contains(t, out, "┼")
}

func TestRenderTinyIsBlank(t *testing.T) {
	out := Render(&panel.Panel{Title: "x"}, 3, 2)
	assert.Equal(t, "   \n   ", out)
	assert.Equal(t, "", Render(&panel.Panel{}, 0, 0))
}

func TestEmpty(t *testing.T) {
	out := Empty(10, 3)
	assertSize(t, out, 10, 3)
	assert.Equal(t, "╭────────╮", strings.Split(ansi.Strip(out), "\n")[0])
}
