package layout

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rovshanmuradov/mirror-dash/internal/ui/panel"
)

func TestFullResolve(t *testing.T) {
	l, err := New(Full())
	require.NoError(t, err)

	rects := l.Resolve(120, 40)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 120, Height: 3}, rects[panel.RegionHeader])
	assert.Equal(t, Rect{X: 0, Y: 3, Width: 60, Height: 24}, rects[panel.RegionWhale])
	assert.Equal(t, Rect{X: 0, Y: 27, Width: 60, Height: 13}, rects[panel.RegionTargets])
	assert.Equal(t, Rect{X: 60, Y: 3, Width: 60, Height: 24}, rects[panel.RegionPositions])
	assert.Equal(t, Rect{X: 60, Y: 27, Width: 30, Height: 13}, rects[panel.RegionWhaleTrade])
	assert.Equal(t, Rect{X: 90, Y: 27, Width: 30, Height: 13}, rects[panel.RegionMyTrade])
}

func TestCompactResolve(t *testing.T) {
	l, err := New(Compact())
	require.NoError(t, err)

	rects := l.Resolve(81, 30)

	_, hasWhale := rects[panel.RegionWhale]
	assert.False(t, hasWhale)
	assert.Equal(t, Rect{X: 0, Y: 3, Width: 40, Height: 27}, rects[panel.RegionTargets])
	assert.Equal(t, Rect{X: 40, Y: 3, Width: 41, Height: 18}, rects[panel.RegionPositions])
	assert.Equal(t, Rect{X: 40, Y: 21, Width: 20, Height: 9}, rects[panel.RegionWhaleTrade])
	assert.Equal(t, Rect{X: 60, Y: 21, Width: 21, Height: 9}, rects[panel.RegionMyTrade])
}

func TestRegionsMatchPanelSets(t *testing.T) {
	full, err := New(Full())
	require.NoError(t, err)
	assert.ElementsMatch(t, panel.FullSet.Regions(), full.Regions())

	compact, err := New(Compact())
	require.NoError(t, err)
	assert.ElementsMatch(t, panel.CompactSet.Regions(), compact.Regions())
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		children []*Node
		total    int
		want     []int
	}{
		{
			name:     "equal halves with remainder",
			children: []*Node{Region("a"), Region("b")},
			total:    11,
			want:     []int{5, 6},
		},
		{
			name:     "fixed then flexible",
			children: []*Node{Region("a").WithSize(3), Region("b")},
			total:    10,
			want:     []int{3, 7},
		},
		{
			name:     "two to one",
			children: []*Node{Region("a").WithRatio(2), Region("b")},
			total:    9,
			want:     []int{6, 3},
		},
		{
			name:     "fixed larger than total",
			children: []*Node{Region("a").WithSize(5), Region("b")},
			total:    2,
			want:     []int{2, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, split(tt.children, tt.total))
		})
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(SplitRow("root", Region("a"), Region("a")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateRegion))
}

func TestBind(t *testing.T) {
	l, err := New(Full())
	require.NoError(t, err)

	_, ok := l.Bound(panel.RegionHeader)
	assert.False(t, ok)

	require.NoError(t, l.Bind(panel.RegionHeader, panel.Panel{Title: "first"}))
	require.NoError(t, l.Bind(panel.RegionHeader, panel.Panel{Title: "second"}))

	p, ok := l.Bound(panel.RegionHeader)
	require.True(t, ok)
	assert.Equal(t, "second", p.Title)

	err = l.Bind("body", panel.Panel{})
	assert.ErrorIs(t, err, ErrUnknownRegion)

	err = l.Bind("nowhere", panel.Panel{})
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestRenderUsesResolvedSizes(t *testing.T) {
	l, err := New(Full())
	require.NoError(t, err)

	sizes := make(map[string]string)
	l.renderer = func(p *panel.Panel, width, height int) string {
		sizes[p.Region] = fmt.Sprintf("%dx%d", width, height)
		return block(width, height)
	}
	l.empty = block

	require.NoError(t, l.Bind(panel.RegionWhale, panel.Panel{Region: panel.RegionWhale}))
	require.NoError(t, l.Bind(panel.RegionMyTrade, panel.Panel{Region: panel.RegionMyTrade}))

	out := l.Render(120, 40)

	assert.Equal(t, "60x24", sizes[panel.RegionWhale])
	assert.Equal(t, "30x13", sizes[panel.RegionMyTrade])

	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 40)
	for _, r := range rows {
		assert.Equal(t, 120, lipgloss.Width(r))
	}
}

func TestRenderDefaultRenderer(t *testing.T) {
	l, err := New(Compact())
	require.NoError(t, err)

	for _, p := range panel.CompactSet.Build(panel.Snapshot{}) {
		require.NoError(t, l.Bind(p.Region, p))
	}

	out := l.Render(100, 30)
	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 30)
	assert.Contains(t, out, "Waiting for bot...")
	assert.Contains(t, out, "No whale trades yet.")
}

func block(width, height int) string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}
	return strings.Join(rows, "\n")
}
