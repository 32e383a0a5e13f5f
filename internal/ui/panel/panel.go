// Package panel maps raw state snapshots to renderable panel descriptions.
//
// Builders are pure functions of a Snapshot: they never fail and never read
// the clock, so rendering the same snapshot twice yields identical panels.
package panel

import (
	"strings"
	"time"

	"github.com/rovshanmuradov/mirror-dash/internal/state"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/style"
)

// Region names shared by panel sets and layouts.
const (
	RegionHeader     = "header"
	RegionWhale      = "whale"
	RegionTargets    = "targets"
	RegionPositions  = "positions"
	RegionWhaleTrade = "whale_trade"
	RegionMyTrade    = "my_trade"
)

// Snapshot is everything one render pass sees. Either state may be nil.
type Snapshot struct {
	Executor *state.ExecutorState
	Watcher  *state.WatcherState
	TakenAt  time.Time
}

// Span is a run of text with one tone.
type Span struct {
	Text string
	Tone style.Tone
	Bold bool
}

// Line is a single rendered row made of spans.
type Line []Span

// String returns the line without styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Align is horizontal alignment of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes a table column.
type Column struct {
	Header string
	Align  Align
	Tone   style.Tone
}

// Table is a panel body made of rows under fixed column headers. A table
// with no rows still renders its headers.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// Panel is a renderable panel description. Exactly one of Lines, Grid or
// Table carries the body.
type Panel struct {
	Region string
	Title  string
	Border style.Tone

	// Lines is free text, one entry per row.
	Lines []Line
	// Centered centers every line of Lines horizontally and vertically.
	Centered bool
	// Grid is a single row split into equal columns: the first column is
	// left aligned, the last right aligned, the rest centered.
	Grid []Line
	// Table is a tabular body.
	Table *Table
}

// PlainText returns the panel content without styling, one row per line.
func (p Panel) PlainText() string {
	var rows []string
	if p.Title != "" {
		rows = append(rows, p.Title)
	}
	if len(p.Grid) > 0 {
		cells := make([]string, 0, len(p.Grid))
		for _, cell := range p.Grid {
			cells = append(cells, cell.String())
		}
		rows = append(rows, strings.Join(cells, " | "))
	}
	for _, l := range p.Lines {
		rows = append(rows, l.String())
	}
	if p.Table != nil {
		headers := make([]string, 0, len(p.Table.Columns))
		for _, c := range p.Table.Columns {
			headers = append(headers, c.Header)
		}
		rows = append(rows, strings.Join(headers, " | "))
		for _, r := range p.Table.Rows {
			rows = append(rows, strings.Join(r, " | "))
		}
	}
	return strings.Join(rows, "\n")
}

// HasLine reports whether any text line equals s.
func (p Panel) HasLine(s string) bool {
	for _, l := range p.Lines {
		if l.String() == s {
			return true
		}
	}
	return false
}

func plain(text string) Span {
	return Span{Text: text}
}

func toned(text string, tone style.Tone) Span {
	return Span{Text: text, Tone: tone}
}

func bold(text string, tone style.Tone) Span {
	return Span{Text: text, Tone: tone, Bold: true}
}

// message returns a centered single-line muted panel body.
func message(text string) []Line {
	return []Line{{toned(text, style.ToneMuted)}}
}
