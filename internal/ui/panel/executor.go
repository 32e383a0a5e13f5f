package panel

import (
	"github.com/rovshanmuradov/mirror-dash/internal/ui/style"
)

const positionsTitle = "💼 My Positions"

// MyPositions tabulates the executor's open positions.
func MyPositions(s Snapshot) Panel {
	table := &Table{
		Columns: []Column{
			{Header: "Asset", Align: AlignLeft, Tone: style.ToneAsset},
			{Header: "Size", Align: AlignRight},
			{Header: "Avg Entry", Align: AlignRight},
			{Header: "Total Cost", Align: AlignRight},
		},
	}
	p := Panel{Region: RegionPositions, Title: positionsTitle, Border: style.ToneAsset}

	exec := s.Executor
	if exec == nil {
		p.Table = table
		return p
	}
	if len(exec.Positions) == 0 {
		p.Lines = message("No active positions.")
		p.Centered = true
		return p
	}

	for _, pos := range exec.Positions {
		table.Rows = append(table.Rows, []string{
			TruncateAsset(pos.AssetName()),
			Quantity(pos.Size.Float()),
			Price(pos.AverageEntryPrice.Float()),
			Money(pos.TotalCost.Float()),
		})
	}
	p.Table = table
	return p
}
