package panel

import (
	"strconv"
	"strings"

	"github.com/rovshanmuradov/mirror-dash/internal/state"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/style"
)

const (
	whaleTitle   = "🐋 Whale Portfolio"
	targetsTitle = "🎯 Targets Monitor"
)

// WhalePortfolio lists every watched wallet with its USDC balance and open
// positions.
func WhalePortfolio(s Snapshot) Panel {
	p := Panel{Region: RegionWhale, Title: whaleTitle, Border: style.ToneWhale}

	w := s.Watcher
	if w == nil {
		p.Lines = message("Waiting for watcher...")
		return p
	}
	if len(w.Targets) == 0 {
		p.Lines = message("No targets configured.")
		return p
	}

	for i, t := range w.Targets {
		if i > 0 {
			p.Lines = append(p.Lines, Line{})
		}
		p.Lines = append(p.Lines,
			Line{bold(ShortAddress(t.Address.String()), style.ToneAddress)},
			Line{bold("USDC: ", style.TonePlain), toned(Balance(t.USDCBalance.Float()), style.ToneAccent)},
		)

		if len(t.Positions) == 0 {
			p.Lines = append(p.Lines, Line{toned("  No positions", style.ToneMuted)})
			continue
		}
		for _, wp := range t.Positions {
			p.Lines = append(p.Lines, whalePositionLine(wp))
		}
	}
	return p
}

func whalePositionLine(wp state.WhalePosition) Line {
	outcome := wp.Outcome.String()
	line := Line{
		plain("  " + TruncateTitle(wp.Title.Or("?")) + " "),
		toned("["+outcome+"]", outcomeTone(outcome)),
		plain(" " + wp.Size.RawOr("0") + "@" + wp.AvgPrice.RawOr("0")),
	}
	if wp.CurPrice.Float() > 0 {
		line = append(line, toned(" now:"+wp.CurPrice.Raw(), style.ToneMuted))
	}
	return line
}

func outcomeTone(outcome string) style.Tone {
	switch strings.ToLower(outcome) {
	case "yes":
		return style.ToneProfit
	case "no":
		return style.ToneLoss
	default:
		return style.TonePlain
	}
}

// TargetsMonitor tabulates polling activity per watched wallet.
func TargetsMonitor(s Snapshot) Panel {
	table := &Table{
		Columns: []Column{
			{Header: "Address", Align: AlignLeft, Tone: style.ToneAddress},
			{Header: "Last Check", Align: AlignRight},
			{Header: "Tx Processed", Align: AlignRight},
		},
	}
	p := Panel{Region: RegionTargets, Title: targetsTitle, Border: style.ToneAddress, Table: table}

	if s.Watcher == nil {
		return p
	}

	for _, t := range s.Watcher.Targets {
		checked := "Never"
		if at, ok := t.CheckedAt(); ok {
			checked = Clock(at)
		}
		table.Rows = append(table.Rows, []string{
			ShortAddress(t.Address.String()),
			checked,
			count(t.TxCount),
		})
	}
	return p
}

// count renders an integer counter, keeping non-numeric producer text.
func count(n state.Number) string {
	if !n.Present() {
		return "0"
	}
	if !n.Numeric() {
		return n.Raw()
	}
	return strconv.FormatInt(int64(n.Float()), 10)
}
