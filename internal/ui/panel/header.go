package panel

import (
	"github.com/rovshanmuradov/mirror-dash/internal/ui/style"
)

const brand = "MIRROR-STRIKE"

// Header builds the status bar with the mirror ratio.
func Header(s Snapshot) Panel {
	return header(s, true)
}

// CompactHeader builds the status bar without the mirror ratio.
func CompactHeader(s Snapshot) Panel {
	return header(s, false)
}

func header(s Snapshot, showRatio bool) Panel {
	exec := s.Executor
	if exec == nil {
		return Panel{
			Region: RegionHeader,
			Border: style.ToneLoss,
			Lines:  []Line{{bold("Waiting for bot...", style.ToneWarning)}},
		}
	}

	mode := exec.ModeName()
	modeTone := style.ToneDryRun
	if exec.IsLive() {
		modeTone = style.ToneLive
	}
	pnl := exec.PnL()

	left := Line{bold(brand, style.ToneBrand), plain(" | "), toned(mode, modeTone)}
	if showRatio {
		left = append(left, plain(" | Ratio: "), bold(exec.RatioLabel(), style.ToneEmphasis))
	}

	center := Line{
		plain("Cash: "),
		toned(Money(exec.CashValue()), style.ToneAccent),
		plain(" | Portfolio: "),
		bold(Money(exec.PortfolioTotal()), style.ToneProfit),
	}

	right := Line{
		plain("Updated: " + Clock(exec.UpdatedAt(s.TakenAt))),
		plain(" | PnL: "),
		toned(Money(pnl), style.PnLTone(pnl)),
	}

	return Panel{
		Region: RegionHeader,
		Border: style.ToneInfo,
		Grid:   []Line{left, center, right},
	}
}
