package panel

import (
	"github.com/rovshanmuradov/mirror-dash/internal/state"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/style"
)

const (
	myTradeTitle    = "⚡ My Last Trade"
	whaleTradeTitle = "🐋 Whale Last Trade"
)

// MyLastTrade shows the executor's most recent fill.
func MyLastTrade(s Snapshot) Panel {
	p := Panel{Region: RegionMyTrade, Title: myTradeTitle, Border: style.ToneWarning}

	trade := s.Executor.RecentTrade()
	if trade == nil {
		p.Lines = message("No recent trades.")
		p.Centered = true
		return p
	}

	p.Lines = append(p.Lines, sideLine(trade))

	// A present amount wins over shares even when it is zero.
	switch {
	case trade.Amount.Present():
		if trade.Amount.NonZero() {
			p.Lines = append(p.Lines, Line{plain("Amount: " + Money(trade.Amount.Float()))})
		}
	case trade.Shares.NonZero():
		p.Lines = append(p.Lines, Line{plain("Shares: " + Quantity(trade.Shares.Float()))})
	}

	if trade.Price.NonZero() {
		p.Lines = append(p.Lines, Line{plain(
			"Price: " + Price(trade.Price.Float()) + " | Size: " + Quantity(trade.Size.Float()),
		)})
	}

	if trade.PnL.NonZero() {
		pnl := trade.PnL.Float()
		tone := style.ToneLoss
		if pnl > 0 {
			tone = style.ToneProfit
		}
		p.Lines = append(p.Lines, Line{bold("Realized PnL: ", style.TonePlain), toned(Money(pnl), tone)})
	}
	return p
}

// WhaleLastTrade shows the most recent trade copied from a watched wallet.
func WhaleLastTrade(s Snapshot) Panel {
	p := Panel{Region: RegionWhaleTrade, Title: whaleTradeTitle, Border: style.ToneWhale}

	trade := s.Watcher.RecentWhaleTrade()
	if trade == nil {
		p.Lines = message("No whale trades yet.")
		p.Centered = true
		return p
	}

	p.Lines = append(p.Lines, sideLine(trade))

	if trade.Price.Present() {
		p.Lines = append(p.Lines, Line{plain(
			"Price: " + trade.Price.Raw() + " | Size: " + trade.Size.RawOr("N/A"),
		)})
	}

	if at, ok := trade.ExecutedAt(); ok {
		p.Lines = append(p.Lines, Line{toned("Time: "+Clock(at), style.ToneMuted)})
	}
	return p
}

func sideLine(trade *state.Trade) Line {
	side := trade.SideName()
	return Line{
		bold(side, style.SideTone(side)),
		plain(" " + trade.MarketTitle()),
	}
}
