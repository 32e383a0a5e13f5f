package state

import (
	"time"
)

// Mode names written by the executor.
const (
	ModeLive    = "LIVE"
	ModeDryRun  = "DRY-RUN"
	ModeUnknown = "UNKNOWN"
)

// Trade sides.
const (
	SideBuy     = "BUY"
	SideSell    = "SELL"
	SideUnknown = "UNKNOWN"
)

// millisThreshold separates epoch seconds from epoch milliseconds.
const millisThreshold = 100_000_000_000

// ExecutorState is the snapshot written by the trading process to
// dashboard-executor.json.
type ExecutorState struct {
	Timestamp      Number     `json:"timestamp"`
	Mode           Text       `json:"mode"`
	Cash           Number     `json:"cash"`
	Balance        Number     `json:"balance"`
	Portfolio      Number     `json:"portfolio"`
	PortfolioValue Number     `json:"portfolioValue"`
	TotalPnL       Number     `json:"totalPnL"`
	MirrorRatio    Number     `json:"mirrorRatio"`
	Positions      Positions  `json:"positions"`
	LastTrade      *Trade     `json:"lastTrade"`
}

// WatcherState is the snapshot written by the chain watcher to
// dashboard-watcher.json.
type WatcherState struct {
	Timestamp      Number  `json:"timestamp"`
	Targets        Targets `json:"targets"`
	LastWhaleTrade *Trade  `json:"lastWhaleTrade"`
}

// Position is one of our own holdings.
type Position struct {
	Asset             Text   `json:"asset"`
	Size              Number `json:"size"`
	AverageEntryPrice Number `json:"averageEntryPrice"`
	TotalCost         Number `json:"totalCost"`
}

// Target is a watched whale wallet.
type Target struct {
	Address     Text           `json:"address"`
	USDCBalance Number         `json:"usdcBalance"`
	Positions   WhalePositions `json:"positions"`
	LastChecked Number         `json:"lastChecked"`
	TxCount     Number         `json:"txCount"`
}

// WhalePosition is a holding of a watched wallet as reported by the data API.
type WhalePosition struct {
	Title    Text   `json:"title"`
	Outcome  Text   `json:"outcome"`
	Size     Number `json:"size"`
	AvgPrice Number `json:"avgPrice"`
	CurPrice Number `json:"curPrice"`
}

// Trade is the last trade of either side. The executor writes amount for
// buys and shares for sells; the watcher writes price/size/timestamp.
type Trade struct {
	Side      Text   `json:"side"`
	Title     Text   `json:"title"`
	Asset     Text   `json:"asset"`
	Target    Text   `json:"target"`
	Amount    Number `json:"amount"`
	Shares    Number `json:"shares"`
	Proceeds  Number `json:"proceeds"`
	Price     Number `json:"price"`
	Size      Number `json:"size"`
	PnL       Number `json:"pnl"`
	Timestamp Number `json:"timestamp"`
}

// ModeName returns the run mode, UNKNOWN when not reported.
func (s *ExecutorState) ModeName() string {
	if s == nil {
		return ModeUnknown
	}
	return s.Mode.Or(ModeUnknown)
}

// IsLive reports whether the executor trades with real funds.
func (s *ExecutorState) IsLive() bool {
	return s.ModeName() == ModeLive
}

// CashValue returns cash, falling back to the legacy balance field.
func (s *ExecutorState) CashValue() float64 {
	if s == nil {
		return 0
	}
	if s.Cash.Present() {
		return s.Cash.Float()
	}
	return s.Balance.Float()
}

// PortfolioTotal returns the portfolio value, falling back to cash.
func (s *ExecutorState) PortfolioTotal() float64 {
	if s == nil {
		return 0
	}
	if s.Portfolio.Present() {
		return s.Portfolio.Float()
	}
	if s.PortfolioValue.Present() {
		return s.PortfolioValue.Float()
	}
	return s.CashValue()
}

// PnL returns the running total PnL.
func (s *ExecutorState) PnL() float64 {
	if s == nil {
		return 0
	}
	return s.TotalPnL.Float()
}

// RatioLabel renders the mirror ratio: numbers get an "x" suffix, text is
// shown verbatim, absence is "N/A".
func (s *ExecutorState) RatioLabel() string {
	if s == nil || !s.MirrorRatio.Present() {
		return "N/A"
	}
	if s.MirrorRatio.Numeric() {
		return s.MirrorRatio.Raw() + "x"
	}
	return s.MirrorRatio.Raw()
}

// UpdatedAt returns the snapshot time (epoch millis), or fallback when the
// producer did not stamp it.
func (s *ExecutorState) UpdatedAt(fallback time.Time) time.Time {
	if s == nil || s.Timestamp.Float() <= 0 {
		return fallback
	}
	return time.UnixMilli(int64(s.Timestamp.Float()))
}

// RecentTrade returns the last trade, nil when absent or empty.
func (s *ExecutorState) RecentTrade() *Trade {
	if s == nil || s.LastTrade.Empty() {
		return nil
	}
	return s.LastTrade
}

// RecentWhaleTrade returns the last whale trade, nil when absent or empty.
func (s *WatcherState) RecentWhaleTrade() *Trade {
	if s == nil || s.LastWhaleTrade.Empty() {
		return nil
	}
	return s.LastWhaleTrade
}

// AssetName returns the asset label, "Unknown" when absent.
func (p Position) AssetName() string {
	return p.Asset.Or("Unknown")
}

// CheckedAt returns the last poll time and false when the target was never
// checked.
func (t Target) CheckedAt() (time.Time, bool) {
	ts := t.LastChecked.Float()
	if ts <= 0 {
		return time.Time{}, false
	}
	return EpochTime(ts), true
}

// Empty reports whether the trade carries no fields at all.
func (t *Trade) Empty() bool {
	if t == nil {
		return true
	}
	return !t.Side.Present() && !t.Title.Present() && !t.Asset.Present() &&
		!t.Target.Present() && !t.Amount.Present() && !t.Shares.Present() &&
		!t.Proceeds.Present() && !t.Price.Present() && !t.Size.Present() &&
		!t.PnL.Present() && !t.Timestamp.Present()
}

// SideName returns the side, UNKNOWN when absent.
func (t *Trade) SideName() string {
	if t == nil {
		return SideUnknown
	}
	return t.Side.Or(SideUnknown)
}

// MarketTitle returns the market title, "Unknown Market" when absent.
func (t *Trade) MarketTitle() string {
	if t == nil {
		return "Unknown Market"
	}
	return t.Title.Or("Unknown Market")
}

// ExecutedAt returns the trade time and false when it was not stamped.
// The watcher forwards API timestamps that may be in seconds or millis.
func (t *Trade) ExecutedAt() (time.Time, bool) {
	if t == nil {
		return time.Time{}, false
	}
	ts := t.Timestamp.Float()
	if ts <= 0 {
		return time.Time{}, false
	}
	return EpochTime(ts), true
}

// EpochTime converts an epoch value of either scale: values above 10^11
// are milliseconds, anything else seconds.
func EpochTime(ts float64) time.Time {
	if ts > millisThreshold {
		ts /= 1000
	}
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}
