package style

import (
	"github.com/charmbracelet/lipgloss"
)

var palette = DefaultPalette()

// Tone is the semantic styling of a piece of panel content. Panel builders
// pick tones; only the renderer turns them into terminal styles.
type Tone int

const (
	TonePlain Tone = iota
	ToneMuted
	ToneBrand
	ToneAccent
	ToneEmphasis
	ToneProfit
	ToneLoss
	ToneWarning
	ToneInfo
	ToneWhale
	ToneAddress
	ToneAsset
	ToneLive
	ToneDryRun
	ToneBuy
	ToneSell
)

var toneNames = map[Tone]string{
	TonePlain:    "plain",
	ToneMuted:    "muted",
	ToneBrand:    "brand",
	ToneAccent:   "accent",
	ToneEmphasis: "emphasis",
	ToneProfit:   "profit",
	ToneLoss:     "loss",
	ToneWarning:  "warning",
	ToneInfo:     "info",
	ToneWhale:    "whale",
	ToneAddress:  "address",
	ToneAsset:    "asset",
	ToneLive:     "live",
	ToneDryRun:   "dry_run",
	ToneBuy:      "buy",
	ToneSell:     "sell",
}

// String returns the tone name
func (t Tone) String() string {
	if name, ok := toneNames[t]; ok {
		return name
	}
	return "unknown"
}

// Content styles
var (
	PlainStyle = lipgloss.NewStyle().
			Foreground(palette.Text)

	MutedStyle = lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Faint(true)

	BrandStyle = lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(palette.Accent).
			Bold(true)

	EmphasisStyle = lipgloss.NewStyle().
			Foreground(palette.TextBold).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(palette.Info)

	WhaleStyle = lipgloss.NewStyle().
			Foreground(palette.Whale)

	AddressStyle = lipgloss.NewStyle().
			Foreground(palette.Primary)

	AssetStyle = lipgloss.NewStyle().
			Foreground(palette.Mine)

	WarningStyle = lipgloss.NewStyle().
			Foreground(palette.Warning)
)

// Trading styles
var (
	ProfitStyle = lipgloss.NewStyle().
			Foreground(palette.Success)

	LossStyle = lipgloss.NewStyle().
			Foreground(palette.Error)

	LiveStyle = lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true)

	DryRunStyle = lipgloss.NewStyle().
			Foreground(palette.Warning).
			Bold(true)

	BuyStyle = lipgloss.NewStyle().
			Foreground(palette.Buy)

	SellStyle = lipgloss.NewStyle().
			Foreground(palette.Sell)
)

// Table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(palette.TextBold).
				Bold(true)

	TableSeparatorStyle = lipgloss.NewStyle().
				Foreground(palette.TextMuted)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true)
)

// Style returns the text style for the tone.
func (t Tone) Style() lipgloss.Style {
	switch t {
	case ToneMuted:
		return MutedStyle
	case ToneBrand:
		return BrandStyle
	case ToneAccent:
		return AccentStyle
	case ToneEmphasis:
		return EmphasisStyle
	case ToneProfit:
		return ProfitStyle
	case ToneLoss:
		return LossStyle
	case ToneWarning:
		return WarningStyle
	case ToneInfo:
		return InfoStyle
	case ToneWhale:
		return WhaleStyle
	case ToneAddress:
		return AddressStyle
	case ToneAsset:
		return AssetStyle
	case ToneLive:
		return LiveStyle
	case ToneDryRun:
		return DryRunStyle
	case ToneBuy:
		return BuyStyle
	case ToneSell:
		return SellStyle
	default:
		return PlainStyle
	}
}

// Color returns the foreground color used for borders drawn in this tone.
func (t Tone) Color() lipgloss.Color {
	switch t {
	case ToneMuted:
		return palette.TextMuted
	case ToneBrand, ToneAddress:
		return palette.Primary
	case ToneAccent:
		return palette.Accent
	case ToneEmphasis:
		return palette.TextBold
	case ToneProfit, ToneLive, ToneBuy:
		return palette.Success
	case ToneLoss, ToneSell:
		return palette.Error
	case ToneWarning, ToneDryRun:
		return palette.Warning
	case ToneInfo:
		return palette.Info
	case ToneWhale:
		return palette.Whale
	case ToneAsset:
		return palette.Mine
	default:
		return palette.Text
	}
}

// PnLTone returns the polarity tone of a PnL value: zero counts as profit.
func PnLTone(v float64) Tone {
	if v < 0 {
		return ToneLoss
	}
	return ToneProfit
}

// SideTone returns the tone for a trade side.
func SideTone(side string) Tone {
	if side == "BUY" {
		return ToneBuy
	}
	return ToneSell
}
