package style

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Primary colors
	Cyan       = lipgloss.Color("#00E5FF") // Addresses / brand
	Magenta    = lipgloss.Color("#FF1B6B") // Own positions
	Yellow     = lipgloss.Color("#FFB500") // Warnings / dry-run
	Gold       = lipgloss.Color("#FFD700") // Cash and balances
	Green      = lipgloss.Color("#2AFFAA") // Positive PnL / live
	Red        = lipgloss.Color("#FF5555") // Negative PnL / alerts
	Blue       = lipgloss.Color("#3B82F6") // Header frame
	BrightBlue = lipgloss.Color("#5C9DFF") // Whale panels

	// Base colors
	Base01 = lipgloss.Color("#6C7280") // Muted text
	Base2  = lipgloss.Color("#ECEFF4") // Primary text
	White  = lipgloss.Color("#FFFFFF") // Emphasis

	// Trading specific colors
	BuyColor  = Green
	SellColor = Red
)

// Palette provides a centralized color management
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Info    lipgloss.Color
	Whale   lipgloss.Color
	Mine    lipgloss.Color

	Text      lipgloss.Color
	TextMuted lipgloss.Color
	TextBold  lipgloss.Color

	Buy  lipgloss.Color
	Sell lipgloss.Color
}

// DefaultPalette returns the default color palette
func DefaultPalette() Palette {
	return Palette{
		Primary: Cyan,
		Accent:  Gold,
		Success: Green,
		Error:   Red,
		Warning: Yellow,
		Info:    Blue,
		Whale:   BrightBlue,
		Mine:    Magenta,

		Text:      Base2,
		TextMuted: Base01,
		TextBold:  White,

		Buy:  BuyColor,
		Sell: SellColor,
	}
}
