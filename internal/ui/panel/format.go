package panel

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	addressLimit = 14
	addressHead  = 10
	addressTail  = 4

	titleLimit = 30
	titleKeep  = 28

	assetLimit = 15

	clockLayout = "15:04:05"
)

// ShortAddress shortens identifiers longer than 14 characters to the first
// 10 and last 4 around "...".
func ShortAddress(addr string) string {
	r := []rune(addr)
	if len(r) <= addressLimit {
		return addr
	}
	return string(r[:addressHead]) + "..." + string(r[len(r)-addressTail:])
}

// TruncateTitle cuts market titles longer than 30 characters to 28 plus "..".
func TruncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= titleLimit {
		return title
	}
	return string(r[:titleKeep]) + ".."
}

// TruncateAsset cuts asset names longer than 15 characters to 15 plus "...".
func TruncateAsset(asset string) string {
	r := []rune(asset)
	if len(r) <= assetLimit {
		return asset
	}
	return string(r[:assetLimit]) + "..."
}

// Money formats a currency amount with 2 decimals and the sign in front of
// the symbol: -$50.50.
func Money(v float64) string {
	if v < 0 && math.Abs(v) >= 0.005 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", math.Abs(v))
}

// Balance formats a currency amount with thousands separators: $12,345.67.
func Balance(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Quantity formats share counts and sizes with 4 decimals.
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Price formats a per-share price with 3 decimals and a currency symbol.
func Price(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 3, 64)
}

// Clock formats t as local wall-clock time HH:MM:SS.
func Clock(t time.Time) string {
	return t.Local().Format(clockLayout)
}
