package layout

import (
	"github.com/rovshanmuradov/mirror-dash/internal/ui/panel"
)

const headerHeight = 3

// Full is the six-region dashboard: header over two columns, whale
// portfolio and targets on the left, positions and both last trades on the
// right.
func Full() *Node {
	return SplitColumn("root",
		Region(panel.RegionHeader).WithSize(headerHeight),
		SplitRow("body",
			SplitColumn("left",
				Region(panel.RegionWhale).WithRatio(2),
				Region(panel.RegionTargets),
			),
			right(),
		),
	)
}

// Compact drops the whale portfolio: targets take the whole left column.
func Compact() *Node {
	return SplitColumn("root",
		Region(panel.RegionHeader).WithSize(headerHeight),
		SplitRow("body",
			SplitColumn("left",
				Region(panel.RegionTargets),
			),
			right(),
		),
	)
}

func right() *Node {
	return SplitColumn("right",
		Region(panel.RegionPositions).WithRatio(2),
		SplitRow("last_trades",
			Region(panel.RegionWhaleTrade),
			Region(panel.RegionMyTrade),
		),
	)
}
