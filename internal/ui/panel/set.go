package panel

// Builder produces one panel from a snapshot.
type Builder func(Snapshot) Panel

// Binding ties a builder to the layout region it fills.
type Binding struct {
	Region string
	Build  Builder
}

// Set is a static panel configuration. The two dashboard variants differ
// only in which bindings they carry.
type Set struct {
	Name     string
	Bindings []Binding
}

// Build runs every builder of the set against s, in binding order.
func (s Set) Build(snap Snapshot) []Panel {
	panels := make([]Panel, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		p := b.Build(snap)
		p.Region = b.Region
		panels = append(panels, p)
	}
	return panels
}

// Regions returns the region names the set fills.
func (s Set) Regions() []string {
	names := make([]string, 0, len(s.Bindings))
	for _, b := range s.Bindings {
		names = append(names, b.Region)
	}
	return names
}

// FullSet is the six-panel dashboard with whale portfolio and mirror ratio.
var FullSet = Set{
	Name: "full",
	Bindings: []Binding{
		{Region: RegionHeader, Build: Header},
		{Region: RegionWhale, Build: WhalePortfolio},
		{Region: RegionTargets, Build: TargetsMonitor},
		{Region: RegionPositions, Build: MyPositions},
		{Region: RegionWhaleTrade, Build: WhaleLastTrade},
		{Region: RegionMyTrade, Build: MyLastTrade},
	},
}

// CompactSet drops the whale portfolio panel and the ratio display.
var CompactSet = Set{
	Name: "compact",
	Bindings: []Binding{
		{Region: RegionHeader, Build: CompactHeader},
		{Region: RegionTargets, Build: TargetsMonitor},
		{Region: RegionPositions, Build: MyPositions},
		{Region: RegionWhaleTrade, Build: WhaleLastTrade},
		{Region: RegionMyTrade, Build: MyLastTrade},
	},
}
