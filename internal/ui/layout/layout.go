// Package layout holds the static region tree the dashboard renders into.
//
// The tree is built once. Each tick only replaces the panels bound to its
// leaves, so structure and content stay separate.
package layout

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/mirror-dash/internal/ui/component"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/panel"
)

var (
	// ErrUnknownRegion is returned by Bind for a name that is not a leaf.
	ErrUnknownRegion = errors.New("unknown layout region")
	// ErrDuplicateRegion is returned by New when two nodes share a name.
	ErrDuplicateRegion = errors.New("duplicate layout region")
)

// Direction is how a node arranges its children.
type Direction int

const (
	// Column stacks children top to bottom.
	Column Direction = iota
	// Row places children left to right.
	Row
)

// Rect is a resolved region size.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Node is a region of the layout tree. A node with children is a split;
// a node without children is a leaf panels are bound to.
type Node struct {
	Name     string
	Size     int
	Ratio    int
	Split    Direction
	Children []*Node

	panel *panel.Panel
}

// Region returns a leaf with ratio 1.
func Region(name string) *Node {
	return &Node{Name: name, Ratio: 1}
}

// SplitColumn returns a node stacking children vertically.
func SplitColumn(name string, children ...*Node) *Node {
	return &Node{Name: name, Ratio: 1, Split: Column, Children: children}
}

// SplitRow returns a node placing children side by side.
func SplitRow(name string, children ...*Node) *Node {
	return &Node{Name: name, Ratio: 1, Split: Row, Children: children}
}

// WithSize fixes the node's extent along its parent's split direction.
func (n *Node) WithSize(size int) *Node {
	n.Size = size
	return n
}

// WithRatio sets the node's share of the space left after fixed siblings.
func (n *Node) WithRatio(ratio int) *Node {
	n.Ratio = ratio
	return n
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Renderer draws a bound panel into a box of the given size.
type Renderer func(p *panel.Panel, width, height int) string

// Layout is a region tree with panels bound to its leaves.
type Layout struct {
	root     *Node
	leaves   map[string]*Node
	renderer Renderer
	empty    func(width, height int) string
}

// New validates the tree and indexes its leaves.
func New(root *Node) (*Layout, error) {
	l := &Layout{
		root:     root,
		leaves:   make(map[string]*Node),
		renderer: component.Render,
		empty:    component.Empty,
	}

	seen := make(map[string]bool)
	var walk func(n *Node) error
	walk = func(n *Node) error {
		if n.Name != "" {
			if seen[n.Name] {
				return fmt.Errorf("%w: %s", ErrDuplicateRegion, n.Name)
			}
			seen[n.Name] = true
		}
		if n.IsLeaf() {
			l.leaves[n.Name] = n
			return nil
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	return l, nil
}

// Bind replaces the content of a named leaf region.
func (l *Layout) Bind(name string, p panel.Panel) error {
	leaf, ok := l.leaves[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRegion, name)
	}
	leaf.panel = &p
	return nil
}

// Bound returns the panel bound to a region, if any.
func (l *Layout) Bound(name string) (panel.Panel, bool) {
	leaf, ok := l.leaves[name]
	if !ok || leaf.panel == nil {
		return panel.Panel{}, false
	}
	return *leaf.panel, true
}

// Regions returns the leaf names in tree order.
func (l *Layout) Regions() []string {
	var names []string
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			names = append(names, n.Name)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(l.root)
	return names
}

// Resolve computes the rectangle of every leaf for a width x height screen.
func (l *Layout) Resolve(width, height int) map[string]Rect {
	rects := make(map[string]Rect, len(l.leaves))
	var walk func(n *Node, r Rect)
	walk = func(n *Node, r Rect) {
		if n.IsLeaf() {
			rects[n.Name] = r
			return
		}
		total := r.Height
		if n.Split == Row {
			total = r.Width
		}
		offset := 0
		for i, extent := range split(n.Children, total) {
			child := r
			if n.Split == Row {
				child.X, child.Width = r.X+offset, extent
			} else {
				child.Y, child.Height = r.Y+offset, extent
			}
			offset += extent
			walk(n.Children[i], child)
		}
	}
	walk(l.root, Rect{Width: width, Height: height})
	return rects
}

// Render draws the whole tree at width x height.
func (l *Layout) Render(width, height int) string {
	return l.render(l.root, width, height)
}

func (l *Layout) render(n *Node, width, height int) string {
	if n.IsLeaf() {
		if n.panel == nil {
			return l.empty(width, height)
		}
		return l.renderer(n.panel, width, height)
	}

	total := height
	if n.Split == Row {
		total = width
	}
	extents := split(n.Children, total)

	parts := make([]string, 0, len(n.Children))
	for i, c := range n.Children {
		if extents[i] <= 0 {
			continue
		}
		if n.Split == Row {
			parts = append(parts, l.render(c, extents[i], height))
		} else {
			parts = append(parts, l.render(c, width, extents[i]))
		}
	}

	if n.Split == Row {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// split divides total among children: fixed sizes first, the rest by ratio.
// The last flexible child absorbs the rounding remainder.
func split(children []*Node, total int) []int {
	extents := make([]int, len(children))
	remaining := total
	ratioSum := 0
	lastFlex := -1

	for i, c := range children {
		if c.Size > 0 {
			extents[i] = min(c.Size, max(remaining, 0))
			remaining -= extents[i]
			continue
		}
		ratioSum += max(c.Ratio, 1)
		lastFlex = i
	}

	if lastFlex < 0 || remaining <= 0 {
		return extents
	}

	used := 0
	for i, c := range children {
		if c.Size > 0 {
			continue
		}
		if i == lastFlex {
			extents[i] = remaining - used
			break
		}
		extents[i] = remaining * max(c.Ratio, 1) / ratioSum
		used += extents[i]
	}
	return extents
}
