// Package view describes screens as trees of a small, closed set of node
// types and renders them with lipgloss.
//
// Compositions build trees out of plain data; nothing in a tree holds
// callbacks. Interactive nodes carry an Action that the owning screen maps to
// a state change.
package view

// Node is implemented only by the types in this package.
type Node interface {
	isNode()
}

// Action identifies what activating a node requests.
type Action int

const (
	ActionNone Action = iota
	ActionOpenDrawer
	ActionCloseDrawer
	ActionNavigate
	ActionLogSet
	ActionStart
)

func (a Action) String() string {
	switch a {
	case ActionOpenDrawer:
		return "open-drawer"
	case ActionCloseDrawer:
		return "close-drawer"
	case ActionNavigate:
		return "navigate"
	case ActionLogSet:
		return "log-set"
	case ActionStart:
		return "start"
	default:
		return "none"
	}
}

// Icon is a single-cell glyph.
type Icon string

const (
	IconNone    Icon = ""
	IconFitness Icon = "◆"
	IconList    Icon = "☰"
	IconCheck   Icon = "✓"
	IconMenu    Icon = "≡"
	IconPlay    Icon = "▶"
)

type TextStyle int

const (
	TextBody TextStyle = iota
	TextHeadline
	TextTitle
	TextLabel
)

type Text struct {
	Content string
	Style   TextStyle
}

type Button struct {
	Label    string
	Icon     Icon
	Outlined bool
	OnClick  Action
	Target   string
}

// Card groups its children inside a bordered container.
type Card struct {
	Children []Node
}

type ListItem struct {
	Headline   string
	Supporting string
	Icon       Icon
	Selected   bool
	Focused    bool
	OnClick    Action
	Target     string
}

type List struct {
	Items []ListItem
}

// Rail is a persistent vertical navigation strip that fills the available
// height.
type Rail struct {
	Items []ListItem
}

// Progress is a determinate bar; Value is clamped to 0..1.
type Progress struct {
	Value float64
}

type Divider struct{}

// Spacer is blank vertical space.
type Spacer struct {
	Lines int
}

// Column stacks children vertically. A scrolling column is handed to the
// renderer's ScrollFunc once laid out.
type Column struct {
	Children []Node
	Scroll   bool
}

// Box pads its child.
type Box struct {
	PadX, PadY int
	Child      Node
}

const (
	// Fill makes a pane take the width left over by the other panes.
	Fill = 0
	// Intrinsic sizes a pane to its content.
	Intrinsic = -1
)

// Pane is one horizontal slot of a Row. Width is a column count, Fill or
// Intrinsic.
type Pane struct {
	Width int
	Node  Node
}

type Row struct {
	Panes []Pane
}

type TopBar struct {
	Title string
	Nav   Button
}

// Scaffold places a top bar above Body and floats FAB over its bottom-right
// corner.
type Scaffold struct {
	TopBar TopBar
	Body   Node
	FAB    *Button
}

// Drawer overlays a sliding sheet on Body. Position is the slide progress,
// 0 fully hidden and 1 fully shown; the scrim over Body fades with it.
type Drawer struct {
	Width    int
	Position float64
	Sheet    []Node
	Body     Node
}

func (Text) isNode()     {}
func (Button) isNode()   {}
func (Card) isNode()     {}
func (ListItem) isNode() {}
func (List) isNode()     {}
func (Rail) isNode()     {}
func (Progress) isNode() {}
func (Divider) isNode()  {}
func (Spacer) isNode()   {}
func (Column) isNode()   {}
func (Box) isNode()      {}
func (Row) isNode()      {}
func (TopBar) isNode()   {}
func (Scaffold) isNode() {}
func (Drawer) isNode()   {}

// Walk visits n and its descendants depth-first in display order. Returning
// false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case Card:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	case List:
		for _, it := range n.Items {
			Walk(it, fn)
		}
	case Rail:
		for _, it := range n.Items {
			Walk(it, fn)
		}
	case Column:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	case Box:
		Walk(n.Child, fn)
	case Row:
		for _, p := range n.Panes {
			Walk(p.Node, fn)
		}
	case TopBar:
		Walk(n.Nav, fn)
	case Scaffold:
		Walk(n.TopBar, fn)
		Walk(n.Body, fn)
		if n.FAB != nil {
			Walk(*n.FAB, fn)
		}
	case Drawer:
		for _, c := range n.Sheet {
			Walk(c, fn)
		}
		Walk(n.Body, fn)
	}
}

// Collect returns every node of type T under root, in display order.
func Collect[T Node](root Node) []T {
	var out []T
	Walk(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// First returns the first node of type T matching pred.
func First[T Node](root Node, pred func(T) bool) (T, bool) {
	for _, t := range Collect[T](root) {
		if pred(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}
