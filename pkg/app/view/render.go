package view

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/fittracker/pkg/app/styles"
)

// ScrimOpacity is how far content under an open drawer fades toward the
// background color.
const ScrimOpacity = 0.32

// ScrollFunc displays laid-out content inside a width x height window. It is
// how a scrolling Column hands its content to a viewport.
type ScrollFunc func(content string, width, height int) string

type Renderer struct {
	Theme *styles.Theme
	// Scroll may be nil, in which case scrolling columns show their first
	// rows.
	Scroll ScrollFunc
}

func NewRenderer(theme *styles.Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// Hit is the screen rectangle of an interactive node.
type Hit struct {
	X, Y          int
	Width, Height int
	Action        Action
	Target        string
}

func (h Hit) Contains(x, y int) bool {
	return x >= h.X && x < h.X+h.Width && y >= h.Y && y < h.Y+h.Height
}

// Frame is one rendered layout pass.
type Frame struct {
	View string
	Hits []Hit
}

// HitAt returns the topmost interactive region under (x, y).
func (f Frame) HitAt(x, y int) (Hit, bool) {
	for i := len(f.Hits) - 1; i >= 0; i-- {
		if f.Hits[i].Contains(x, y) {
			return f.Hits[i], true
		}
	}
	return Hit{}, false
}

// Locate returns the topmost region for action and target.
func (f Frame) Locate(action Action, target string) (Hit, bool) {
	for i := len(f.Hits) - 1; i >= 0; i-- {
		if f.Hits[i].Action == action && f.Hits[i].Target == target {
			return f.Hits[i], true
		}
	}
	return Hit{}, false
}

func (r *Renderer) Render(n Node, width, height int) string {
	return r.Layout(n, width, height).View
}

// Layout renders n into a width x height area. A height of 0 lets content
// take its natural height.
func (r *Renderer) Layout(n Node, width, height int) Frame {
	p := &pass{r: r, record: true}
	v := p.node(n, width, height, 0, 0)
	return Frame{View: v, Hits: p.hits}
}

type pass struct {
	r      *Renderer
	hits   []Hit
	record bool
}

// measure renders n at its natural width without recording hits.
func (p *pass) measure(n Node, h int) string {
	q := &pass{r: p.r}
	return q.node(n, 0, h, 0, 0)
}

func (p *pass) hit(x, y, w, h int, a Action, target string) {
	if !p.record || a == ActionNone {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if w <= 0 || h <= 0 {
		return
	}
	p.hits = append(p.hits, Hit{X: x, Y: y, Width: w, Height: h, Action: a, Target: target})
}

func (p *pass) node(n Node, w, h, x, y int) string {
	switch n := n.(type) {
	case Text:
		return p.text(n, w)
	case Button:
		return p.button(n, x, y)
	case Card:
		return p.card(n, w, x, y)
	case ListItem:
		return p.listItem(n, w, x, y)
	case List:
		items := make([]Node, len(n.Items))
		for i, it := range n.Items {
			items[i] = it
		}
		return p.stack(items, w, x, y)
	case Rail:
		return p.rail(n, h, x, y)
	case Progress:
		return p.progress(n, w)
	case Divider:
		return p.r.Theme.Divider.Render(strings.Repeat("─", max(w, 1)))
	case Spacer:
		if n.Lines <= 1 {
			return ""
		}
		return strings.Repeat("\n", n.Lines-1)
	case Column:
		return p.column(n, w, h, x, y)
	case Box:
		inner := max(w-2*n.PadX, 1)
		innerH := 0
		if h > 0 {
			innerH = max(h-2*n.PadY, 1)
		}
		child := p.node(n.Child, inner, innerH, x+n.PadX, y+n.PadY)
		return lipgloss.NewStyle().Padding(n.PadY, n.PadX).Render(child)
	case Row:
		return p.row(n, w, h, x, y)
	case TopBar:
		return p.topBar(n, w, x, y)
	case Scaffold:
		return p.scaffold(n, w, h, x, y)
	case Drawer:
		return p.drawer(n, w, h, x, y)
	}
	return ""
}

func (p *pass) textStyle(s TextStyle) lipgloss.Style {
	th := p.r.Theme
	switch s {
	case TextHeadline:
		return th.Headline
	case TextTitle:
		return th.Title
	case TextLabel:
		return th.Label
	default:
		return th.Body
	}
}

func (p *pass) text(t Text, w int) string {
	st := p.textStyle(t.Style)
	if w > 0 {
		st = st.Width(w)
	}
	return st.Render(t.Content)
}

func withIcon(icon Icon, label string) string {
	switch {
	case icon == IconNone:
		return label
	case label == "":
		return string(icon)
	default:
		return string(icon) + " " + label
	}
}

func (p *pass) button(b Button, x, y int) string {
	st := p.r.Theme.Icon
	if b.Outlined {
		st = p.r.Theme.OutlinedButton
	}
	out := st.Render(withIcon(b.Icon, b.Label))
	p.hit(x, y, lipgloss.Width(out), lipgloss.Height(out), b.OnClick, b.Target)
	return out
}

// stack lays children out top to bottom, tracking each child's origin.
func (p *pass) stack(children []Node, w, x, y int) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		s := p.node(c, w, 0, x, y)
		parts = append(parts, s)
		y += lipgloss.Height(s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (p *pass) card(c Card, w, x, y int) string {
	st := p.r.Theme.Card
	inner := max(w-st.GetHorizontalFrameSize(), 1)
	ox := x + st.GetBorderLeftSize() + st.GetPaddingLeft()
	oy := y + st.GetBorderTopSize() + st.GetPaddingTop()
	body := p.stack(c.Children, inner, ox, oy)
	return st.Width(inner + st.GetHorizontalPadding()).Render(body)
}

func (p *pass) listItem(it ListItem, w, x, y int) string {
	th := p.r.Theme
	st := th.ListItem
	if it.Selected {
		st = th.ListItemSelected
	}

	marker := "  "
	if it.Focused {
		marker = th.Icon.Render("›") + " "
	}
	head := it.Headline
	indent := "  "
	if it.Icon != IconNone {
		head = th.Icon.Render(string(it.Icon)) + " " + it.Headline
		indent += "  "
	}
	lines := []string{marker + head}
	if it.Supporting != "" {
		lines = append(lines, indent+th.Muted.Render(it.Supporting))
	}

	if w > 0 {
		st = st.Width(max(w-st.GetHorizontalBorderSize(), 1))
	}
	out := st.Render(strings.Join(lines, "\n"))
	p.hit(x, y, lipgloss.Width(out), lipgloss.Height(out), it.OnClick, it.Target)
	return out
}

func (p *pass) rail(r Rail, h, x, y int) string {
	th := p.r.Theme
	labelW := 0
	for _, it := range r.Items {
		labelW = max(labelW, ansi.StringWidth(withIcon(it.Icon, it.Headline)))
	}

	st := th.Rail
	ox := x + st.GetPaddingLeft()
	oy := y + st.GetPaddingTop()
	lines := make([]string, 0, 2*len(r.Items))
	for i, it := range r.Items {
		is := th.NavItem
		if it.Selected {
			is = th.NavItemSelected
		}
		item := is.Width(labelW + is.GetHorizontalPadding()).Render(withIcon(it.Icon, it.Headline))
		if i > 0 {
			lines = append(lines, "")
		}
		p.hit(ox, oy+len(lines), lipgloss.Width(item), 1, it.OnClick, it.Target)
		lines = append(lines, item)
	}

	if h > 0 {
		st = st.Height(h)
	}
	return st.Render(strings.Join(lines, "\n"))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (p *pass) progress(pr Progress, w int) string {
	th := p.r.Theme
	bar := progress.New(
		progress.WithSolidFill(th.Palette.Primary),
		progress.WithoutPercentage(),
		progress.WithWidth(max(w, 1)),
	)
	bar.EmptyColor = th.Palette.Outline
	return bar.ViewAs(clamp01(pr.Value))
}

func cropLines(s string, h int) string {
	if h <= 0 {
		return s
	}
	lines := splitLines(s)
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

func (p *pass) column(c Column, w, h, x, y int) string {
	if !c.Scroll {
		return p.stack(c.Children, w, x, y)
	}
	// Scrolled content moves under the window; its regions aren't
	// hit-testable.
	q := &pass{r: p.r}
	content := q.stack(c.Children, w, 0, 0)
	if h <= 0 {
		return content
	}
	if p.r.Scroll != nil {
		return p.r.Scroll(content, w, h)
	}
	return cropLines(content, h)
}

func (p *pass) row(r Row, w, h, x, y int) string {
	widths := make([]int, len(r.Panes))
	used, fills := 0, 0
	for i, pn := range r.Panes {
		switch pn.Width {
		case Intrinsic:
			widths[i] = lipgloss.Width(p.measure(pn.Node, h))
		case Fill:
			fills++
		default:
			widths[i] = pn.Width
		}
		used += widths[i]
	}
	if fills > 0 {
		remaining := max(w-used, 0)
		share := remaining / fills
		last := -1
		for i, pn := range r.Panes {
			if pn.Width == Fill {
				widths[i] = max(share, 1)
				last = i
			}
		}
		widths[last] += max(remaining-share*fills, 0)
	}

	parts := make([]string, 0, len(r.Panes))
	cx := x
	for i, pn := range r.Panes {
		s := p.node(pn.Node, widths[i], h, cx, y)
		ph := max(h, lipgloss.Height(s))
		s = lipgloss.Place(widths[i], ph, lipgloss.Left, lipgloss.Top, s)
		st := lipgloss.NewStyle().MaxWidth(widths[i])
		if h > 0 {
			st = st.MaxHeight(h)
		}
		parts = append(parts, st.Render(s))
		cx += widths[i]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (p *pass) topBar(tb TopBar, w, x, y int) string {
	th := p.r.Theme
	nav := th.Icon.Render(withIcon(tb.Nav.Icon, tb.Nav.Label))
	navW := lipgloss.Width(nav)
	st := lipgloss.NewStyle().Padding(0, 1)
	if w > 0 {
		st = st.Width(w)
	}
	out := st.Render(nav + "  " + th.TopBar.Render(tb.Title))
	p.hit(x, y, navW+2, 1, tb.Nav.OnClick, tb.Nav.Target)
	return out
}

func (p *pass) scaffold(s Scaffold, w, h, x, y int) string {
	th := p.r.Theme
	bar := p.topBar(s.TopBar, w, x, y)
	barH := lipgloss.Height(bar)

	bodyH := 0
	if h > 0 {
		bodyH = max(h-barH, 1)
	}
	body := p.node(s.Body, w, bodyH, x, y+barH)
	if bodyH > 0 {
		body = cropLines(lipgloss.Place(w, bodyH, lipgloss.Left, lipgloss.Top, body), bodyH)
	}

	if s.FAB != nil {
		fab := th.FAB.Render(withIcon(s.FAB.Icon, s.FAB.Label))
		fw, fh := lipgloss.Width(fab), lipgloss.Height(fab)
		fx := max(w-fw-2, 0)
		fy := max(lipgloss.Height(body)-fh-1, 0)
		body = overlayAt(body, fab, fx, fy, w)
		p.hit(x+fx, y+barH+fy, fw, fh, s.FAB.OnClick, s.FAB.Target)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, body)
}

func (p *pass) scrim(base string, w int, pos float64) string {
	pal := p.r.Theme.Palette
	fg := styles.Blend(pal.OnSurface, pal.Background, ScrimOpacity*pos)
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	lines := splitLines(base)
	for i, line := range lines {
		lines[i] = st.Render(padRight(ansi.Strip(line), w))
	}
	return strings.Join(lines, "\n")
}

func (p *pass) drawer(d Drawer, w, h, x, y int) string {
	base := p.node(d.Body, w, h, x, y)
	pos := clamp01(d.Position)
	if pos == 0 {
		return clampWidth(base, w)
	}

	height := h
	if height <= 0 {
		height = lipgloss.Height(base)
	}
	base = p.scrim(base, w, pos)
	p.hit(x, y, w, height, ActionCloseDrawer, "scrim")

	st := p.r.Theme.DrawerSheet
	sheetW := max(min(d.Width, w-1), st.GetHorizontalFrameSize()+1)
	hidden := int(math.Round((1 - pos) * float64(sheetW)))

	inner := sheetW - st.GetHorizontalFrameSize()
	ox := x - hidden + st.GetBorderLeftSize() + st.GetPaddingLeft()
	oy := y + st.GetBorderTopSize() + st.GetPaddingTop()
	content := p.stack(d.Sheet, inner, ox, oy)

	sheet := st.
		Width(sheetW - st.GetHorizontalBorderSize()).
		Height(max(height-st.GetVerticalBorderSize(), 1)).
		MaxHeight(height).
		Render(content)
	return clampWidth(overlayAt(base, sliceLeft(sheet, hidden), 0, 0, w), w)
}

// clampWidth cuts every line of s to w cells. The sheet and FAB keep a
// minimum size, so on very narrow surfaces they would overflow.
func clampWidth(s string, w int) string {
	if w <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(s)
}
