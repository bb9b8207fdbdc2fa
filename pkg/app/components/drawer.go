package components

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
)

type DrawerValue int

const (
	DrawerClosed DrawerValue = iota
	DrawerOpen
)

func (v DrawerValue) String() string {
	if v == DrawerOpen {
		return "open"
	}
	return "closed"
}

// settleEpsilon is how close position and velocity must get to rest before a
// transition snaps to its end.
const settleEpsilon = 0.002

var lastDrawerID int64

func nextDrawerID() int {
	return int(atomic.AddInt64(&lastDrawerID, 1))
}

// DrawerTickMsg advances one drawer transition by a frame.
type DrawerTickMsg struct {
	id  int
	gen int
}

// Drawer is a modal navigation drawer's open/closed state plus its slide
// transition.
//
// Open and Close change the target immediately; the slide then springs toward
// it one tick at a time. A request made mid-transition supersedes the one in
// flight: ticks already scheduled for the old transition are ignored and the
// slide continues from wherever it was.
type Drawer struct {
	id     int
	gen    int
	target DrawerValue

	pos, vel  float64
	animating bool

	spring harmonica.Spring
	frame  time.Duration
}

func NewDrawer(fps int, frequency, damping float64) *Drawer {
	if fps <= 0 {
		fps = 60
	}
	return &Drawer{
		id:     nextDrawerID(),
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		frame:  time.Second / time.Duration(fps),
	}
}

// IsOpen reports the most recently requested state.
func (d *Drawer) IsOpen() bool {
	return d.target == DrawerOpen
}

func (d *Drawer) Target() DrawerValue {
	return d.target
}

// Position is the slide progress, 0 hidden and 1 fully shown.
func (d *Drawer) Position() float64 {
	return math.Max(0, math.Min(1, d.pos))
}

func (d *Drawer) Animating() bool {
	return d.animating
}

func (d *Drawer) Open() tea.Cmd {
	return d.request(DrawerOpen)
}

func (d *Drawer) Close() tea.Cmd {
	return d.request(DrawerClosed)
}

func (d *Drawer) goal() float64 {
	if d.target == DrawerOpen {
		return 1
	}
	return 0
}

func (d *Drawer) request(v DrawerValue) tea.Cmd {
	d.target = v
	if !d.animating && d.pos == d.goal() {
		return nil
	}
	d.gen++
	d.animating = true
	return d.tick()
}

func (d *Drawer) tick() tea.Cmd {
	id, gen := d.id, d.gen
	return tea.Tick(d.frame, func(time.Time) tea.Msg {
		return DrawerTickMsg{id: id, gen: gen}
	})
}

// Update steps the transition for ticks that belong to it.
func (d *Drawer) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(DrawerTickMsg)
	if !ok || m.id != d.id || m.gen != d.gen || !d.animating {
		return nil
	}

	goal := d.goal()
	d.pos, d.vel = d.spring.Update(d.pos, d.vel, goal)
	if math.Abs(d.pos-goal) < settleEpsilon && math.Abs(d.vel) < settleEpsilon {
		d.Snap()
		return nil
	}
	return d.tick()
}

// Snap finishes any transition immediately.
func (d *Drawer) Snap() {
	d.pos, d.vel = d.goal(), 0
	d.animating = false
}
