package screens

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/fittracker/pkg/app/components"
	"github.com/kerbaras/fittracker/pkg/app/compose"
	"github.com/kerbaras/fittracker/pkg/app/view"
	"github.com/kerbaras/fittracker/pkg/data"
	"github.com/kerbaras/fittracker/pkg/logger"
)

// PhoneScreen is the single-column composition. It owns the drawer, so the
// drawer's state lives exactly as long as the phone layout does.
type PhoneScreen struct {
	plan     data.Plan
	metrics  compose.Metrics
	keys     KeyMap
	renderer *view.Renderer
	drawer   *components.Drawer
	detail   *components.DetailPane
	targets  []string
	focus    int

	// frame is the last layout, used to resolve mouse clicks.
	frame  view.Frame
	width  int
	height int
}

func NewPhoneScreen(env *Env) *PhoneScreen {
	detail := components.NewDetailPane()
	renderer := view.NewRenderer(env.Theme)
	renderer.Scroll = detail.Scroll

	d := env.Config.Drawer
	return &PhoneScreen{
		plan:     env.Plan,
		metrics:  env.Metrics,
		keys:     env.Keys,
		renderer: renderer,
		drawer:   components.NewDrawer(d.FPS, d.Frequency, d.Damping),
		detail:   detail,
		targets:  compose.DrawerTargets(env.Plan),
	}
}

func (s *PhoneScreen) Init() tea.Cmd {
	return nil
}

func (s *PhoneScreen) Drawer() *components.Drawer {
	return s.drawer
}

func (s *PhoneScreen) Detail() *components.DetailPane {
	return s.detail
}

// Focus is the highlighted drawer entry, or -1 while the drawer is closed.
func (s *PhoneScreen) Focus() int {
	if !s.drawer.IsOpen() {
		return -1
	}
	return s.focus
}

func (s *PhoneScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case components.DrawerTickMsg:
		return s, s.drawer.Update(msg)

	case tea.KeyMsg:
		if s.drawer.IsOpen() {
			return s, s.drawerKey(msg)
		}
		switch {
		case key.Matches(msg, s.keys.Menu):
			return s, s.activate(view.ActionOpenDrawer, "menu")
		case key.Matches(msg, s.keys.Start):
			return s, s.activate(view.ActionStart, "start")
		}
		return s, s.detail.Update(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if hit, ok := s.frame.HitAt(msg.X, msg.Y); ok {
				return s, s.activate(hit.Action, hit.Target)
			}
			return s, nil
		}
		if !s.drawer.IsOpen() {
			return s, s.detail.Update(msg)
		}
	}

	return s, nil
}

func (s *PhoneScreen) drawerKey(msg tea.KeyMsg) tea.Cmd {
	n := len(s.targets)
	switch {
	case key.Matches(msg, s.keys.Up):
		s.focus = (s.focus - 1 + n) % n
	case key.Matches(msg, s.keys.Down):
		s.focus = (s.focus + 1) % n
	case key.Matches(msg, s.keys.Select):
		return s.activate(view.ActionCloseDrawer, s.targets[s.focus])
	case key.Matches(msg, s.keys.Close):
		return s.activate(view.ActionCloseDrawer, "scrim")
	}
	return nil
}

// OpenDrawer requests the drawer open, as the menu button does.
func (s *PhoneScreen) OpenDrawer() tea.Cmd {
	return s.activate(view.ActionOpenDrawer, "menu")
}

func (s *PhoneScreen) activate(a view.Action, target string) tea.Cmd {
	switch a {
	case view.ActionOpenDrawer:
		logger.Debug("drawer open requested", "via", target)
		s.focus = 0
		return s.drawer.Open()
	case view.ActionCloseDrawer:
		logger.Debug("drawer close requested", "via", target)
		return s.drawer.Close()
	default:
		logger.Debug("action has no effect", "action", a.String(), "target", target)
		return nil
	}
}

func (s *PhoneScreen) View() string {
	if s.width == 0 {
		return ""
	}
	node := compose.Phone(s.plan, s.metrics, compose.DrawerFrame{
		Position: s.drawer.Position(),
		Focus:    s.Focus(),
	})
	s.frame = s.renderer.Layout(node, s.width, s.height)
	return s.frame.View
}

func (s *PhoneScreen) HelpBindings() []key.Binding {
	if s.drawer.IsOpen() {
		return []key.Binding{s.keys.Up, s.keys.Down, s.keys.Select, s.keys.Close, s.keys.Quit}
	}
	return []key.Binding{s.keys.Menu, s.keys.Scroll, s.keys.Start, s.keys.Quit}
}
