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

// TabletScreen is the dual-pane composition with a navigation rail.
type TabletScreen struct {
	plan     data.Plan
	metrics  compose.Metrics
	keys     KeyMap
	renderer *view.Renderer
	detail   *components.DetailPane

	frame  view.Frame
	width  int
	height int
}

func NewTabletScreen(env *Env) *TabletScreen {
	detail := components.NewDetailPane()
	renderer := view.NewRenderer(env.Theme)
	renderer.Scroll = detail.Scroll

	return &TabletScreen{
		plan:     env.Plan,
		metrics:  env.Metrics,
		keys:     env.Keys,
		renderer: renderer,
		detail:   detail,
	}
}

func (s *TabletScreen) Init() tea.Cmd {
	return nil
}

func (s *TabletScreen) Detail() *components.DetailPane {
	return s.detail
}

func (s *TabletScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		return s, s.detail.Update(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if hit, ok := s.frame.HitAt(msg.X, msg.Y); ok {
				// Rail entries don't navigate anywhere yet.
				logger.Debug("action has no effect", "action", hit.Action.String(), "target", hit.Target)
			}
			return s, nil
		}
		return s, s.detail.Update(msg)
	}

	return s, nil
}

func (s *TabletScreen) View() string {
	if s.width == 0 {
		return ""
	}
	s.frame = s.renderer.Layout(compose.Tablet(s.plan, s.metrics), s.width, s.height)
	return s.frame.View
}

func (s *TabletScreen) HelpBindings() []key.Binding {
	return []key.Binding{s.keys.Scroll, s.keys.Quit}
}
