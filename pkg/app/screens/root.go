package screens

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/fittracker/pkg/app/compose"
	"github.com/kerbaras/fittracker/pkg/app/layout"
	"github.com/kerbaras/fittracker/pkg/app/styles"
	"github.com/kerbaras/fittracker/pkg/config"
	"github.com/kerbaras/fittracker/pkg/data"
	"github.com/kerbaras/fittracker/pkg/logger"
)

// Env is what every screen is built from.
type Env struct {
	Config  config.Config
	Theme   *styles.Theme
	Plan    data.Plan
	Metrics compose.Metrics
	Keys    KeyMap
}

func NewEnv(cfg config.Config) *Env {
	return &Env{
		Config: cfg,
		Theme:  styles.NewTheme(styles.PaletteFromConfig(cfg.Theme)),
		Plan:   data.SamplePlan(),
		Metrics: compose.Metrics{
			CellDP:     cfg.UI.CellDP,
			ListPaneDP: cfg.UI.ListPaneDP,
		},
		Keys: DefaultKeyMap(),
	}
}

type screen interface {
	tea.Model
	HelpBindings() []key.Binding
}

// footerHeight is the rows reserved for the help line.
const footerHeight = 1

// RootScreen picks the composition for the current width and routes input to
// it. Nothing is drawn until the first size measurement arrives.
type RootScreen struct {
	env  *Env
	help help.Model

	measured bool
	mode     layout.Mode
	phone    *PhoneScreen
	tablet   *TabletScreen

	width  int
	height int
}

func NewRootScreen(env *Env) *RootScreen {
	h := help.New()
	h.Styles.ShortKey = env.Theme.Title
	h.Styles.ShortDesc = env.Theme.Help
	h.Styles.ShortSeparator = env.Theme.Muted

	return &RootScreen{env: env, help: h}
}

func (r *RootScreen) Init() tea.Cmd {
	return nil
}

func (r *RootScreen) Mode() layout.Mode {
	return r.mode
}

func (r *RootScreen) Measured() bool {
	return r.measured
}

// Phone returns the phone screen, or nil while the tablet layout is active.
func (r *RootScreen) Phone() *PhoneScreen {
	return r.phone
}

// Tablet returns the tablet screen, or nil while the phone layout is active.
func (r *RootScreen) Tablet() *TabletScreen {
	return r.tablet
}

func (r *RootScreen) active() screen {
	if r.mode == layout.Tablet && r.tablet != nil {
		return r.tablet
	}
	if r.phone != nil {
		return r.phone
	}
	return nil
}

// Measure runs a layout pass for a surface widthDP wide, drawn into
// columns x rows cells.
func (r *RootScreen) Measure(widthDP, columns, rows int) tea.Cmd {
	mode := layout.Select(widthDP)
	if !r.measured || mode != r.mode {
		logger.Debug("layout selected", "mode", mode.String(), "width_dp", widthDP, "columns", columns)
		switch mode {
		case layout.Tablet:
			r.phone = nil
			r.tablet = NewTabletScreen(r.env)
		default:
			r.tablet = nil
			r.phone = NewPhoneScreen(r.env)
		}
		r.mode = mode
		r.measured = true
	}

	r.width = columns
	r.height = rows
	r.help.Width = columns

	_, cmd := r.active().Update(tea.WindowSizeMsg{
		Width:  columns,
		Height: r.bodyHeight(),
	})
	return cmd
}

// showFooter reports whether there is room for the help line below the body.
func (r *RootScreen) showFooter() bool {
	return r.height > footerHeight
}

func (r *RootScreen) bodyHeight() int {
	if !r.showFooter() {
		return max(r.height, 1)
	}
	return r.height - footerHeight
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return r, r.Measure(layout.ToDP(msg.Width, r.env.Config.UI.CellDP), msg.Width, msg.Height)

	case tea.KeyMsg:
		if key.Matches(msg, r.env.Keys.Quit) {
			return r, tea.Quit
		}
	}

	s := r.active()
	if s == nil {
		return r, nil
	}
	_, cmd := s.Update(msg)
	return r, cmd
}

func (r *RootScreen) View() string {
	s := r.active()
	if !r.measured || s == nil {
		return ""
	}
	if !r.showFooter() {
		return s.View()
	}
	footer := r.help.ShortHelpView(s.HelpBindings())
	return lipgloss.JoinVertical(lipgloss.Left, s.View(), footer)
}
