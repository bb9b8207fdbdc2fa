package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/fittracker/pkg/app/layout"
	"github.com/kerbaras/fittracker/pkg/app/screens"
	"github.com/kerbaras/fittracker/pkg/config"
)

type App struct {
	cfg config.Config
}

func NewApp(cfg config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(screens.NewEnv(a.cfg))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Snapshot renders a single settled frame for a surface widthDP wide and rows
// tall, without starting the event loop.
func (a *App) Snapshot(widthDP, rows int, drawerOpen bool) string {
	root := screens.NewRootScreen(screens.NewEnv(a.cfg))
	root.Measure(widthDP, layout.ToColumns(widthDP, a.cfg.UI.CellDP), rows)

	if phone := root.Phone(); phone != nil && drawerOpen {
		phone.OpenDrawer()
		phone.Drawer().Snap()
	}
	return root.View()
}
