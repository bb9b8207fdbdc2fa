package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailPane is the scroll window for the exercise detail. It is sized by
// the renderer on every layout pass, so it only needs key and wheel input.
type DetailPane struct {
	viewport viewport.Model
}

func NewDetailPane() *DetailPane {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ", "f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "b")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Left:         key.NewBinding(key.WithDisabled()),
		Right:        key.NewBinding(key.WithDisabled()),
	}
	return &DetailPane{viewport: vp}
}

// Scroll shows content through the pane's window. It matches
// view.ScrollFunc.
func (p *DetailPane) Scroll(content string, width, height int) string {
	p.viewport.Width = width
	p.viewport.Height = height
	p.viewport.SetContent(content)
	return p.viewport.View()
}

func (p *DetailPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *DetailPane) Offset() int {
	return p.viewport.YOffset
}

func (p *DetailPane) AtTop() bool {
	return p.viewport.AtTop()
}

func (p *DetailPane) AtBottom() bool {
	return p.viewport.AtBottom()
}
