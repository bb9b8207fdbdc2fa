package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i)
	}
	return strings.Join(lines, "\n")
}

func TestDetailPaneScrollShowsWindow(t *testing.T) {
	p := NewDetailPane()

	out := p.Scroll(numberedLines(20), 20, 5)

	assert.Contains(t, out, "line 00")
	assert.Contains(t, out, "line 04")
	assert.NotContains(t, out, "line 05")
	assert.True(t, p.AtTop())
}

func TestDetailPaneKeysScroll(t *testing.T) {
	p := NewDetailPane()
	content := numberedLines(20)
	p.Scroll(content, 20, 5)

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 2, p.Offset())

	out := p.Scroll(content, 20, 5)
	assert.Contains(t, out, "line 02")
	assert.NotContains(t, out, "line 01")

	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, p.Offset())
}

func TestDetailPaneStopsAtBottom(t *testing.T) {
	p := NewDetailPane()
	p.Scroll(numberedLines(8), 20, 5)

	for i := 0; i < 10; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.Equal(t, 3, p.Offset())
	assert.True(t, p.AtBottom())
}

func TestDetailPaneIgnoresHorizontalKeys(t *testing.T) {
	p := NewDetailPane()
	p.Scroll(numberedLines(20), 20, 5)

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, p.Offset())
}

func TestDetailPaneMouseWheel(t *testing.T) {
	p := NewDetailPane()
	p.Scroll(numberedLines(40), 20, 5)

	p.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Greater(t, p.Offset(), 0)
}
