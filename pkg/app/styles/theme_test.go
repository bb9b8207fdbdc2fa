package styles

import (
	"testing"

	"github.com/kerbaras/fittracker/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestPaletteFromDefaultConfigMatchesWorkoutDark(t *testing.T) {
	p := PaletteFromConfig(config.Default().Theme)

	assert.Equal(t, WorkoutDark, p)
}

func TestNewTheme(t *testing.T) {
	theme := NewTheme(WorkoutDark)

	assert.Equal(t, WorkoutDark, theme.Palette)
	assert.Contains(t, theme.Headline.Render("Bench Press"), "Bench Press")
	assert.True(t, theme.Title.GetBold())
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "#000000", Blend("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 1))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 2))

	mid := Blend("#000000", "#ffffff", 0.5)
	assert.NotEqual(t, "#000000", mid)
	assert.NotEqual(t, "#ffffff", mid)

	assert.Equal(t, "bogus", Blend("bogus", "#ffffff", 0.5))
}
