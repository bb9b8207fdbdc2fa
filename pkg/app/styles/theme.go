package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/fittracker/pkg/config"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the color scheme every composition is rendered with.
type Palette struct {
	Primary            string
	OnPrimary          string
	PrimaryContainer   string
	OnPrimaryContainer string
	Secondary          string
	Surface            string
	SurfaceVariant     string
	Background         string
	Outline            string
	OnSurface          string
}

// WorkoutDark is the neon-on-black workout palette.
var WorkoutDark = Palette{
	Primary:            "#CCFF00",
	OnPrimary:          "#000000",
	PrimaryContainer:   "#2E3500",
	OnPrimaryContainer: "#CCFF00",
	Secondary:          "#B0BEC5",
	Surface:            "#121412",
	SurfaceVariant:     "#49454F",
	Background:         "#0A0B0A",
	Outline:            "#3F443F",
	OnSurface:          "#E6E1E5",
}

func PaletteFromConfig(c config.ThemeConfig) Palette {
	return Palette{
		Primary:            c.Primary,
		OnPrimary:          c.OnPrimary,
		PrimaryContainer:   c.PrimaryContainer,
		OnPrimaryContainer: c.OnPrimaryContainer,
		Secondary:          c.Secondary,
		Surface:            c.Surface,
		SurfaceVariant:     c.SurfaceVariant,
		Background:         c.Background,
		Outline:            c.Outline,
		OnSurface:          c.OnSurface,
	}
}

// Theme is the set of styles derived from a Palette. It is built once and
// passed explicitly to renderers.
type Theme struct {
	Palette Palette

	// Typography
	Headline lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style

	// Containers
	Card        lipgloss.Style
	Rail        lipgloss.Style
	DrawerSheet lipgloss.Style
	TopBar      lipgloss.Style

	// Interactive
	OutlinedButton   lipgloss.Style
	FAB              lipgloss.Style
	NavItem          lipgloss.Style
	NavItemSelected  lipgloss.Style
	NavItemFocused   lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	Icon             lipgloss.Style

	Divider lipgloss.Style
	Help    lipgloss.Style
}

func NewTheme(p Palette) *Theme {
	primary := lipgloss.Color(p.Primary)
	onSurface := lipgloss.Color(p.OnSurface)
	outline := lipgloss.Color(p.Outline)

	return &Theme{
		Palette: p,

		Headline: lipgloss.NewStyle().
			Foreground(onSurface).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Secondary)),

		Body: lipgloss.NewStyle().
			Foreground(onSurface),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Secondary)).
			Faint(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(outline).
			Padding(0, 1),

		Rail: lipgloss.NewStyle().
			Background(lipgloss.Color(p.SurfaceVariant)).
			Padding(1, 1),

		DrawerSheet: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Surface)).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(outline).
			Padding(1, 2),

		TopBar: lipgloss.NewStyle().
			Foreground(onSurface).
			Bold(true),

		OutlinedButton: lipgloss.NewStyle().
			Foreground(primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(outline).
			Padding(0, 1),

		FAB: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.OnPrimaryContainer)).
			Background(lipgloss.Color(p.PrimaryContainer)).
			Bold(true).
			Padding(0, 2),

		NavItem: lipgloss.NewStyle().
			Foreground(onSurface).
			Padding(0, 1),

		NavItemSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.OnPrimaryContainer)).
			Background(lipgloss.Color(p.PrimaryContainer)).
			Bold(true).
			Padding(0, 1),

		NavItemFocused: lipgloss.NewStyle().
			Foreground(primary).
			Underline(true).
			Padding(0, 1),

		ListItem: lipgloss.NewStyle().
			Padding(0, 1),

		ListItemSelected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.PrimaryContainer)).
			Padding(0, 1),

		Icon: lipgloss.NewStyle().
			Foreground(primary),

		Divider: lipgloss.NewStyle().
			Foreground(outline),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Secondary)).
			Italic(true),
	}
}

// Blend mixes from toward to by t (0..1) and returns a hex color. Invalid
// input colors fall back to from.
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	if t <= 0 {
		return a.Hex()
	}
	if t >= 1 {
		return b.Hex()
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}
