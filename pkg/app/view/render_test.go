package view_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/fittracker/pkg/app/compose"
	"github.com/kerbaras/fittracker/pkg/app/styles"
	"github.com/kerbaras/fittracker/pkg/app/view"
	"github.com/kerbaras/fittracker/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metrics = compose.Metrics{CellDP: 8, ListPaneDP: 300}

func newRenderer() *view.Renderer {
	return view.NewRenderer(styles.NewTheme(styles.WorkoutDark))
}

func plain(s string) string {
	return ansi.Strip(s)
}

func TestRenderTextWraps(t *testing.T) {
	out := plain(newRenderer().Render(view.Text{Content: "Seated Dumbbell Shoulder Press"}, 12, 0))

	assert.Greater(t, lipgloss.Height(out), 1)
	assert.LessOrEqual(t, lipgloss.Width(out), 12)
	assert.Contains(t, out, "Seated")
}

func TestRenderDivider(t *testing.T) {
	out := plain(newRenderer().Render(view.Divider{}, 15, 0))

	assert.Equal(t, strings.Repeat("─", 15), out)
}

func TestRenderSpacer(t *testing.T) {
	r := newRenderer()

	assert.Equal(t, 1, lipgloss.Height(r.Render(view.Spacer{Lines: 1}, 10, 0)))
	assert.Equal(t, 3, lipgloss.Height(r.Render(view.Spacer{Lines: 3}, 10, 0)))
}

func TestRenderProgress(t *testing.T) {
	out := plain(newRenderer().Render(view.Progress{Value: 0.45}, 20, 0))

	assert.Equal(t, 9, strings.Count(out, "█"))
	assert.Equal(t, 20, lipgloss.Width(out))
}

func TestRenderProgressClamps(t *testing.T) {
	r := newRenderer()

	assert.Equal(t, 10, strings.Count(plain(r.Render(view.Progress{Value: 3}, 10, 0)), "█"))
	assert.Equal(t, 0, strings.Count(plain(r.Render(view.Progress{Value: -1}, 10, 0)), "█"))
}

func TestRenderRowAllocatesWidth(t *testing.T) {
	row := view.Row{Panes: []view.Pane{
		{Width: view.Intrinsic, Node: view.Text{Content: "rail"}},
		{Width: 10, Node: view.Text{Content: "fixed"}},
		{Width: view.Fill, Node: view.Text{Content: "rest"}},
	}}

	out := plain(newRenderer().Render(row, 40, 3))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
	assert.Equal(t, 4, strings.Index(lines[0], "fixed"))
	assert.Equal(t, 14, strings.Index(lines[0], "rest"))
}

func TestRenderRowTwoFills(t *testing.T) {
	row := view.Row{Panes: []view.Pane{
		{Width: view.Fill, Node: view.Text{Content: "a"}},
		{Width: view.Fill, Node: view.Text{Content: "b"}},
	}}

	out := plain(newRenderer().Render(row, 11, 0))
	assert.Equal(t, 11, lipgloss.Width(out))
	assert.Equal(t, 5, strings.Index(out, "b"))
}

func TestRenderScrollColumnUsesScrollFunc(t *testing.T) {
	r := newRenderer()
	var gotContent string
	var gotW, gotH int
	r.Scroll = func(content string, w, h int) string {
		gotContent, gotW, gotH = content, w, h
		return "window"
	}

	col := view.Column{Scroll: true, Children: []view.Node{view.Text{Content: "inside"}}}
	out := r.Render(col, 20, 5)

	assert.Equal(t, "window", out)
	assert.Contains(t, plain(gotContent), "inside")
	assert.Equal(t, 20, gotW)
	assert.Equal(t, 5, gotH)
}

func TestRenderScrollColumnCropsWithoutScrollFunc(t *testing.T) {
	col := view.Column{Scroll: true, Children: []view.Node{
		view.Text{Content: "one"},
		view.Text{Content: "two"},
		view.Text{Content: "three"},
	}}

	out := plain(newRenderer().Render(col, 10, 2))
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.NotContains(t, out, "three")
}

func TestRenderCard(t *testing.T) {
	card := compose.ExerciseCard(data.SamplePlan().Exercises[0])

	out := plain(newRenderer().Render(card, 40, 0))
	assert.Contains(t, out, "Bench Press")
	assert.Contains(t, out, "4 sets x 6 reps • 105 lbs")
	assert.Contains(t, out, "Log Set")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}

func TestLayoutRailHits(t *testing.T) {
	rail := view.Rail{Items: []view.ListItem{
		{Headline: "Workouts", Icon: view.IconFitness, Selected: true, OnClick: view.ActionNavigate, Target: "workouts"},
		{Headline: "History", Icon: view.IconList, OnClick: view.ActionNavigate, Target: "history"},
	}}

	f := newRenderer().Layout(rail, 40, 10)
	require.Len(t, f.Hits, 2)

	assert.Equal(t, 10, lipgloss.Height(f.View))
	assert.Contains(t, plain(f.View), "Workouts")

	h, ok := f.HitAt(f.Hits[1].X, f.Hits[1].Y)
	require.True(t, ok)
	assert.Equal(t, "history", h.Target)
	assert.Greater(t, f.Hits[1].Y, f.Hits[0].Y)
}

func TestLayoutPhoneClosed(t *testing.T) {
	plan := data.SamplePlan()
	f := newRenderer().Layout(compose.Phone(plan, metrics, compose.DrawerFrame{Focus: -1}), 50, 30)
	out := plain(f.View)

	assert.Equal(t, 30, lipgloss.Height(out))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(strings.Split(out, "\n")[0]), "≡  FitTracker"))
	assert.Contains(t, out, "Daily Focus: Chest")
	assert.Contains(t, out, "Bench Press")
	assert.Contains(t, out, "4 sets x 6 reps • 105 lbs")
	assert.Contains(t, out, "Start")
	assert.NotContains(t, out, "Navigation")

	menu, ok := f.HitAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, view.ActionOpenDrawer, menu.Action)

	start, ok := f.Locate(view.ActionStart, "start")
	require.True(t, ok)
	assert.Equal(t, 29, start.Y+start.Height)

	_, ok = f.Locate(view.ActionCloseDrawer, "scrim")
	assert.False(t, ok)
}

func TestLayoutPhoneOpen(t *testing.T) {
	plan := data.SamplePlan()
	f := newRenderer().Layout(compose.Phone(plan, metrics, compose.DrawerFrame{Position: 1, Focus: 0}), 50, 30)
	out := plain(f.View)

	assert.Equal(t, 30, lipgloss.Height(out))
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "› ◆ Workouts")
	assert.Contains(t, out, "Muscle Groups")
	assert.Contains(t, out, "Legs")

	workouts, ok := f.Locate(view.ActionCloseDrawer, compose.TargetWorkouts)
	require.True(t, ok)
	assert.Equal(t, 2, workouts.Y)

	h, ok := f.HitAt(workouts.X, workouts.Y)
	require.True(t, ok)
	assert.Equal(t, compose.TargetWorkouts, h.Target)

	// Right of the sheet is scrim, which also covers the top bar.
	h, ok = f.HitAt(48, 10)
	require.True(t, ok)
	assert.Equal(t, "scrim", h.Target)
	h, ok = f.HitAt(1, 0)
	require.True(t, ok)
	assert.Equal(t, view.ActionCloseDrawer, h.Action)

	for _, g := range plan.Groups {
		gh, ok := f.Locate(view.ActionCloseDrawer, g.Name)
		require.True(t, ok, g.Name)
		assert.Greater(t, gh.Y, workouts.Y)
	}
}

func TestLayoutPhoneHalfOpen(t *testing.T) {
	f := newRenderer().Layout(compose.Phone(data.SamplePlan(), metrics, compose.DrawerFrame{Position: 0.5, Focus: -1}), 50, 30)

	assert.Equal(t, 30, lipgloss.Height(f.View))
	for _, line := range strings.Split(plain(f.View), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 50)
	}
	_, ok := f.Locate(view.ActionCloseDrawer, "scrim")
	assert.True(t, ok)
}

func TestLayoutPhoneFitsNarrowSurface(t *testing.T) {
	for w := 1; w <= 8; w++ {
		for _, pos := range []float64{0, 0.5, 1} {
			f := newRenderer().Layout(compose.Phone(data.SamplePlan(), metrics, compose.DrawerFrame{Position: pos, Focus: -1}), w, 10)
			for _, line := range strings.Split(plain(f.View), "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), w, "width %d position %.1f", w, pos)
			}
		}
	}
}

func TestLayoutTablet(t *testing.T) {
	f := newRenderer().Layout(compose.Tablet(data.SamplePlan(), metrics), 100, 40)
	out := plain(f.View)

	assert.Equal(t, 40, lipgloss.Height(out))
	for _, want := range []string{"Workouts", "History", "Muscle Groups", "Chest & Triceps", "Back & Biceps", "Legs", "5 Exercises", "Daily Focus: Chest", "Bench Press"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "FitTracker")

	hist, ok := f.Locate(view.ActionNavigate, compose.TargetHistory)
	require.True(t, ok)
	assert.Less(t, hist.X, 14)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := view.Column{Children: []view.Node{
		view.Card{Children: []view.Node{view.Text{Content: "hidden"}}},
		view.Text{Content: "visible"},
	}}

	var texts []string
	view.Walk(root, func(n view.Node) bool {
		if tx, ok := n.(view.Text); ok {
			texts = append(texts, tx.Content)
		}
		_, isCard := n.(view.Card)
		return !isCard
	})
	assert.Equal(t, []string{"visible"}, texts)
}

func TestFirst(t *testing.T) {
	root := compose.Detail(data.SamplePlan())

	btn, ok := view.First(root, func(b view.Button) bool { return b.Target == "Lateral Raises" })
	require.True(t, ok)
	assert.Equal(t, view.ActionLogSet, btn.OnClick)

	_, ok = view.First(root, func(b view.Button) bool { return b.Target == "Squat" })
	assert.False(t, ok)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "open-drawer", view.ActionOpenDrawer.String())
	assert.Equal(t, "close-drawer", view.ActionCloseDrawer.String())
	assert.Equal(t, "none", view.ActionNone.String())
}
