// Package compose builds the view trees for the workout screen. Every
// function here is pure: the same plan and metrics always produce the same
// tree.
package compose

import (
	"github.com/kerbaras/fittracker/pkg/app/layout"
	"github.com/kerbaras/fittracker/pkg/app/view"
	"github.com/kerbaras/fittracker/pkg/data"
)

const (
	paneGapDP     = 16
	drawerSheetDP = 360
)

// Metrics converts the dp sizes used by compositions into terminal columns.
type Metrics struct {
	CellDP     int
	ListPaneDP int
}

func (m Metrics) cols(dp int) int {
	return layout.ToColumns(dp, m.CellDP)
}

// Navigation destinations. Nothing navigates; they only identify items.
const (
	TargetWorkouts = "workouts"
	TargetHistory  = "history"
)

func navItems(onClick view.Action) []view.ListItem {
	// Workouts is the only screen, so it is always the selected entry.
	return []view.ListItem{
		{Headline: "Workouts", Icon: view.IconFitness, Selected: true, OnClick: onClick, Target: TargetWorkouts},
		{Headline: "History", Icon: view.IconList, OnClick: onClick, Target: TargetHistory},
	}
}

// Detail is the scrollable content shared by both compositions.
func Detail(plan data.Plan) view.Column {
	children := []view.Node{
		view.Text{Content: "Daily Focus: " + plan.Focus, Style: view.TextTitle},
		view.Spacer{Lines: 1},
		view.Text{Content: "Muscle Fatigue", Style: view.TextLabel},
		view.Progress{Value: plan.Fatigue},
		view.Spacer{Lines: 1},
		view.Divider{},
		view.Spacer{Lines: 1},
	}
	for _, e := range plan.Exercises {
		children = append(children, ExerciseCard(e))
	}
	return view.Column{Children: children, Scroll: true}
}

func ExerciseCard(e data.Exercise) view.Card {
	return view.Card{Children: []view.Node{
		view.Text{Content: e.Name, Style: view.TextHeadline},
		view.Text{Content: e.Prescription()},
		view.Button{Label: "Log Set", Outlined: true, OnClick: view.ActionLogSet, Target: e.Name},
	}}
}

// Tablet lays the rail, the muscle-group list and the detail side by side.
func Tablet(plan data.Plan, m Metrics) view.Row {
	gap := m.cols(paneGapDP)

	groups := make([]view.ListItem, len(plan.Groups))
	for i, g := range plan.Groups {
		groups[i] = view.ListItem{
			Headline:   g.Name,
			Supporting: g.Caption(),
			Icon:       view.IconCheck,
		}
	}
	list := view.Column{Children: []view.Node{
		view.Text{Content: "Muscle Groups", Style: view.TextHeadline},
		view.Spacer{Lines: 1},
		view.List{Items: groups},
	}}

	return view.Row{Panes: []view.Pane{
		{Width: view.Intrinsic, Node: view.Rail{Items: navItems(view.ActionNavigate)}},
		{Width: m.cols(m.ListPaneDP), Node: view.Box{PadX: gap, PadY: 1, Child: list}},
		{Width: view.Fill, Node: view.Box{PadX: gap, PadY: 1, Child: Detail(plan)}},
	}}
}

// DrawerFrame is the drawer state a phone composition is drawn with.
type DrawerFrame struct {
	Position float64
	Focus    int // index into DrawerTargets, -1 for none
}

// DrawerTargets lists the drawer entries in display order.
func DrawerTargets(plan data.Plan) []string {
	targets := []string{TargetWorkouts, TargetHistory}
	for _, g := range plan.Groups {
		targets = append(targets, g.Name)
	}
	return targets
}

// Phone stacks the detail under a top bar and hides navigation in a drawer.
func Phone(plan data.Plan, m Metrics, d DrawerFrame) view.Drawer {
	nav := navItems(view.ActionCloseDrawer)

	sheet := []view.Node{view.Text{Content: "Navigation", Style: view.TextLabel}}
	idx := 0
	for _, it := range nav {
		it.Focused = idx == d.Focus
		sheet = append(sheet, it)
		idx++
	}
	sheet = append(sheet,
		view.Spacer{Lines: 1},
		view.Divider{},
		view.Spacer{Lines: 1},
		view.Text{Content: "Muscle Groups", Style: view.TextLabel},
		view.Spacer{Lines: 1},
	)
	for _, g := range plan.Groups {
		sheet = append(sheet, view.ListItem{
			Headline: g.Name,
			Icon:     view.IconCheck,
			Focused:  idx == d.Focus,
			OnClick:  view.ActionCloseDrawer,
			Target:   g.Name,
		})
		idx++
	}

	gap := m.cols(paneGapDP)
	return view.Drawer{
		Width:    m.cols(drawerSheetDP),
		Position: d.Position,
		Sheet:    sheet,
		Body: view.Scaffold{
			TopBar: view.TopBar{
				Title: "FitTracker",
				Nav:   view.Button{Icon: view.IconMenu, OnClick: view.ActionOpenDrawer, Target: "menu"},
			},
			Body: view.Box{PadX: gap, PadY: 1, Child: Detail(plan)},
			FAB:  &view.Button{Icon: view.IconPlay, Label: "Start", OnClick: view.ActionStart, Target: "start"},
		},
	}
}
