package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/fittracker/pkg/app/styles"
	"github.com/kerbaras/fittracker/pkg/data"
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List today's exercises",
	Long:  "Display the exercises of today's workout in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		plan := data.SamplePlan()
		theme := styles.NewTheme(styles.PaletteFromConfig(cfg.Theme))

		columns := []table.Column{
			{Title: "Exercise", Width: 32},
			{Title: "Sets", Width: 6},
			{Title: "Reps", Width: 6},
			{Title: "Load", Width: 10},
		}

		rows := []table.Row{}
		for _, e := range plan.Exercises {
			rows = append(rows, table.Row{
				e.Name,
				fmt.Sprintf("%d", e.Sets),
				fmt.Sprintf("%d", e.Reps),
				fmt.Sprintf("%d %s", e.Weight, e.Unit),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)+1), // header row included
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Palette.Outline)).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Cell
		t.SetStyles(s)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\n%s (%d exercises)\n\n", theme.Title.Render("Daily Focus: "+plan.Focus), len(plan.Exercises))
		fmt.Fprintln(out, t.View())
	},
}
