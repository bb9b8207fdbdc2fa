package cmd

import (
	"fmt"

	"github.com/kerbaras/fittracker/pkg/app"
	"github.com/spf13/cobra"
)

var (
	renderWidth  int
	renderHeight int
	renderDrawer bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print one frame of the workout screen",
	Long:  "Render the layout chosen for a surface --width dp wide and --height rows tall, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderWidth <= 0 {
			return fmt.Errorf("--width must be positive, got %d", renderWidth)
		}
		if renderHeight <= 0 {
			return fmt.Errorf("--height must be positive, got %d", renderHeight)
		}

		a := app.NewApp(cfg)
		fmt.Fprintln(cmd.OutOrStdout(), a.Snapshot(renderWidth, renderHeight, renderDrawer))
		return nil
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 400, "surface width in dp")
	renderCmd.Flags().IntVar(&renderHeight, "height", 40, "surface height in rows")
	renderCmd.Flags().BoolVar(&renderDrawer, "drawer", false, "show the navigation drawer open (phone layout only)")
}
