package cmd

import (
	"fmt"
	"os"

	"github.com/kerbaras/fittracker/pkg/app"
	"github.com/kerbaras/fittracker/pkg/config"
	"github.com/kerbaras/fittracker/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	logFile string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fittracker",
	Short: "A responsive workout tracker for the terminal",
	Long:  "FitTracker shows today's workout, switching between a phone and a tablet layout as the terminal is resized",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if debug {
			c.Log.Debug = true
		}
		if logFile != "" {
			c.Log.Path = logFile
		}
		cfg = c

		logger.SetDebug(cfg.Log.Debug)
		if err := logger.Init(cfg.Log.Path); err != nil {
			// Logging is best effort; the UI still works without it.
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(cfg)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/fittracker/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exercisesCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
