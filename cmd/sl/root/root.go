package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studioline/internal/ui"
)

const Version = "0.1.0"

var (
	flagDBPath string
	flagSave   string
	flagSeed   int64
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:           "sl",
	Short:         "Studioline — recording-studio management sim for the terminal",
	Long:          "Studioline is a terminal management sim: run a recording studio, work multi-stage projects with staff and focus sliders, and collect scored reviews.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "path to the save database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagSave, "save", "", "save slot name (default: main)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "seed for reproducible runs (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.toml (default: XDG config dir)")

	rootCmd.AddCommand(
		newNewCmd(),
		newStatusCmd(),
		newProjectsCmd(),
		newAcceptCmd(),
		newWorkCmd(),
		newSleepCmd(),
		newFocusCmd(),
		newStaffCmd(),
		newHireCmd(),
		newAssignCmd(),
		newRestCmd(),
		newTrainCmd(),
		newHistoryCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
