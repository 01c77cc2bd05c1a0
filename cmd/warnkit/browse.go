package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"warnkit/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <snapshot>...",
	Short: "Interactively browse warning snapshots",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	recs, err := loadSnapshots(cmd.Context(), args)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		if !quiet(cmd) {
			fmt.Fprintln(cmd.OutOrStdout(), "no warnings recorded")
		}
		return nil
	}
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("browse requires a terminal; use 'warnkit show' for piped output")
	}

	program := tea.NewProgram(ui.NewBrowseModel(recs), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
