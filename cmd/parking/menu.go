package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obhlivoj/parking-panic/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a level picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level. Levels
unlock in order: finish one to make the next selectable. After a level
ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Records screen
  Q            - Quit

Examples:
  parking menu
  parking menu --levels ./my-levels.txt`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table := loadRecords(s.recordsPath)
	store := openStore(s.dbPath)

	runErr := tui.RunApp(tui.AppDeps{
		Catalog:     s.catalog,
		Records:     table,
		RecordsPath: s.recordsPath,
		Store:       store,
		UI:          s.cfg.UI,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
