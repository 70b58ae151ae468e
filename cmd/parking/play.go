package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/obhlivoj/parking-panic/internal/levels"
	"github.com/obhlivoj/parking-panic/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  a-z        - Pick a car by its letter
  Arrows     - Slide the picked car
  U          - Undo the last move
  R          - Restart the level
  Esc        - Leave the level
  Q/Ctrl+C   - Quit

Examples:
  parking play 1
  parking play 3 --levels ./my-levels.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// No level argument: fall through to the interactive picker.
	if len(args) == 0 {
		runMenu(cmd, args)
		return
	}

	number, err := strconv.Atoi(args[0])
	if err != nil || number < 1 {
		fmt.Fprintf(os.Stderr, "Error: %q is not a level number\n", args[0])
		os.Exit(1)
	}

	s, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, ok := levels.ByNumber(s.catalog, number)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %d\n", number)
		fmt.Fprintln(os.Stderr, "Run 'parking levels' to see available levels.")
		os.Exit(1)
	}

	table := loadRecords(s.recordsPath)
	store := openStore(s.dbPath)

	runErr := tui.RunPlay(level, table, s.recordsPath, store, s.cfg.UI)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}
