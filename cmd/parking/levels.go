package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obhlivoj/parking-panic/internal/levels"
	"github.com/obhlivoj/parking-panic/internal/records"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [level]",
	Short: "List all available levels",
	Long: `Shows the level catalog with car counts and best results.
With a level number, prints that level's starting grid and descriptors.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	s, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 1 {
		showLevel(s, args[0])
		return
	}

	if len(s.catalog) == 0 {
		fmt.Println("No levels available.")
		return
	}

	table := loadRecords(s.recordsPath)

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-6s  %-5s  %-8s  %s\n", "Level", "Cars", "Best", "Name")
	fmt.Printf("  %-6s  %-5s  %-8s  %s\n", "-----", "----", "----", "----")

	for _, lvl := range s.catalog {
		best := records.NotSet
		if moves, ok := table.Best(lvl.Number); ok {
			best = fmt.Sprintf("%d", moves)
		}
		name := lvl.Name
		if name == "" {
			name = "-"
		}
		locked := ""
		if !table.Known(lvl.Number) {
			locked = "  (locked)"
		}
		fmt.Printf("  %-6d  %-5d  %-8s  %s%s\n", lvl.Number, len(lvl.Cars), best, name, locked)
	}

	fmt.Println()
	fmt.Println("Run 'parking play <level>' to play a level.")
}

// showLevel prints one level's starting grid and its car descriptors.
func showLevel(s setup, arg string) {
	number, err := strconv.Atoi(arg)
	if err != nil || number < 1 {
		fmt.Fprintf(os.Stderr, "Error: %q is not a level number\n", arg)
		os.Exit(1)
	}

	lvl, ok := levels.ByNumber(s.catalog, number)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %d\n", number)
		os.Exit(1)
	}

	title := fmt.Sprintf("Level %d", lvl.Number)
	if lvl.Name != "" {
		title += " - " + lvl.Name
	}
	fmt.Println(title)
	fmt.Println()
	fmt.Println(lvl.NewBoard().GridString())
	fmt.Printf("Cars: %s\n", strings.Join(lvl.Descriptors(), " "))
}
