package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obhlivoj/parking-panic/internal/platform/tui"
	"github.com/obhlivoj/parking-panic/internal/records"
	"github.com/obhlivoj/parking-panic/internal/storage"
)

var (
	flagRecent     int
	flagRecordsTUI bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show best results and play history",
	Long: `Display the best move count per level along with the aggregated
play history from the database.

Examples:
  parking records
  parking records --recent 20
  parking records --tui`,
	Run: runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also show the N most recent plays")
	recordsCmd.Flags().BoolVar(&flagRecordsTUI, "tui", false, "Open the interactive records screen")
}

func runRecords(cmd *cobra.Command, args []string) {
	s, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table := loadRecords(s.recordsPath)
	store := openStore(s.dbPath)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if flagRecordsTUI {
		if err := tui.RunRecords(table, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var statsByLevel map[int]storage.LevelStats
	if store != nil {
		stats, statsErr := store.Stats()
		if statsErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read play history: %v\n", statsErr)
		}
		statsByLevel = make(map[int]storage.LevelStats, len(stats))
		for _, st := range stats {
			statsByLevel[st.Level] = st
		}
	}

	fmt.Println("Best results:")
	fmt.Println()
	fmt.Printf("  %-6s  %-8s  %-6s  %s\n", "Level", "Best", "Plays", "Wins")
	fmt.Printf("  %-6s  %-8s  %-6s  %s\n", "-----", "----", "-----", "----")

	for _, level := range table.Levels() {
		best := records.NotSet
		if moves, ok := table.Best(level); ok {
			best = fmt.Sprintf("%d", moves)
		}
		plays, wins := "-", "-"
		if st, ok := statsByLevel[level]; ok {
			plays = fmt.Sprintf("%d", st.Plays)
			wins = fmt.Sprintf("%d", st.Wins)
		}
		fmt.Printf("  %-6d  %-8s  %-6s  %s\n", level, best, plays, wins)
	}

	if flagRecent > 0 && store != nil {
		entries, recentErr := store.RecentPlays(flagRecent)
		if recentErr != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving recent plays: %v\n", recentErr)
			os.Exit(1)
		}

		fmt.Println()
		fmt.Println("Recent plays:")
		fmt.Println()
		fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "Level", "Moves", "Won", "Date")
		fmt.Printf("  %-6s  %-6s  %-6s  %s\n", "-----", "-----", "---", "----")
		for _, e := range entries {
			won := "no"
			if e.Won {
				won = "yes"
			}
			fmt.Printf("  %-6d  %-6d  %-6s  %s\n", e.Level, e.Moves, won, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
