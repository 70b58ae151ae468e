// parking is a sliding-block puzzle played in the terminal: free the red car
// by sliding the others out of its lane.
//
// Usage:
//
//	parking menu             - Interactive level picker
//	parking play <level>     - Play a level directly
//	parking levels           - List available levels
//	parking records          - Show best results and play history
//	parking serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>   - Custom config YAML
//	--levels <path>   - Level catalog file
//	--levels-dir <dir>- Extra directory of YAML levels
//	--records <path>  - Best-results file
//	--db <path>       - Play-history database
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obhlivoj/parking-panic/internal/config"
	"github.com/obhlivoj/parking-panic/internal/levels"
	"github.com/obhlivoj/parking-panic/internal/records"
	"github.com/obhlivoj/parking-panic/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagLevels    string
	flagLevelsDir string
	flagRecords   string
	flagDBPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "parking",
	Short: "Parking Panic - free the red car from the lot",
	Long: `Parking Panic is a terminal sliding-block puzzle. Cars are stuck in
a 6x6 parking lot; slide them back and forth until the red car can
reach the exit on the right.

Available commands:
  menu     - Interactive level picker
  play     - Play a specific level directly
  levels   - List available levels
  records  - View best results and play history
  serve    - Start SSH server for remote play

Examples:
  parking menu
  parking play 1
  parking levels
  parking serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to level catalog file")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of extra YAML levels")
	rootCmd.PersistentFlags().StringVar(&flagRecords, "records", "", "Path to best-results file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to play-history database")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup resolves the effective configuration: file values first, command-line
// flags on top.
type setup struct {
	cfg         config.Config
	catalog     []levels.Level
	recordsPath string
	dbPath      string
}

func loadSetup() (setup, error) {
	var s setup

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return s, err
	}
	s.cfg = cfg

	levelsPath := cfg.Data.LevelsPath
	if flagLevels != "" {
		levelsPath = flagLevels
	}
	levelsDir := cfg.Data.LevelsDir
	if flagLevelsDir != "" {
		levelsDir = flagLevelsDir
	}

	loader := levels.Loader{
		Path: config.ExpandPath(levelsPath),
		Dir:  config.ExpandPath(levelsDir),
	}
	catalog, err := loader.Load()
	if err != nil {
		return s, fmt.Errorf("loading levels: %w", err)
	}
	s.catalog = catalog

	s.recordsPath = cfg.Data.RecordsPath
	if flagRecords != "" {
		s.recordsPath = flagRecords
	}
	s.recordsPath = config.ExpandPath(s.recordsPath)

	s.dbPath = cfg.Data.DBPath
	if flagDBPath != "" {
		s.dbPath = flagDBPath
	}

	return s, nil
}

// loadRecords loads the best-results table, falling back to a fresh one.
func loadRecords(path string) *records.Table {
	table, err := records.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load records: %v\n", err)
		return records.New()
	}
	return table
}

// openStore opens the play-history database, or returns nil with a warning.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open play-history database: %v\n", err)
		return nil
	}
	return store
}
