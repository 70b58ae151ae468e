package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/obhlivoj/parking-panic/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the parking SSH server",
	Long: `Start an SSH server that lets users connect and play over SSH.

Each connection gets its own session starting at the level menu. The
play history is stored per-server; records are shared.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.parking/ssh_host_key

Examples:
  parking serve                           # Listen on :23235 with auto-generated key
  parking serve --ssh :2222               # Listen on port 2222
  parking serve --host-key ./my_host_key  # Use specific host key
  parking serve --db ./parking.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	s, err := loadSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	address := flagSSHAddr
	if address == "" {
		address = fmt.Sprintf("%s:%d", s.cfg.SSH.Host, s.cfg.SSH.Port)
	}
	hostKey := flagHostKey
	if hostKey == "" {
		hostKey = s.cfg.SSH.HostKeyPath
	}

	cfg := tui.SSHServerConfig{
		Address:     address,
		HostKeyPath: hostKey,
		Catalog:     s.catalog,
		RecordsPath: s.recordsPath,
		DBPath:      s.dbPath,
		UI:          s.cfg.UI,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting parking SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
