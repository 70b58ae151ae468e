package config

import (
	_ "embed"
)

//go:embed defaults/parking.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data: DataConfig{
			RecordsPath: "~/.parking/records.txt",
			DBPath:      "~/.parking/parking.db",
		},
		UI: UIConfig{
			Color:      true,
			ShowMoves:  true,
			ShowRecord: true,
		},
		SSH: SSHConfig{
			Host:        "0.0.0.0",
			Port:        23235,
			HostKeyPath: "~/.parking/ssh_host_key",
		},
	}
}
