// Package config provides YAML-based configuration loading for the
// parking puzzle: data file locations, UI options and SSH serving.
package config

// Config is the top-level application configuration.
type Config struct {
	Data DataConfig `yaml:"data"`
	UI   UIConfig   `yaml:"ui"`
	SSH  SSHConfig  `yaml:"ssh"`
}

// DataConfig locates the level catalog, the records file and the
// play-history database. Paths starting with ~ are expanded.
type DataConfig struct {
	LevelsPath  string `yaml:"levels_path"`  // explicit catalog file, empty for search order
	LevelsDir   string `yaml:"levels_dir"`   // extra directory of YAML level files
	RecordsPath string `yaml:"records_path"` // best-moves records file
	DBPath      string `yaml:"db_path"`      // SQLite play history
}

// UIConfig holds terminal presentation options.
type UIConfig struct {
	Color      bool `yaml:"color"`       // colorize cars in the lot picture
	ShowMoves  bool `yaml:"show_moves"`  // show the move counter while playing
	ShowRecord bool `yaml:"show_record"` // show the level's best result while playing
}

// SSHConfig holds the settings for `parking serve`.
type SSHConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}
