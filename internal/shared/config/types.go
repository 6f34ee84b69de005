package config

type DatabaseConfig struct {
	// Path is the SQLite database file. ":memory:" opens an ephemeral
	// in-memory store.
	Path string `mapstructure:"path"`
	// BusyTimeoutMS is the SQLite busy_timeout in milliseconds.
	BusyTimeoutMS int `mapstructure:"busy_timeout_ms"`
	// SeedFile optionally points to a YAML menu used to seed the catalog
	// on first initialization instead of the built-in default menu.
	SeedFile string `mapstructure:"seed_file"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}
