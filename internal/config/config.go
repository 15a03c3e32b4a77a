package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Export ExportConfig
	PGN    PGNConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Pieces selects the glyph set: "unicode" or "ascii".
	Pieces  string
	Flipped bool
	Coords  bool
}

// ExportConfig holds PGN export settings.
type ExportConfig struct {
	Dir string
}

// PGNConfig holds tag-pair values stamped on exported games.
type PGNConfig struct {
	Event string
	Site  string
}

// Load reads configuration from file and env. Env var overrides use prefix JASKCHESS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.pieces", "unicode")
	v.SetDefault("ui.flipped", false)
	v.SetDefault("ui.coords", true)
	v.SetDefault("export.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskchess", "games"))
	v.SetDefault("pgn.event", "Casual game")
	v.SetDefault("pgn.site", "jaskchess")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKCHESS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskchess"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCHESS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Pieces != "unicode" && c.UI.Pieces != "ascii" {
		return Config{}, fmt.Errorf("ui.pieces: unknown glyph set %q", c.UI.Pieces)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// The TUI calls this when board orientation or glyph preferences change, so they
// survive restarts. Game state is never written here.
func Save(cfg Config) error {
	path := os.Getenv("JASKCHESS_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "jaskchess", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.pieces", cfg.UI.Pieces)
	v.Set("ui.flipped", cfg.UI.Flipped)
	v.Set("ui.coords", cfg.UI.Coords)
	v.Set("export.dir", cfg.Export.Dir)
	v.Set("pgn.event", cfg.PGN.Event)
	v.Set("pgn.site", cfg.PGN.Site)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
