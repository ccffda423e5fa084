package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/vibes-hook/internal/state"
)

// #endregion

// #region config

// Backend selects where per-session mood records go.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendOff    Backend = "off"
)

// Config holds the hook's runtime settings.
type Config struct {
	// StateBackend is "file" (default), "sqlite", or "off".
	StateBackend Backend `yaml:"state_backend"`
	// StateDir is the scratch root for the file backend.
	StateDir string `yaml:"state_dir"`
	// SQLitePath is the database path for the sqlite backend.
	SQLitePath string `yaml:"sqlite_path"`
	// SprinkleProbability is the injection chance on silent moods.
	SprinkleProbability float64 `yaml:"sprinkle_probability"`
	// Debug enables debug-level logging on stderr.
	Debug bool `yaml:"debug"`
}

// Default returns the production settings.
func Default() Config {
	return Config{
		StateBackend:        BackendFile,
		StateDir:            state.DefaultDir,
		SQLitePath:          "",
		SprinkleProbability: 0.1,
	}
}

// #endregion

// #region load

// Load overlays a YAML file onto the defaults. A missing file is not an
// error, since the hook must never fail its host over configuration. A
// present, malformed file is, so typos don't silently revert to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.StateBackend {
	case BackendFile, BackendSQLite, BackendOff:
	default:
		return fmt.Errorf("unknown state_backend %q", c.StateBackend)
	}
	if c.SprinkleProbability < 0 || c.SprinkleProbability > 1 {
		return fmt.Errorf("sprinkle_probability %v outside [0,1]", c.SprinkleProbability)
	}
	if c.StateBackend == BackendSQLite && c.SQLitePath == "" {
		return fmt.Errorf("state_backend sqlite requires sqlite_path")
	}
	return nil
}

// #endregion

// #region store

// OpenStore builds the configured state store. The returned closer is
// non-nil only for backends that hold resources.
func (c Config) OpenStore() (state.Store, func() error, error) {
	switch c.StateBackend {
	case BackendSQLite:
		s, err := state.NewSQLiteStore(c.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case BackendOff:
		return state.NewMemStore(), nil, nil
	default:
		return state.NewFileStore(c.StateDir), nil, nil
	}
}

// #endregion
