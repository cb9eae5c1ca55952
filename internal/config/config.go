// Package config loads dropgrid settings from a TOML file, DROPGRID_*
// environment variables, and command-line flags, in increasing order of
// precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/errors"
)

// EnvPrefix prefixes every environment override, e.g. DROPGRID_STORE_BACKEND.
const EnvPrefix = "DROPGRID"

// Config holds application configuration.
type Config struct {
	Board BoardConfig `mapstructure:"board"`
	Store StoreConfig `mapstructure:"store"`
	Drag  DragConfig  `mapstructure:"drag"`
	UI    UIConfig    `mapstructure:"ui"`
}

// BoardConfig selects the board to work on.
type BoardConfig struct {
	Name string `mapstructure:"name"`
}

// StoreConfig selects where boards are persisted.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"`
	Dir         string `mapstructure:"dir"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

// DragConfig tunes the drag core.
type DragConfig struct {
	Scale       float64 `mapstructure:"scale"`
	PointerSize float64 `mapstructure:"pointer_size"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	CellWidth  int `mapstructure:"cell_width"`
	CellHeight int `mapstructure:"cell_height"`
}

// StoreOptions converts the store section for board.Open.
func (c Config) StoreOptions() board.StoreOptions {
	return board.StoreOptions{
		Backend:     c.Store.Backend,
		Dir:         c.Store.Dir,
		RedisAddr:   c.Store.RedisAddr,
		RedisPrefix: c.Store.RedisPrefix,
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := errors.ValidateBoardName(c.Board.Name); err != nil {
		return err
	}
	switch c.Store.Backend {
	case board.BackendFile, board.BackendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "store.backend must be %q or %q, got %q",
			board.BackendFile, board.BackendRedis, c.Store.Backend)
	}
	if c.Drag.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "drag.scale must be positive, got %g", c.Drag.Scale)
	}
	if c.Drag.PointerSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "drag.pointer_size must be positive, got %g", c.Drag.PointerSize)
	}
	if c.UI.CellWidth < 3 || c.UI.CellHeight < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "ui cells must be at least 3x1, got %dx%d", c.UI.CellWidth, c.UI.CellHeight)
	}
	return nil
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"board":        "board.name",
	"store":        "store.backend",
	"store-dir":    "store.dir",
	"redis-addr":   "store.redis_addr",
	"scale":        "drag.scale",
	"pointer-size": "drag.pointer_size",
}

// DefaultPath returns ~/.config/dropgrid/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "dropgrid", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("board.name", board.DefaultName)
	v.SetDefault("store.backend", board.BackendFile)
	v.SetDefault("store.dir", "")
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_prefix", board.DefaultRedisPrefix)
	v.SetDefault("drag.scale", 1.06)
	v.SetDefault("drag.pointer_size", 1.0)
	v.SetDefault("ui.cell_width", 10)
	v.SetDefault("ui.cell_height", 3)
}

// Load reads configuration. The file is path if set, else $DROPGRID_CONFIG,
// else DefaultPath. An explicitly named file must exist; the default file is
// optional. Flags in fs that were set on the command line override
// everything else; fs may be nil.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	return load(path, fs, true)
}

// LoadOptional is Load for callers about to create the file: a missing file
// yields the defaults even when it was named explicitly.
func LoadOptional(path string, fs *pflag.FlagSet) (Config, error) {
	return load(path, fs, false)
}

func load(path string, fs *pflag.FlagSet, mustExist bool) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, errors.Wrap(errors.ErrCodeInternal, err, "bind flag --%s", name)
				}
			}
		}
	}

	explicit = explicit && mustExist
	if err := v.ReadInConfig(); err != nil {
		_, statErr := os.Stat(path)
		switch {
		case os.IsNotExist(statErr) && !explicit:
			// The default file is optional.
		case os.IsNotExist(statErr):
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		default:
			return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "mkdir config dir")
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("board.name", cfg.Board.Name)
	v.Set("store.backend", cfg.Store.Backend)
	v.Set("store.dir", cfg.Store.Dir)
	v.Set("store.redis_addr", cfg.Store.RedisAddr)
	v.Set("store.redis_prefix", cfg.Store.RedisPrefix)
	v.Set("drag.scale", cfg.Drag.Scale)
	v.Set("drag.pointer_size", cfg.Drag.PointerSize)
	v.Set("ui.cell_width", cfg.UI.CellWidth)
	v.Set("ui.cell_height", cfg.UI.CellHeight)

	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "write config")
	}
	return nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}
