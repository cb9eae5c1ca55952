package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/errors"
)

// isolate points HOME at an empty directory and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	// Empty variables count as unset for viper.
	for _, k := range []string{"DROPGRID_CONFIG", "DROPGRID_BOARD_NAME", "DROPGRID_STORE_BACKEND", "DROPGRID_DRAG_SCALE"} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, board.DefaultName, c.Board.Name)
	assert.Equal(t, board.BackendFile, c.Store.Backend)
	assert.Equal(t, 1.06, c.Drag.Scale)
	assert.Equal(t, 1.0, c.Drag.PointerSize)
	assert.Equal(t, 10, c.UI.CellWidth)
	assert.Equal(t, board.DefaultRedisPrefix, c.Store.RedisPrefix)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[board]
name = "from-file"

[store]
backend = "redis"
redis_addr = "cache:6379"

[ui]
cell_width = 12
`), 0644))

	c, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-file", c.Board.Name)
	assert.Equal(t, "redis", c.Store.Backend)
	assert.Equal(t, "cache:6379", c.Store.RedisAddr)
	assert.Equal(t, 12, c.UI.CellWidth)
	assert.Equal(t, 3, c.UI.CellHeight)

	t.Setenv("DROPGRID_BOARD_NAME", "from-env")
	c, err = Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.Board.Name)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("board", "", "")
	fs.Float64("scale", 0, "")
	require.NoError(t, fs.Parse([]string{"--board", "from-flag"}))

	c, err = Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", c.Board.Name)
	assert.Equal(t, 1.06, c.Drag.Scale, "unset flag must not override the default")
}

func TestLoadConfigEnvVar(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[drag]\nscale = 1.5\n"), 0644))
	t.Setenv("DROPGRID_CONFIG", path)

	c, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, c.Drag.Scale)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"), nil)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "missing explicit file: %v", err)

	c, err := LoadOptional(filepath.Join(dir, "missing.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[store\n"), 0644))
	_, err = Load(bad, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat), "malformed file: %v", err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[store]\nbackend = \"mongo\"\n"), 0644))
	_, err = Load(invalid, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "bad backend: %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"board name", func(c *Config) { c.Board.Name = "a/b" }},
		{"backend", func(c *Config) { c.Store.Backend = "" }},
		{"scale", func(c *Config) { c.Drag.Scale = 0 }},
		{"pointer", func(c *Config) { c.Drag.PointerSize = -1 }},
		{"cells", func(c *Config) { c.UI.CellWidth = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Default()
	want.Board.Name = "saved"
	want.UI.CellHeight = 4
	require.NoError(t, Save(path, want))

	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStoreOptions(t *testing.T) {
	c := Default()
	c.Store.Dir = "/tmp/boards"
	opts := c.StoreOptions()
	assert.Equal(t, board.BackendFile, opts.Backend)
	assert.Equal(t, "/tmp/boards", opts.Dir)
	assert.Equal(t, "localhost:6379", opts.RedisAddr)
}
