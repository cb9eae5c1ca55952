package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/errors"
)

// env is an isolated home with an empty board store.
type env struct {
	home  string
	store string
}

func newEnv(t *testing.T) env {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	// Empty variables count as unset for viper.
	for _, k := range []string{"DROPGRID_CONFIG", "DROPGRID_BOARD_NAME", "DROPGRID_STORE_BACKEND", "DROPGRID_STORE_DIR"} {
		t.Setenv(k, "")
	}
	return env{home: home, store: filepath.Join(home, "boards")}
}

// run executes the CLI with args against the env's store.
func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--store-dir", e.store}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (e env) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.home, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const swapScript = `
board = "drag-between"

[[steps]]
action = "start"
item = "joe"

[[steps]]
action = "move"
to = "left:0"

[[steps]]
action = "end"
`

func TestShowBuiltInBoard(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "show")
	require.NoError(t, err)

	assert.Contains(t, out, board.DefaultName)
	assert.Contains(t, out, "3 zones · 13 items")
	assert.Contains(t, out, "ben, joe, jason, chris, heather, Richard")
	assert.Contains(t, out, "george, rupert, alice, katherine, pam, katie")
	assert.Contains(t, out, "Whatever")
}

func TestShowSingle(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "--single", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "2 zones · 7 items")
	assert.NotContains(t, out, "rupert")
}

func TestShowFormat(t *testing.T) {
	e := newEnv(t)

	for _, f := range []board.Format{board.FormatTOML, board.FormatJSON} {
		t.Run(string(f), func(t *testing.T) {
			out, err := e.run(t, "show", "--format", string(f))
			require.NoError(t, err)

			b, err := board.Unmarshal([]byte(out), f)
			require.NoError(t, err)
			assert.Equal(t, board.Default(false).ZoneIDs(), b.ZoneIDs())
			assert.Equal(t, 13, b.ItemCount())
		})
	}
}

func TestShowBoardFile(t *testing.T) {
	e := newEnv(t)
	path := e.writeFile(t, "tiny.toml", `
name = "tiny"

[[zones]]
id = "todo"
columns = 2

[[zones.items]]
id = "a"
label = "write tests"
`)

	out, err := e.run(t, "--file", path, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "tiny")
	assert.Contains(t, out, "write tests")
}

func TestShowUnknownBoard(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "--board", "team", "show")
	assert.True(t, errors.Is(err, errors.ErrCodeNotFound), "err = %v", err)
}

func TestInvalidStoreBackend(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "--store", "s3", "show")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "err = %v", err)
}

func TestInitAndList(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No stored boards")

	out, err = e.run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Stored board")
	assert.FileExists(t, filepath.Join(e.store, board.DefaultName+".toml"))

	_, err = e.run(t, "init")
	assert.True(t, errors.Is(err, errors.ErrCodeDuplicateID), "second init err = %v", err)

	_, err = e.run(t, "--board", "team", "--single", "init")
	require.NoError(t, err)

	out, err = e.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, board.DefaultName)
	assert.Contains(t, out, "team")

	out, err = e.run(t, "--board", "team", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "2 zones")

	_, err = e.run(t, "init", "--force")
	assert.NoError(t, err)

	out, err = e.run(t, "delete", "team")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted team")

	out, err = e.run(t, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "team")
	assert.Contains(t, out, "1 board in the file store")
}

func TestInitWriteConfig(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(e.home, "conf", "dropgrid.toml")

	out, err := e.run(t, "--config", path, "--board", "team", "init", "--write-config")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "team")

	// The written file now selects the board.
	out, err = e.run(t, "--config", path, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "team")
}

func TestSimulate(t *testing.T) {
	e := newEnv(t)
	path := e.writeFile(t, "swap.toml", swapScript)

	out, err := e.run(t, "simulate", "--trace", path)
	require.NoError(t, err)
	assert.Contains(t, out, "step 3: joe left:1 → left:0")
	assert.Contains(t, out, "joe, ben, jason")
	assert.Contains(t, out, "dragging")

	// Without --save the store is untouched.
	out, err = e.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No stored boards")
}

func TestSimulateSave(t *testing.T) {
	e := newEnv(t)
	path := e.writeFile(t, "swap.toml", swapScript)

	_, err := e.run(t, "simulate", "--save", path)
	require.NoError(t, err)

	out, err := e.run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "joe, ben, jason, chris, heather, Richard")
}

func TestSimulateRejectedStep(t *testing.T) {
	e := newEnv(t)
	path := e.writeFile(t, "ghost.toml", `
[[steps]]
action = "start"
item = "ghost"

[[steps]]
action = "end"
`)

	out, err := e.run(t, "simulate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "step 1 (start)")
	assert.Contains(t, out, "No drops committed")
}

func TestSimulateErrors(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		args func() []string
		code errors.Code
	}{
		{
			name: "missing script",
			args: func() []string { return []string{"simulate", filepath.Join(e.home, "nope.toml")} },
			code: errors.ErrCodeFileNotFound,
		},
		{
			name: "bad action",
			args: func() []string {
				return []string{"simulate", e.writeFile(t, "bad.toml", "[[steps]]\naction = \"strat\"\n")}
			},
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "unknown zone",
			args: func() []string {
				return []string{"simulate", e.writeFile(t, "zone.toml", swapScript+"\n[[steps]]\naction = \"start\"\nitem = \"ben\"\nto = \"middle:0\"\n")}
			},
			code: errors.ErrCodeUnknownContainer,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.run(t, tt.args()...)
			assert.True(t, errors.Is(err, tt.code), "err = %v, want %s", err, tt.code)
		})
	}
}

func TestFileArgumentPaths(t *testing.T) {
	e := newEnv(t)
	script := e.writeFile(t, "swap.toml", swapScript)
	boardFile := e.writeFile(t, "tiny.toml", "name = \"tiny\"\n\n[[zones]]\nid = \"todo\"\ncolumns = 2\n\n[[zones.items]]\nid = \"a\"\nlabel = \"write tests\"\n")

	work := filepath.Join(e.home, "work")
	require.NoError(t, os.Mkdir(work, 0o755))
	t.Chdir(work)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absolute script", []string{"simulate", script}, "joe, ben, jason"},
		{"parent script", []string{"simulate", "../swap.toml"}, "joe, ben, jason"},
		{"unclean script", []string{"simulate", "./../work/../swap.toml"}, "joe, ben, jason"},
		{"absolute board", []string{"--file", boardFile, "show"}, "write tests"},
		{"parent board", []string{"--file", "../tiny.toml", "show"}, "write tests"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := e.run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	_, err := e.run(t, "simulate", "bad\x00name.toml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath), "err = %v", err)
}

func TestCompletion(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "dropgrid")

	_, err = e.run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dropgrid version"), "out = %q", out)
}
