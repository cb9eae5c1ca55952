package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dropgrid/internal/config"
	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/buildinfo"
	"github.com/matzehuels/dropgrid/pkg/dnd"
	"github.com/matzehuels/dropgrid/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "dropgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	single     bool
	boardFile  string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Dropgrid drags items between grid zones",
		Long: `Dropgrid is a drag-and-drop engine for items laid out in grid drop zones.
It replays scripted drags, plays boards interactively in the terminal, and
persists the resulting arrangements to disk or Redis.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default ~/.config/dropgrid/config.toml)")
	pf.String("board", "", "board name")
	pf.String("store", "", "board store backend: file or redis")
	pf.String("store-dir", "", "directory of the file store")
	pf.String("redis-addr", "", "redis address of the redis store")
	pf.Float64("scale", 0, "scale applied to the dragged item")
	pf.Float64("pointer-size", 0, "side of the square pointer rectangle used for collision")
	pf.BoolVar(&c.single, "single", false, "use the single-zone variant of the built-in board")
	pf.StringVarP(&c.boardFile, "file", "f", "", "read the board from a TOML or JSON file instead of the store")

	_ = root.RegisterFlagCompletionFunc("board", c.completeBoards)
	_ = root.MarkPersistentFlagFilename("file", "toml", "json")

	root.AddCommand(c.playCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config and Store
// =============================================================================

// loadConfig reads configuration with the command's flags on top.
func (c *CLI) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.configPath, cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("config loaded", "board", cfg.Board.Name, "store", cfg.Store.Backend)
	return cfg, nil
}

// loadOptionalConfig is loadConfig for a config file that may not exist yet.
func (c *CLI) loadOptionalConfig(cmd *cobra.Command) (config.Config, error) {
	return config.LoadOptional(c.configPath, cmd.Flags())
}

// openStore opens the configured board store. Callers must Close it.
func (c *CLI) openStore(ctx context.Context, cfg config.Config) (board.Store, error) {
	s, err := board.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, err
	}
	if fs, ok := s.(*board.FileStore); ok {
		c.Logger.Debug("file store", "dir", fs.Path())
	}
	return s, nil
}

// readBoardFile reads the board named by --file.
func (c *CLI) readBoardFile() (*board.Board, error) {
	path, err := errors.CleanPath(c.boardFile)
	if err != nil {
		return nil, err
	}
	return board.ReadFile(path)
}

// loadBoard resolves the board to work on: --file if given, else the stored
// board named in cfg. The built-in board stands in for a missing board of
// the default name, so a fresh install works without init.
func (c *CLI) loadBoard(ctx context.Context, s board.Store, cfg config.Config) (*board.Board, error) {
	if c.boardFile != "" {
		return c.readBoardFile()
	}

	b, err := s.Load(ctx, cfg.Board.Name)
	switch {
	case err == nil:
		return b, nil
	case errors.Is(err, errors.ErrCodeNotFound) && cfg.Board.Name == board.DefaultName:
		c.Logger.Debug("using built-in board", "name", cfg.Board.Name)
		return board.Default(c.single), nil
	default:
		return nil, err
	}
}

// dragOptions builds drag core options from cfg.
func (c *CLI) dragOptions(cfg config.Config) dnd.Options {
	return dnd.Options{
		Scale:       cfg.Drag.Scale,
		PointerSize: cfg.Drag.PointerSize,
		Logger:      c.Logger,
	}
}
