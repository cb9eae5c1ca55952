package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dropgrid/internal/config"
	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/errors"
)

// initCommand stores the built-in board under the configured name.
func (c *CLI) initCommand() *cobra.Command {
	var (
		force       bool
		writeConfig bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Store the built-in board",
		Long: `Init saves the built-in board (or the board given with --file) to the
configured store under the configured board name. An existing board is only
replaced with --force. With --write-config the effective configuration is
written to the config file as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			load := c.loadConfig
			if writeConfig {
				load = c.loadOptionalConfig
			}
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			s, err := c.openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			if !force {
				_, err := s.Load(ctx, cfg.Board.Name)
				switch {
				case err == nil:
					return errors.New(errors.ErrCodeDuplicateID, "board %q already exists (use --force to replace it)", cfg.Board.Name)
				case !errors.Is(err, errors.ErrCodeNotFound):
					return err
				}
			}

			b := board.Default(c.single)
			if c.boardFile != "" {
				if b, err = c.readBoardFile(); err != nil {
					return err
				}
			}
			b.Name = cfg.Board.Name

			prog := newProgress(logger)
			if err := s.Save(ctx, b); err != nil {
				return err
			}
			prog.done("Saved board " + b.Name)

			out := cmd.OutOrStdout()
			printSuccess(out, "Stored board %s", StyleHighlight.Render(b.Name))
			printStats(out, b)
			printKeyValue(out, "store", cfg.Store.Backend)

			if writeConfig {
				path := c.configPath
				if path == "" {
					path = config.DefaultPath()
				}
				if err := config.Save(path, cfg); err != nil {
					return err
				}
				printFile(out, path)
			}

			printNextStep(out, "Play it", appName+" play --board "+b.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing board")
	cmd.Flags().BoolVar(&writeConfig, "write-config", false, "write the effective configuration file")
	return cmd
}
