package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dropgrid/pkg/errors"
)

// playCommand opens the interactive board.
func (c *CLI) playCommand() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Drag items around a board in the terminal",
		Long: `Play draws the board in the terminal and lets you drag items with the
mouse. Drop an item on another cell of its zone to reorder the zone, or on
a cell of another zone to move it there. Press esc to cancel a drag, u to
undo the last drop and q to quit. The board is saved to the store on exit
unless --no-save is given or nothing changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := c.openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			b, err := c.loadBoard(ctx, s, cfg)
			if err != nil {
				return err
			}

			// The terminal belongs to the program while it runs; drag
			// warnings are shown in its status line instead.
			drag := c.dragOptions(cfg)
			drag.Logger = log.NewWithOptions(io.Discard, log.Options{})

			m, err := NewPlayModel(b, drag, cfg.UI.CellWidth, cfg.UI.CellHeight)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m,
				tea.WithContext(ctx),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "run board")
			}
			m = final.(*PlayModel)

			out := cmd.OutOrStdout()
			if m.Changes == 0 {
				printInfo(out, "No changes")
				return nil
			}
			if noSave {
				printWarning(out, "%s not saved", plural(m.Changes, "change"))
				return nil
			}

			m.Board.Name = cfg.Board.Name
			if err := s.Save(ctx, m.Board); err != nil {
				return err
			}
			logger.Debug("board saved", "name", m.Board.Name, "changes", m.Changes)
			printSuccess(out, "Saved %s to %s", plural(m.Changes, "change"), StyleHighlight.Render(m.Board.Name))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "discard changes on exit")
	return cmd
}
