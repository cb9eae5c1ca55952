package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dropgrid/pkg/dnd"
	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/script"
)

// simulateCommand replays a drag script against a board.
func (c *CLI) simulateCommand() *cobra.Command {
	var (
		save  bool
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "simulate <script.toml>",
		Short: "Replay a scripted drag against a board",
		Long: `Simulate feeds the steps of a drag script to the drag engine as if they
came from a pointer, commits every drop to the board, and prints the
resulting item order. With --trace the drag state after each step is shown.
With --save the final board is written back to the store.`,
		Example: `  dropgrid simulate swap.toml
  dropgrid simulate --single --trace move.toml
  dropgrid simulate --save --board team move.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			path, err := errors.CleanPath(args[0])
			if err != nil {
				return err
			}
			sc, err := script.ReadFile(path)
			if err != nil {
				return err
			}

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
			if sc.Board != "" && sc.Board != b.Name {
				logger.Warn("script was written for another board", "script", sc.Board, "board", b.Name)
			}

			runner := script.NewRunner(logger)
			runner.Drag = c.dragOptions(cfg)

			prog := newProgress(logger)
			res, err := runner.Run(ctx, sc, b)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Replayed %d steps", len(res.Trace)))

			out := cmd.OutOrStdout()
			if trace {
				fmt.Fprintln(out, traceTable(res.Trace))
			}
			printResult(out, res)

			if save {
				res.Board.Name = cfg.Board.Name
				if err := s.Save(ctx, res.Board); err != nil {
					return err
				}
				printSuccess(out, "Saved board %s", StyleHighlight.Render(res.Board.Name))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "store the resulting board")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the drag state after every step")
	return cmd
}

// printResult summarizes a run: one line per step outcome worth reporting,
// then the final board.
func printResult(w io.Writer, res *script.Result) {
	for _, ev := range res.Trace {
		switch {
		case ev.Err != nil:
			printWarning(w, "step %d (%s): %s", ev.Step, ev.Action, errors.UserMessage(ev.Err))
		case ev.Change != nil:
			printSuccess(w, "step %d: %s", ev.Step, describeChange(res.Board, ev.Item, *ev.Change))
		case ev.Action == script.ActionCancel && ev.Item != "":
			printInfo(w, "step %d: drag of %s canceled", ev.Step, ev.Item)
		}
	}
	if len(res.Changes) == 0 {
		printInfo(w, "No drops committed")
	}
	fmt.Fprintln(w, boardTable(res.Board))
}

// traceTable renders the drag state after each step.
func traceTable(events []script.Event) string {
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		target := ""
		if ev.Phase == dnd.Dragging && ev.Target != "" {
			target = fmt.Sprintf("%s:%d", ev.Target, ev.Index)
		}
		pointer := ""
		if ev.Phase == dnd.Dragging {
			pointer = fmt.Sprintf("%g,%g", ev.Pointer.X, ev.Pointer.Y)
		}
		rows = append(rows, []string{
			strconv.Itoa(ev.Step),
			ev.Action,
			ev.Phase.String(),
			string(ev.Item),
			pointer,
			target,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Step", "Action", "Phase", "Item", "Pointer", "Over").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case row < len(events) && events[row].Err != nil:
				return StyleWarning
			case col == 5:
				return StyleHighlight
			default:
				return StyleValue
			}
		}).
		Render()
}
