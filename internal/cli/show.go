package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dropgrid/pkg/board"
	"github.com/matzehuels/dropgrid/pkg/errors"
)

// showCommand prints the zones and item order of a board.
func (c *CLI) showCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the zones and item order of a board",
		Long: `Show prints every zone of the selected board with its grid size and the
current order of its items. With --format toml or json the board is printed
in that file format instead, ready to be edited and passed back via --file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
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

			out := cmd.OutOrStdout()
			if format != "" {
				return board.Encode(out, b, board.Format(format))
			}
			fmt.Fprintln(out, StyleTitle.Render(b.Name))
			printStats(out, b)
			fmt.Fprintln(out, boardTable(b))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "print the board as toml or json")
	return cmd
}

// listCommand prints the names of all stored boards.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := c.openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			names, err := s.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				printInfo(out, "No stored boards")
				printNextStep(out, "Create one", appName+" init")
				return nil
			}
			for _, name := range names {
				marker := "  "
				if name == cfg.Board.Name {
					marker = StyleHighlight.Render(iconInfo) + " "
				}
				fmt.Fprintln(out, marker+StyleValue.Render(name))
			}
			printDetail(out, "%s in the %s store", plural(len(names), "board"), cfg.Store.Backend)
			return nil
		},
	}
}

// deleteCommand removes stored boards.
func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <name>...",
		Aliases:           []string{"rm"},
		Short:             "Delete stored boards",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := c.openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			for _, name := range args {
				if err := errors.ValidateBoardName(name); err != nil {
					return err
				}
				if err := s.Delete(ctx, name); err != nil {
					return err
				}
				printSuccess(out, "Deleted %s", StyleHighlight.Render(name))
			}
			return nil
		},
	}
}
