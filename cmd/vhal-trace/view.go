package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vhal-go/vhal/cmd/vhal-trace/commands"
)

func newViewCmd() *cobra.Command {
	var (
		opts commands.FilterOptions
		mode string
	)
	cmd := &cobra.Command{
		Use:   "view [flags] <file.vtrace>",
		Short: "View trace file in human-readable format",
		Long: `View trace events one per block.

Failed results are shown in red, delivered events in cyan and skipped
internal errors in yellow. Colors are used on terminals unless NO_COLOR
is set; --color always|never overrides the detection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.Build()
			if err != nil {
				return err
			}

			var view commands.ViewOptions
			switch mode {
			case "auto":
				view.Color = !color.NoColor
			case "always":
				view.Color = true
			case "never":
			default:
				return fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", mode)
			}
			return commands.RunView(args[0], filter, cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().StringVar(&mode, "color", "auto", "colorize output (auto, always, never)")
	addFilterFlags(cmd, &opts)
	return cmd
}
