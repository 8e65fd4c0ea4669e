package main

import (
	"github.com/spf13/cobra"

	"github.com/vhal-go/vhal/cmd/vhal-trace/commands"
)

func newStatsCmd() *cobra.Command {
	var opts commands.FilterOptions
	cmd := &cobra.Command{
		Use:   "stats [flags] <file.vtrace>",
		Short: "Show statistics about the trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.Build()
			if err != nil {
				return err
			}
			return commands.RunStats(args[0], filter, cmd.OutOrStdout())
		},
	}
	addFilterFlags(cmd, &opts)
	return cmd
}
