package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vhal-go/vhal/cmd/vhal-trace/commands"
)

func newFilterCmd() *cobra.Command {
	var (
		opts   commands.FilterOptions
		output string
	)
	cmd := &cobra.Command{
		Use:   "filter -o <out.vtrace> [flags] <file.vtrace>",
		Short: "Write matching events to a new trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.Build()
			if err != nil {
				return err
			}
			count, err := commands.RunFilter(args[0], output, filter)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Filtered %d events to %s\n", count, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output trace file (required)")
	_ = cmd.MarkFlagRequired("output")
	addFilterFlags(cmd, &opts)
	return cmd
}
