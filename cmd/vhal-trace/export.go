package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vhal-go/vhal/cmd/vhal-trace/commands"
)

func newExportCmd() *cobra.Command {
	var (
		opts   commands.FilterOptions
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export [flags] <file.vtrace>",
		Short: "Export trace file to JSONL or CSV",
		Long: `Export trace events as JSON lines or CSV.

Property ids are resolved to names and values are rendered in the same
compact form the broker logs use.

Example:
  vhal-trace export --format csv -o speed.csv --prop PERF_VEHICLE_SPEED device.vtrace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.Build()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return commands.RunExport(args[0], format, filter, w)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "jsonl", "output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	addFilterFlags(cmd, &opts)
	return cmd
}
