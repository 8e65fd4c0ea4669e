// Command vhal-trace views and analyzes vehicle property trace files.
//
// Trace files are written by vhal-emulator when run with the -trace flag.
//
// Usage:
//
//	vhal-trace view [flags] <file.vtrace>      # Human-readable events
//	vhal-trace stats [flags] <file.vtrace>     # Aggregate statistics
//	vhal-trace export -f csv <file.vtrace>     # Export to JSONL or CSV
//	vhal-trace filter -o out.vtrace <file>     # Write matching events to a new trace
//
// Every command accepts the same filter flags, for example:
//
//	vhal-trace view --op set --category result device.vtrace
//	vhal-trace view --prop PERF_VEHICLE_SPEED --direction out device.vtrace
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vhal-go/vhal/cmd/vhal-trace/commands"
)

// Version information, set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vhal-trace",
		Short: "Vehicle property trace analyzer",
		Long: `vhal-trace reads the CBOR trace files written by vhal-emulator -trace.

Each event records one broker operation result (GET, SET, SUBSCRIBE,
UNSUBSCRIBE) or one value delivered to the event sink (PUSH, TICK,
HEARTBEAT).`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newViewCmd(),
		newStatsCmd(),
		newExportCmd(),
		newFilterCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vhal-trace %s (commit %s)\n", version, commit)
		},
	}
}

// addFilterFlags registers the shared filter flags on cmd.
func addFilterFlags(cmd *cobra.Command, opts *commands.FilterOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.BrokerID, "broker", "", "filter by broker id")
	f.StringVar(&opts.Direction, "direction", "", "filter by direction (in, out)")
	f.StringVar(&opts.Category, "category", "", "filter by category (result, event, error)")
	f.StringVar(&opts.Operation, "op", "", "filter by operation (get, set, subscribe, unsubscribe, push, tick, heartbeat)")
	f.StringVar(&opts.Prop, "prop", "", "filter by property name or numeric id")
	f.StringVar(&opts.TimeStart, "time-start", "", "filter by start time (RFC3339)")
	f.StringVar(&opts.TimeEnd, "time-end", "", "filter by end time (RFC3339)")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
