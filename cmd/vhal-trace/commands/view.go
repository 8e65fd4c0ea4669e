// Package commands implements the vhal-trace CLI commands.
package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// ViewOptions controls view output.
type ViewOptions struct {
	// Color highlights the header line of each event by outcome.
	Color bool
}

// palette colors event headers. Colors are forced on or off so output does
// not depend on whether stdout is a terminal.
type palette struct {
	failed *color.Color
	event  *color.Color
	error  *color.Color
	plain  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		failed: color.New(color.FgRed, color.Bold),
		event:  color.New(color.FgCyan),
		error:  color.New(color.FgYellow),
		plain:  color.New(),
	}
	for _, c := range []*color.Color{p.failed, p.event, p.error, p.plain} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forEvent(event log.Event) *color.Color {
	switch {
	case event.Category == log.CategoryError:
		return p.error
	case event.Status != nil && *event.Status != prop.StatusOK:
		return p.failed
	case event.Category == log.CategoryEvent:
		return p.event
	default:
		return p.plain
	}
}

// RunView writes every matching event of the trace file in human-readable
// form.
func RunView(path string, filter log.Filter, w io.Writer, opts ViewOptions) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	p := newPalette(opts.Color)
	return forEach(reader, func(event log.Event) error {
		formatEvent(w, event, p)
		return nil
	})
}

// formatEvent writes one event:
//
//	ts [broker:id] DIR CATEGORY OP PROP@0xAREA
//	  details
func formatEvent(w io.Writer, event log.Event, p palette) {
	p.forEvent(event).Fprintf(w, "%s [broker:%s] %-3s %s %s %s\n",
		event.Timestamp.UTC().Format(timeLayout),
		shortenID(event.BrokerID),
		event.Direction,
		event.Category,
		event.Operation,
		formatTarget(event.Prop, event.AreaID))

	if event.Status != nil {
		fmt.Fprintf(w, "  Status: %s (%d)\n", event.Status, *event.Status)
	}
	if event.SampleRate != 0 {
		fmt.Fprintf(w, "  Rate: %g Hz\n", event.SampleRate)
	}
	if v := event.Value; v != nil {
		fmt.Fprintf(w, "  Value: %s %s ts=%d\n", v.Status, v.Value, v.Timestamp)
	}
	if event.Message != "" {
		fmt.Fprintf(w, "  Message: %s\n", event.Message)
	}
	fmt.Fprintln(w)
}

func formatTarget(id prop.PropertyID, area int32) string {
	if area == 0 {
		return id.String()
	}
	return fmt.Sprintf("%s@0x%x", id, area)
}

// shortenID returns the first 8 characters of a broker id.
func shortenID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
