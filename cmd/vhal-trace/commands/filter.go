package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

// FilterOptions holds the textual filter flags shared by all commands.
type FilterOptions struct {
	BrokerID  string
	Direction string
	Category  string
	Operation string
	Prop      string
	TimeStart string
	TimeEnd   string
}

// Build converts the options into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{BrokerID: o.BrokerID}

	if o.Direction != "" {
		d, err := parseDirection(o.Direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}

	if o.Category != "" {
		c, ok := log.ParseCategory(strings.ToUpper(o.Category))
		if !ok {
			return filter, fmt.Errorf("invalid category: %s (must be result, event, or error)", o.Category)
		}
		filter.Category = &c
	}

	if o.Operation != "" {
		op, ok := log.ParseOperation(strings.ToUpper(o.Operation))
		if !ok {
			return filter, fmt.Errorf("invalid operation: %s", o.Operation)
		}
		filter.Operation = &op
	}

	if o.Prop != "" {
		id, err := ParseProp(o.Prop)
		if err != nil {
			return filter, err
		}
		filter.Prop = &id
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// ParseProp accepts a well-known property name (case-insensitive) or a
// numeric id such as 0x11600207.
func ParseProp(s string) (prop.PropertyID, error) {
	if id, ok := prop.LookupName(strings.ToUpper(s)); ok {
		return id, nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid property: %s", s)
	}
	return prop.PropertyID(int32(uint32(n))), nil
}

func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// RunFilter copies the events of path that match filter into a new trace
// file at output and returns how many were written.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output trace: %w", err)
	}
	defer logger.Close()

	count := 0
	err = forEach(reader, func(event log.Event) error {
		logger.Log(event)
		count++
		return nil
	})
	return count, err
}

// forEach calls fn for every event until EOF.
func forEach(reader *log.Reader, fn func(log.Event) error) error {
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(event); err != nil {
			return err
		}
	}
}
