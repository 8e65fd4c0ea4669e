package commands

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents       int
	EventsByDirection map[log.Direction]int
	EventsByCategory  map[log.Category]int
	EventsByOperation map[log.Operation]int
	EventsByProp      map[prop.PropertyID]int
	FailuresByStatus  map[prop.StatusCode]int
	Brokers           map[string]*BrokerStats
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// BrokerStats holds statistics for a single broker instance.
type BrokerStats struct {
	FirstSeen  time.Time
	LastSeen   time.Time
	Events     int
	Heartbeats int
}

// Collect reads every matching event and aggregates it.
func Collect(path string, filter log.Filter) (*Stats, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByDirection: make(map[log.Direction]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByOperation: make(map[log.Operation]int),
		EventsByProp:      make(map[prop.PropertyID]int),
		FailuresByStatus:  make(map[prop.StatusCode]int),
		Brokers:           make(map[string]*BrokerStats),
	}

	err = forEach(reader, func(event log.Event) error {
		stats.add(event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByDirection[event.Direction]++
	s.EventsByCategory[event.Category]++
	s.EventsByOperation[event.Operation]++
	s.EventsByProp[event.Prop]++
	if event.Status != nil && *event.Status != prop.StatusOK {
		s.FailuresByStatus[*event.Status]++
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	b, ok := s.Brokers[event.BrokerID]
	if !ok {
		b = &BrokerStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Brokers[event.BrokerID] = b
	}
	b.Events++
	if event.Timestamp.After(b.LastSeen) {
		b.LastSeen = event.Timestamp
	}
	if event.Operation == log.OpHeartbeat {
		b.Heartbeats++
	}
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	stats, err := Collect(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Vehicle Property Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Operation:")
	for _, op := range []log.Operation{log.OpGet, log.OpSet, log.OpSubscribe, log.OpUnsubscribe, log.OpPush, log.OpTick, log.OpHeartbeat} {
		if count := stats.EventsByOperation[op]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryResult, log.CategoryEvent, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.EventsByProp) > 0 {
		fmt.Fprintln(w, "Top Properties:")
		props := slices.SortedFunc(maps.Keys(stats.EventsByProp), func(a, b prop.PropertyID) int {
			if c := cmp.Compare(stats.EventsByProp[b], stats.EventsByProp[a]); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		if len(props) > 10 {
			props = props[:10]
		}
		for _, id := range props {
			fmt.Fprintf(w, "  %-28s %d\n", id.String()+":", stats.EventsByProp[id])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Brokers: %d\n", len(stats.Brokers))
	ids := slices.SortedFunc(maps.Keys(stats.Brokers), func(a, b string) int {
		return stats.Brokers[a].FirstSeen.Compare(stats.Brokers[b].FirstSeen)
	})
	for _, id := range ids {
		b := stats.Brokers[id]
		fmt.Fprintf(w, "  [%s] %d events, %d heartbeats, duration %s\n",
			shortenID(id), b.Events, b.Heartbeats, b.LastSeen.Sub(b.FirstSeen).Round(time.Millisecond))
	}

	if len(stats.FailuresByStatus) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failures:")
		codes := slices.Sorted(maps.Keys(stats.FailuresByStatus))
		for _, code := range codes {
			fmt.Fprintf(w, "  %-16s %d\n", code.String()+":", stats.FailuresByStatus[code])
		}
	}
}
