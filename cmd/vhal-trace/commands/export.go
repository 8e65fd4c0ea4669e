package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/vhal-go/vhal/pkg/log"
)

// Record is the flattened, name-resolved form of an event used by export.
type Record struct {
	Timestamp   string  `json:"timestamp"`
	BrokerID    string  `json:"brokerId"`
	Direction   string  `json:"direction"`
	Category    string  `json:"category"`
	Operation   string  `json:"op"`
	Prop        string  `json:"prop"`
	PropID      string  `json:"propId"`
	AreaID      int32   `json:"areaId"`
	Status      string  `json:"status,omitempty"`
	ValueStatus string  `json:"valueStatus,omitempty"`
	Value       string  `json:"value,omitempty"`
	SampleRate  float32 `json:"sampleRate,omitempty"`
	Message     string  `json:"message,omitempty"`
}

// NewRecord flattens event.
func NewRecord(event log.Event) Record {
	r := Record{
		Timestamp:  event.Timestamp.UTC().Format(timeLayout),
		BrokerID:   event.BrokerID,
		Direction:  event.Direction.String(),
		Category:   event.Category.String(),
		Operation:  event.Operation.String(),
		Prop:       event.Prop.String(),
		PropID:     fmt.Sprintf("0x%08x", uint32(event.Prop)),
		AreaID:     event.AreaID,
		SampleRate: event.SampleRate,
		Message:    event.Message,
	}
	if event.Status != nil {
		r.Status = event.Status.String()
	}
	if event.Value != nil {
		r.ValueStatus = event.Value.Status.String()
		r.Value = event.Value.Value.String()
	}
	return r
}

var csvHeader = []string{
	"timestamp", "broker_id", "direction", "category", "op", "prop", "prop_id",
	"area_id", "status", "value_status", "value", "sample_rate", "message",
}

func (r Record) row() []string {
	rate := ""
	if r.SampleRate != 0 {
		rate = strconv.FormatFloat(float64(r.SampleRate), 'g', -1, 32)
	}
	return []string{
		r.Timestamp, r.BrokerID, r.Direction, r.Category, r.Operation, r.Prop, r.PropID,
		fmt.Sprintf("0x%x", r.AreaID), r.Status, r.ValueStatus, r.Value, rate, r.Message,
	}
}

// RunExport writes the matching events of the trace file to w in the given
// format (jsonl or csv).
func RunExport(path, format string, filter log.Filter, w io.Writer) error {
	var write func(*log.Reader, io.Writer) error
	switch format {
	case "jsonl":
		write = exportJSONL
	case "csv":
		write = exportCSV
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	return write(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	return forEach(reader, func(event log.Event) error {
		if err := encoder.Encode(NewRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	})
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	err := forEach(reader, func(event log.Event) error {
		if err := cw.Write(NewRecord(event).row()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
