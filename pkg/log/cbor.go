package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Trace records are only ever produced by EncodeEvent, so the decoder
// accepts exactly what the encoder emits: definite lengths, no tags and
// unique map keys. Anything else in a trace file is corruption and is
// reported rather than silently merged.
var (
	traceEncMode = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCoreDeterministic,
		ShortestFloat: cbor.ShortestFloat16,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
		TagsMd:        cbor.TagsForbidden,
	})
	traceDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		TagsMd:      cbor.TagsForbidden,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace CBOR encoder mode: %v", err))
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("trace CBOR decoder mode: %v", err))
	}
	return dm
}

// EncodeEvent encodes one trace record.
func EncodeEvent(event Event) ([]byte, error) {
	return traceEncMode.Marshal(event)
}

// DecodeEvent decodes one trace record. Records with duplicate keys, tags or
// indefinite-length items are rejected.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := traceDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder returns a stream encoder for trace records.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return traceEncMode.NewEncoder(w)
}

// NewDecoder returns a stream decoder for trace records.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return traceDecMode.NewDecoder(r)
}
