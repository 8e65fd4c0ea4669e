package hal

import (
	"io"
	"time"

	"github.com/vhal-go/vhal/pkg/prop"
)

// Store holds the config and current value of every property instance.
// Implementations must be safe for concurrent use and must not alias values
// passed in or returned.
type Store interface {
	// ReadValue returns the stored value for v's (property, area), or nil.
	ReadValue(v *prop.Value) *prop.Value

	// ReadValuesForProperty returns every stored instance of id.
	ReadValuesForProperty(id prop.PropertyID) []*prop.Value

	// WriteValue stores v and reports whether observable state changed.
	WriteValue(v *prop.Value, updateStatus bool) bool

	// Config returns the config of id, or nil if it is not registered.
	Config(id prop.PropertyID) *prop.Config

	AllConfigs() []prop.Config
	RegisterProperty(cfg prop.Config, initial *prop.Value)
}

// Client is the vehicle hardware.
type Client interface {
	AllPropertyConfigs() []prop.Config

	// SetProperty forwards a write. The resulting state is reported later
	// through the registered callback.
	SetProperty(v *prop.Value, updateStatus bool) error

	RegisterPropertyValueCallback(fn func(v *prop.Value, updateStatus bool))

	// TriggerSendAllValues asks the client to push every current value once.
	TriggerSendAllValues()

	Dump(w io.Writer, options []string) bool
}

// Scheduler fires recurrent events keyed by property id. Keys due on the
// same tick are delivered together to the action the scheduler was built
// with, which should call Broker.OnTimer.
type Scheduler interface {
	// Register schedules id every interval, replacing any earlier
	// registration of id.
	Register(interval time.Duration, id prop.PropertyID) error

	// Unregister removes id. Unknown ids are ignored.
	Unregister(id prop.PropertyID)
}
