package hal

import (
	"fmt"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
	"github.com/vhal-go/vhal/pkg/validate"
)

// Set validates v and forwards it to the client. The store is not updated
// here; the client reports the applied value through the push callback.
// Errors from the client are returned unmodified.
func (b *Broker) Set(v *prop.Value) error {
	err := b.set(v)
	b.traceResult(log.OpSet, v.Prop, v.AreaID, v, 0, err)
	return err
}

func (b *Broker) set(v *prop.Value) error {
	if v.Status != prop.StatusAvailable {
		return fmt.Errorf("%w: status %s cannot be set", prop.ErrInvalidArg, v.Status)
	}

	cfg := b.store.Config(v.Prop)
	if cfg == nil {
		return fmt.Errorf("%w: unknown property %s", prop.ErrInvalidArg, v.Prop)
	}
	if err := validate.CheckSchema(v, cfg); err != nil {
		return err
	}
	if err := validate.CheckRange(v, cfg); err != nil {
		return err
	}

	if current := b.store.ReadValue(v); current != nil && current.Status != prop.StatusAvailable {
		return fmt.Errorf("%w: %s area 0x%x is %s", prop.ErrNotAvailable, v.Prop, v.AreaID, current.Status)
	}

	return b.client.SetProperty(prop.Obtain(v), false)
}
