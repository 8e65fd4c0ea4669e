package hal

import (
	"fmt"

	"github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
)

// Get returns a copy of the stored value for req's (property, area), stamped
// with the current time.
//
// A missing value is ErrInvalidArg. A value whose status is not AVAILABLE is
// returned together with ErrTryAgain.
func (b *Broker) Get(req *prop.Value) (*prop.Value, error) {
	v := b.store.ReadValue(req)
	if v == nil {
		err := fmt.Errorf("%w: no value for %s area 0x%x", prop.ErrInvalidArg, req.Prop, req.AreaID)
		b.traceResult(log.OpGet, req.Prop, req.AreaID, nil, 0, err)
		return nil, err
	}

	v.Timestamp = b.clock()

	var err error
	if v.Status != prop.StatusAvailable {
		err = fmt.Errorf("%w: %s is %s", prop.ErrTryAgain, v.Prop, v.Status)
	}
	b.traceResult(log.OpGet, v.Prop, v.AreaID, v, 0, err)
	return v, err
}
