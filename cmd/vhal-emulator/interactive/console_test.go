package interactive

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vhal-go/vhal/pkg/emulator"
	"github.com/vhal-go/vhal/pkg/hal"
	"github.com/vhal-go/vhal/pkg/prop"
	"github.com/vhal-go/vhal/pkg/propdef"
	"github.com/vhal-go/vhal/pkg/store"
	"github.com/vhal-go/vhal/pkg/timer"
)

// newTestConsole builds a console over the default vehicle without a
// terminal.
func newTestConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	defs := propdef.Default()
	vehicle := emulator.New(defs, emulator.Config{})

	var broker *hal.Broker
	tm := timer.New(func(ids []prop.PropertyID) { broker.OnTimer(ids) }, timer.Config{})
	broker, err := hal.New(store.New(), vehicle, tm, hal.Config{HeartbeatInterval: time.Hour})
	require.NoError(t, err)

	vehicle.Start(context.Background())
	tm.Start(context.Background())
	require.NoError(t, broker.Start())
	t.Cleanup(func() {
		broker.Close()
		tm.Stop()
		vehicle.Stop()
	})

	out := &bytes.Buffer{}
	c := &Console{defs: defs, out: out}
	c.Attach(broker)
	broker.OnEvent(c.HandleEvent)

	require.Eventually(t, func() bool {
		_, err := broker.Get(&prop.Value{Prop: prop.DoorLock, AreaID: 0x1})
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	return c, out
}

func TestConsoleCommands(t *testing.T) {
	c, out := newTestConsole(t)

	run := func(line string) string {
		out.Reset()
		require.True(t, c.Exec(line))
		return out.String()
	}

	assert.Contains(t, run("list"), "HVAC_TEMPERATURE_SET")
	assert.Contains(t, run("get HVAC_TEMPERATURE_SET@0x4"), "AVAILABLE {float=[22]}")
	assert.Contains(t, run("set HVAC_TEMPERATURE_SET@0x4 50"), "INVALID_ARG")
	assert.Contains(t, run("set HVAC_TEMPERATURE_SET@0x4 25"), "OK")
	assert.Contains(t, run("get NOPE"), "unknown property")

	assert.Contains(t, run("sub PERF_VEHICLE_SPEED 5"), "Subscribed")
	assert.Contains(t, run("subs"), "5 Hz")
	assert.Contains(t, run("sub DOOR_LOCK 1"), "INVALID_ARG")
	assert.Contains(t, run("unsub PERF_VEHICLE_SPEED"), "Unsubscribed")
	assert.Contains(t, run("subs"), "No active subscriptions")

	assert.Contains(t, run("dump --list"), "PERF_VEHICLE_SPEED")
	assert.Contains(t, run("events maybe"), "Usage")
	assert.Contains(t, run("bogus"), "Unknown command")
	assert.Contains(t, run("help"), "Vehicle Emulator Commands")

	assert.False(t, c.Exec("quit"))
}

func TestConsoleEvents(t *testing.T) {
	c, out := newTestConsole(t)
	c.broker.OnEvent(nil) // only the events below

	require.True(t, c.Exec("events on"))
	out.Reset()
	c.HandleEvent(&prop.Value{Prop: prop.DoorLock, AreaID: 0x4, Value: prop.RawValue{Int32Values: []int32{1}}})
	assert.Equal(t, "[EVENT] DOOR_LOCK@0x4 AVAILABLE {int32=[1]}\n", out.String())

	require.True(t, c.Exec("events off"))
	out.Reset()
	c.HandleEvent(&prop.Value{Prop: prop.DoorLock})
	assert.Empty(t, strings.TrimSpace(out.String()))
}
