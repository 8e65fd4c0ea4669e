// Package interactive provides the interactive command-line interface
// for the vehicle emulator.
package interactive

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"

	"github.com/vhal-go/vhal/pkg/hal"
	"github.com/vhal-go/vhal/pkg/prop"
	"github.com/vhal-go/vhal/pkg/propdef"
)

// Console handles interactive mode for vhal-emulator.
type Console struct {
	broker *hal.Broker
	defs   *propdef.Definitions
	rl     *readline.Instance
	out    io.Writer

	events atomic.Bool
}

// New creates a console for the properties in defs. Attach a broker before
// calling Run.
func New(defs *propdef.Definitions) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vhal> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(defs),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{
		defs: defs,
		rl:   rl,
		out:  rl.Stdout(),
	}, nil
}

func completer(defs *propdef.Definitions) readline.AutoCompleter {
	var names []readline.PrefixCompleterInterface
	for _, p := range defs.Properties {
		names = append(names, readline.PcItem(p.Name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("list"),
		readline.PcItem("get", names...),
		readline.PcItem("set", names...),
		readline.PcItem("sub", names...),
		readline.PcItem("unsub", names...),
		readline.PcItem("subs"),
		readline.PcItem("dump", readline.PcItem("--list")),
		readline.PcItem("events", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Attach sets the broker the console operates on.
func (c *Console) Attach(broker *hal.Broker) {
	c.broker = broker
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// HandleEvent prints an emitted value while events are enabled with
// "events on".
func (c *Console) HandleEvent(v *prop.Value) {
	if !c.events.Load() {
		return
	}
	fmt.Fprintf(c.out, "[EVENT] %s\n", c.format(v))
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if !c.Exec(line) {
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Exec runs one command line. It returns false when the console should
// exit.
func (c *Console) Exec(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()
	case "list", "ls":
		c.cmdList()
	case "get", "g":
		c.cmdGet(args)
	case "set", "s":
		c.cmdSet(args)
	case "sub":
		c.cmdSubscribe(args)
	case "unsub":
		c.cmdUnsubscribe(args)
	case "subs":
		c.cmdSubscriptions()
	case "dump":
		c.broker.Dump(c.out, args)
	case "events":
		c.cmdEvents(args)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
Vehicle Emulator Commands:
  Properties:
    list                       - List property configs
    get <prop>[@area]          - Read a value
    set <prop>[@area] <val...> - Write a value (validated, sent to the vehicle)

  Sampling:
    sub <prop> <hz>            - Sample a continuous property
    unsub <prop>               - Stop sampling
    subs                       - Show active subscriptions

  Diagnostics:
    dump [--list]              - Dump vehicle state
    events on|off              - Print emitted events

  General:
    help                       - Show this help
    quit                       - Exit emulator

  Properties are names (HVAC_TEMPERATURE_SET) or ids (0x15600503).
  Areas are numbers: set HVAC_TEMPERATURE_SET@0x4 22.5`)
}

func (c *Console) cmdList() {
	for _, cfg := range c.broker.ListProperties() {
		fmt.Fprintf(c.out, "0x%08x  %-28s %-10s %-10s", uint32(cfg.Prop), c.defs.Name(cfg.Prop), cfg.Access, cfg.ChangeMode)
		if cfg.IsContinuous() {
			fmt.Fprintf(c.out, " %v-%v Hz", cfg.MinSampleRate, cfg.MaxSampleRate)
		}
		if !cfg.Prop.IsGlobal() {
			areas := make([]string, 0, len(cfg.AreaConfigs))
			for _, a := range cfg.Areas() {
				areas = append(areas, fmt.Sprintf("0x%x", a))
			}
			fmt.Fprintf(c.out, " areas=%s", strings.Join(areas, ","))
		}
		fmt.Fprintln(c.out)
	}
}

func (c *Console) cmdGet(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: get <prop>[@area]")
		return
	}
	id, area, err := ParseTarget(c.defs, args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	v, err := c.broker.Get(&prop.Value{Prop: id, AreaID: area})
	if v != nil {
		fmt.Fprintln(c.out, c.format(v))
	}
	if err != nil {
		fmt.Fprintf(c.out, "Status: %s (%v)\n", prop.StatusOf(err), err)
	}
}

func (c *Console) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "Usage: set <prop>[@area] <value...>")
		return
	}
	id, area, err := ParseTarget(c.defs, args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	v, err := ParseValue(id, args[1:])
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	v.AreaID = area
	v.Timestamp = prop.ElapsedRealtimeNanos()

	if err := c.broker.Set(v); err != nil {
		fmt.Fprintf(c.out, "Status: %s (%v)\n", prop.StatusOf(err), err)
		return
	}
	fmt.Fprintln(c.out, "OK")
}

func (c *Console) cmdSubscribe(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(c.out, "Usage: sub <prop> <hz>")
		return
	}
	id, _, err := ParseTarget(c.defs, args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	rate, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid rate %q\n", args[1])
		return
	}

	if err := c.broker.Subscribe(id, float32(rate)); err != nil {
		fmt.Fprintf(c.out, "Status: %s (%v)\n", prop.StatusOf(err), err)
		return
	}
	fmt.Fprintf(c.out, "Subscribed to %s at %v Hz\n", c.defs.Name(id), rate)
}

func (c *Console) cmdUnsubscribe(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: unsub <prop>")
		return
	}
	id, _, err := ParseTarget(c.defs, args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	if err := c.broker.Unsubscribe(id); err != nil {
		fmt.Fprintf(c.out, "Status: %s (%v)\n", prop.StatusOf(err), err)
		return
	}
	fmt.Fprintf(c.out, "Unsubscribed from %s\n", c.defs.Name(id))
}

func (c *Console) cmdSubscriptions() {
	subs := c.broker.Subscriptions()
	if len(subs) == 0 {
		fmt.Fprintln(c.out, "No active subscriptions")
		return
	}
	ids := make([]prop.PropertyID, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintf(c.out, "  %-28s %v Hz\n", c.defs.Name(id), subs[id])
	}
}

func (c *Console) cmdEvents(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Fprintln(c.out, "Usage: events on|off")
		return
	}
	c.events.Store(args[0] == "on")
	fmt.Fprintf(c.out, "Events %s\n", args[0])
}

func (c *Console) format(v *prop.Value) string {
	s := c.defs.Name(v.Prop)
	if v.AreaID != 0 {
		s += fmt.Sprintf("@0x%x", v.AreaID)
	}
	return fmt.Sprintf("%s %s %s", s, v.Status, v.Value)
}
