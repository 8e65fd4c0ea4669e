// Command vhal-emulator runs the vehicle property broker against an emulated
// vehicle.
//
// Usage:
//
//	vhal-emulator [flags]
//
// Flags:
//
//	-defs string        Property definition file (default: built-in vehicle)
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-trace string       Write a CBOR trace of broker activity to this file
//	-simulate           Drive speed and RPM with synthetic data
//	-interactive        Start the interactive console
//	-heartbeat duration Heartbeat interval (default 3s)
//
// Examples:
//
//	# Interactive session with simulated driving
//	vhal-emulator -simulate -interactive
//
//	# Custom vehicle with a trace for vhal-trace
//	vhal-emulator -defs my-car.yaml -trace session.vtrace -log-level debug
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vhal-go/vhal/cmd/vhal-emulator/interactive"
	"github.com/vhal-go/vhal/pkg/emulator"
	"github.com/vhal-go/vhal/pkg/hal"
	vlog "github.com/vhal-go/vhal/pkg/log"
	"github.com/vhal-go/vhal/pkg/prop"
	"github.com/vhal-go/vhal/pkg/propdef"
	"github.com/vhal-go/vhal/pkg/store"
	"github.com/vhal-go/vhal/pkg/timer"
)

// Config holds the emulator configuration.
type Config struct {
	DefsFile    string
	LogLevel    string
	TraceFile   string
	Simulate    bool
	Interactive bool
	Heartbeat   time.Duration
}

var config Config

func init() {
	flag.StringVar(&config.DefsFile, "defs", "", "Property definition file (default: built-in vehicle)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&config.TraceFile, "trace", "", "Write a CBOR trace of broker activity to this file")
	flag.BoolVar(&config.Simulate, "simulate", false, "Drive speed and RPM with synthetic data")
	flag.BoolVar(&config.Interactive, "interactive", false, "Start the interactive console")
	flag.DurationVar(&config.Heartbeat, "heartbeat", hal.DefaultHeartbeatInterval, "Heartbeat interval")
}

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vhal-emulator: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := parseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	if config.Heartbeat <= 0 {
		return fmt.Errorf("heartbeat interval must be positive, got %v", config.Heartbeat)
	}

	defs, err := loadDefinitions(config.DefsFile)
	if err != nil {
		return err
	}

	var console *interactive.Console
	var logOut io.Writer = os.Stderr
	if config.Interactive {
		console, err = interactive.New(defs)
		if err != nil {
			return err
		}
		logOut = console.Stdout()
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	trace, closeTrace, err := openTrace(config.TraceFile, logger)
	if err != nil {
		return err
	}
	defer closeTrace()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vehicle := emulator.New(defs, emulator.Config{Logger: logger.With("component", "emulator")})

	var broker *hal.Broker
	tm := timer.New(func(ids []prop.PropertyID) { broker.OnTimer(ids) }, timer.Config{
		Logger: logger.With("component", "timer"),
	})

	brokerCfg := hal.DefaultConfig()
	brokerCfg.HeartbeatInterval = config.Heartbeat
	brokerCfg.Logger = logger
	brokerCfg.Trace = trace

	broker, err = hal.New(store.New(), vehicle, tm, brokerCfg)
	if err != nil {
		return fmt.Errorf("creating broker: %w", err)
	}
	if console != nil {
		console.Attach(broker)
		broker.OnEvent(console.HandleEvent)
	}

	vehicle.Start(ctx)
	tm.Start(ctx)
	if err := broker.Start(); err != nil {
		return fmt.Errorf("starting broker: %w", err)
	}
	logger.Info("vehicle emulator started",
		"vehicle", defs.Vehicle,
		"properties", len(defs.Properties),
		"broker_id", broker.ID,
	)

	if config.Simulate {
		go runSimulation(ctx, vehicle, logger.With("component", "simulation"))
	}

	if console != nil {
		console.Run(ctx, cancel)
	} else {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Info("received signal", "signal", sig)
		case <-ctx.Done():
		}
	}

	logger.Info("shutting down")
	cancel()
	_ = broker.Close()
	tm.Stop()
	vehicle.Stop()
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func loadDefinitions(path string) (*propdef.Definitions, error) {
	if path == "" {
		return propdef.Default(), nil
	}
	return propdef.Load(path)
}

// openTrace returns the trace logger for path, also mirroring trace events
// to the debug log. An empty path traces to the debug log only.
func openTrace(path string, logger *slog.Logger) (vlog.Logger, func(), error) {
	debug := vlog.NewSlogAdapter(logger.With("component", "trace"))
	if path == "" {
		return debug, func() {}, nil
	}

	file, err := vlog.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening trace file: %w", err)
	}
	closeFn := func() {
		if n := file.Dropped(); n > 0 {
			logger.Warn("trace events dropped", "count", n)
		}
		if err := file.Close(); err != nil {
			logger.Error("closing trace file", "error", err)
		}
	}
	return vlog.NewMultiLogger(file, debug), closeFn, nil
}
