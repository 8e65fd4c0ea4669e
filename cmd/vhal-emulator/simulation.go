package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/vhal-go/vhal/pkg/prop"
)

// Vehicle accepts samples that originate in the vehicle.
type Vehicle interface {
	Inject(v *prop.Value) error
}

const (
	simInterval = time.Second
	simMaxSpeed = 30  // m/s
	simIdleRPM  = 800 // rpm
)

// drive is a trip that accelerates to simMaxSpeed, brakes to a stop and
// repeats.
type drive struct {
	speed    float32
	accel    float32
	odometer float32 // km
}

func newDrive() *drive {
	return &drive{accel: 2}
}

// step advances the trip by dt.
func (d *drive) step(dt time.Duration) {
	d.speed += d.accel * float32(dt.Seconds())
	switch {
	case d.speed >= simMaxSpeed:
		d.speed = simMaxSpeed
		d.accel = -3
	case d.speed <= 0:
		d.speed = 0
		d.accel = 2
	}
	d.odometer += d.speed * float32(dt.Seconds()) / 1000
}

func (d *drive) rpm() float32 {
	return simIdleRPM + d.speed*150
}

func (d *drive) samples() []*prop.Value {
	speed := prop.ObtainFloat(d.speed)
	speed.Prop = prop.PerfVehicleSpeed
	rpm := prop.ObtainFloat(d.rpm())
	rpm.Prop = prop.EngineRPM
	odo := prop.ObtainFloat(d.odometer)
	odo.Prop = prop.PerfOdometer
	return []*prop.Value{speed, rpm, odo}
}

func runSimulation(ctx context.Context, vehicle Vehicle, logger *slog.Logger) {
	logger.Info("simulation started")

	ticker := time.NewTicker(simInterval)
	defer ticker.Stop()

	d := newDrive()
	for {
		select {
		case <-ctx.Done():
			logger.Info("simulation stopped")
			return
		case <-ticker.C:
			d.step(simInterval)
			for _, v := range d.samples() {
				if err := vehicle.Inject(v); err != nil {
					logger.Warn("inject failed", "prop", v.Prop, "error", err)
				}
			}
			logger.Debug("drive", "speed", d.speed, "rpm", d.rpm())
		}
	}
}
