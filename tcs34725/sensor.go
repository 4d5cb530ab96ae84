package tcs34725

import (
	"context"
	"fmt"

	"github.com/gophertribe/colorsense"
	"github.com/gophertribe/colorsense/sensor"
)

// Binding into the generic sensor framework. The device advertises the
// color capability only.

var _ sensor.Driver = (*Device)(nil)

// Read acquires one sample, derives lux and color temperature, and forwards
// the reading through fn.
func (d *Device) Read(ctx context.Context, t sensor.Type, fn sensor.ReadingFunc) error {
	if !t.Has(sensor.Color) {
		return fmt.Errorf("tcs34725: unsupported capability %s: %w", t, colorsense.ErrInvalidArgument)
	}
	raw, err := d.AcquireRaw(ctx)
	if err != nil {
		return err
	}
	reading := sensor.ColorData{
		R:         raw.R,
		G:         raw.G,
		B:         raw.B,
		C:         raw.C,
		Lux:       Lux(raw.R, raw.G, raw.B),
		ColorTemp: ColorTemperature(raw.R, raw.G, raw.B),
	}
	return fn(ctx, reading)
}

func (d *Device) GetConfig(t sensor.Type) (sensor.Config, error) {
	if t != sensor.Color {
		return sensor.Config{}, fmt.Errorf("tcs34725: unsupported capability %s: %w", t, colorsense.ErrInvalidArgument)
	}
	return sensor.Config{ValueType: sensor.ValueTypeInt32}, nil
}

func (d *Device) GetInterface(t sensor.Type) any {
	return nil
}

// Register publishes the device under name in the given registry.
func (d *Device) Register(reg *sensor.Registry, name string) error {
	return reg.Register(name, sensor.Color, d)
}
