package tcs34725

import (
	"context"
	"fmt"

	"github.com/gophertribe/colorsense"
	"github.com/gophertribe/colorsense/sensor"
)

// ColorBehaviorFunc defines the function signature for mock color sensor
// behavior. It returns the reading or an error.
type ColorBehaviorFunc func(ctx context.Context) (sensor.ColorData, error)

// MockColorSensor is a hardware-free sensor.Driver implementation backed by
// a behavior function.
//
// Example usage:
//
//	// Static reading
//	mock := NewMockColorSensor(func(ctx context.Context) (sensor.ColorData, error) {
//		return sensor.ColorData{R: 1000, G: 800, B: 600, C: 2400}, nil
//	})
//
//	// Error simulation
//	mock := NewMockColorSensor(func(ctx context.Context) (sensor.ColorData, error) {
//		return sensor.ColorData{}, fmt.Errorf("sensor malfunction")
//	})
type MockColorSensor struct {
	behavior ColorBehaviorFunc
}

func NewMockColorSensor(behavior ColorBehaviorFunc) *MockColorSensor {
	return &MockColorSensor{behavior: behavior}
}

var _ sensor.Driver = (*MockColorSensor)(nil)

func (m *MockColorSensor) Read(ctx context.Context, t sensor.Type, fn sensor.ReadingFunc) error {
	if !t.Has(sensor.Color) {
		return fmt.Errorf("mock color sensor: unsupported capability %s: %w", t, colorsense.ErrInvalidArgument)
	}
	reading, err := m.behavior(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, reading)
}

func (m *MockColorSensor) GetConfig(t sensor.Type) (sensor.Config, error) {
	if t != sensor.Color {
		return sensor.Config{}, fmt.Errorf("mock color sensor: unsupported capability %s: %w", t, colorsense.ErrInvalidArgument)
	}
	return sensor.Config{ValueType: sensor.ValueTypeInt32}, nil
}

func (m *MockColorSensor) GetInterface(t sensor.Type) any {
	return nil
}
