package tcs34725

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gophertribe/colorsense"
	"github.com/gophertribe/colorsense/sensor"
)

func colorDevice(t *testing.T) (*Device, *fakeBus) {
	t.Helper()
	bus := &fakeBus{}
	// C=50, R=1000, G=800, B=600
	bus.regs[regCDataL] = 0x32
	bus.regs[regCDataL+2] = 0xE8
	bus.regs[regCDataL+3] = 0x03
	bus.regs[regCDataL+4] = 0x20
	bus.regs[regCDataL+5] = 0x03
	bus.regs[regCDataL+6] = 0x58
	bus.regs[regCDataL+7] = 0x02
	dev := New(bus)
	require.NoError(t, dev.SetIntegrationTime(context.Background(), IntegrationTime2_4ms))
	return dev, bus
}

func TestDriver_Read(t *testing.T) {
	dev, _ := colorDevice(t)

	var got sensor.ColorData
	err := dev.Read(context.Background(), sensor.Color, func(ctx context.Context, reading any) error {
		data, ok := reading.(sensor.ColorData)
		require.True(t, ok)
		got = data
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, sensor.ColorData{
		R:         1000,
		G:         800,
		B:         600,
		C:         50,
		Lux:       Lux(1000, 800, 600),
		ColorTemp: ColorTemperature(1000, 800, 600),
	}, got)
}

func TestDriver_ReadUnsupportedCapability(t *testing.T) {
	dev, bus := colorDevice(t)
	before := bus.reads

	err := dev.Read(context.Background(), sensor.Temperature, func(ctx context.Context, reading any) error {
		t.Fatal("callback must not run for an unsupported capability")
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, colorsense.ErrInvalidArgument)
	assert.Equal(t, before, bus.reads, "no acquisition for an unsupported capability")
}

func TestDriver_ReadCallbackError(t *testing.T) {
	dev, _ := colorDevice(t)
	want := errors.New("consumer failure")

	err := dev.Read(context.Background(), sensor.Color, func(ctx context.Context, reading any) error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestDriver_GetConfig(t *testing.T) {
	dev := New(&fakeBus{})

	cfg, err := dev.GetConfig(sensor.Color)
	require.NoError(t, err)
	assert.Equal(t, sensor.Config{ValueType: sensor.ValueTypeInt32}, cfg)

	_, err = dev.GetConfig(sensor.Light)
	require.Error(t, err)
	assert.ErrorIs(t, err, colorsense.ErrInvalidArgument)

	assert.Nil(t, dev.GetInterface(sensor.Color))
}

func TestDriver_Register(t *testing.T) {
	dev := New(&fakeBus{})
	reg := sensor.NewRegistry()

	require.NoError(t, dev.Register(reg, "tcs34725/0"))
	drv, ok := reg.Lookup("tcs34725/0")
	require.True(t, ok)
	assert.Same(t, dev, drv)
	assert.Contains(t, reg.Find(sensor.Color), "tcs34725/0")
}

func TestMockColorSensor(t *testing.T) {
	want := sensor.ColorData{R: 1000, G: 800, B: 600, C: 2400, Lux: 498}
	mock := NewMockColorSensor(func(ctx context.Context) (sensor.ColorData, error) {
		return want, nil
	})

	var got any
	err := mock.Read(context.Background(), sensor.Color, func(ctx context.Context, reading any) error {
		got = reading
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	err = mock.Read(context.Background(), sensor.Motion, func(ctx context.Context, reading any) error {
		return nil
	})
	assert.ErrorIs(t, err, colorsense.ErrInvalidArgument)
}
