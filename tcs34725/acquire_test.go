package tcs34725

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayFor(t *testing.T) {
	tests := []struct {
		name     string
		it       IntegrationTime
		expected time.Duration
	}{
		{name: "2.4ms preset", it: IntegrationTime2_4ms, expected: 4 * time.Millisecond},
		{name: "24ms preset", it: IntegrationTime24ms, expected: 25 * time.Millisecond},
		{name: "50ms preset", it: IntegrationTime50ms, expected: 51 * time.Millisecond},
		{name: "101ms preset", it: IntegrationTime101ms, expected: 102 * time.Millisecond},
		{name: "154ms preset", it: IntegrationTime154ms, expected: 155 * time.Millisecond},
		{name: "700ms preset", it: IntegrationTime700ms, expected: 701 * time.Millisecond},
		{name: "direct milliseconds", it: IntegrationTime(10), expected: 11 * time.Millisecond},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, delayFor(test.it))
		})
	}
}

func TestSampleBucket(t *testing.T) {
	tests := []struct {
		it       IntegrationTime
		expected string
	}{
		{IntegrationTime2_4ms, statSamples2_4ms},
		{IntegrationTime24ms, statSamples24ms},
		{IntegrationTime50ms, statSamples50ms},
		{IntegrationTime101ms, statSamples101ms},
		{IntegrationTime154ms, statSamples154ms},
		{IntegrationTime700ms, statSamples700ms},
		{IntegrationTime(10), statSamplesUserdef},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, sampleBucket(test.it))
		})
	}
}

func TestDevice_AcquireRaw(t *testing.T) {
	bus := &fakeBus{}
	bus.regs[regCDataL] = 0x34
	bus.regs[regCDataL+1] = 0x12
	bus.regs[regCDataL+2] = 0x78
	bus.regs[regCDataL+3] = 0x56
	bus.regs[regCDataL+4] = 0xBC
	bus.regs[regCDataL+5] = 0x9A
	bus.regs[regCDataL+6] = 0xF0
	bus.regs[regCDataL+7] = 0xDE

	dev := New(bus)
	ctx := context.Background()
	require.NoError(t, dev.SetIntegrationTime(ctx, IntegrationTime2_4ms))

	sample, err := dev.AcquireRaw(ctx)
	require.NoError(t, err)
	assert.Equal(t, RawSample{C: 0x1234, R: 0x5678, G: 0x9ABC, B: 0xDEF0}, sample)
	assert.Equal(t, uint64(1), dev.Stats().Get(statSamples2_4ms))
	assert.Zero(t, dev.Stats().Get(statErrors))
}

func TestDevice_AcquireRawReadFailure(t *testing.T) {
	bus := &fakeBus{failOnRead: 1}
	dev := New(bus)
	ctx := context.Background()
	require.NoError(t, dev.SetIntegrationTime(ctx, IntegrationTime2_4ms))

	sample, err := dev.AcquireRaw(ctx)
	require.Error(t, err)
	assert.Equal(t, RawSample{}, sample)
	assert.Equal(t, uint64(1), dev.Stats().Get(statErrors))
	assert.Zero(t, dev.Stats().Get(statSamples2_4ms), "failed acquisitions are not counted as samples")
}

func TestDevice_AcquireRawCancellation(t *testing.T) {
	bus := &fakeBus{}
	dev := New(bus)
	require.NoError(t, dev.SetIntegrationTime(context.Background(), IntegrationTime700ms))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dev.AcquireRaw(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, bus.reads, "no bus traffic after cancellation")
}
