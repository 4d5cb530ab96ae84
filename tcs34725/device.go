// Package tcs34725 drives the AMS/TAOS TCS34725 RGBC color sensor over I2C.
//
// The chip exposes four 16-bit channels (clear, red, green, blue) behind a
// command-framed register protocol. Reads are synchronous: the caller blocks
// for the configured integration time before the channel block is fetched.
//
// Typical usage:
//
//	dev := tcs34725.New(bus)
//	err := dev.Configure(ctx, tcs34725.Config{
//		IntegrationTime: tcs34725.IntegrationTime101ms,
//		Gain:            tcs34725.Gain4x,
//	})
//	raw, err := dev.AcquireRaw(ctx)
package tcs34725

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/gophertribe/colorsense"
	"github.com/gophertribe/colorsense/stats"
)

var ErrInvalidGain = fmt.Errorf("tcs34725: gain out of range: %w", colorsense.ErrInvalidArgument)
var ErrWrongChip = fmt.Errorf("tcs34725: chip ID mismatch: %w", colorsense.ErrInvalidArgument)

// Statistics counters. Samples are bucketed by the integration-time preset
// in effect when they were taken; errors counts failed bus transactions.
const (
	statSamples2_4ms   = "samples_2_4ms"
	statSamples24ms    = "samples_24ms"
	statSamples50ms    = "samples_50ms"
	statSamples101ms   = "samples_101ms"
	statSamples154ms   = "samples_154ms"
	statSamples700ms   = "samples_700ms"
	statSamplesUserdef = "samples_userdef"
	statErrors         = "errors"
)

// Config is the caller-facing device configuration applied by Configure.
type Config struct {
	IntegrationTime IntegrationTime
	Gain            Gain
}

// State mirrors the chip registers the driver has written. It is owned by
// the Device and only mutated by successful control operations.
type State struct {
	Enabled         bool
	IntegrationTime IntegrationTime
	Gain            Gain
}

// Device represents a single TCS34725 on a bus. Operations are blocking and
// sequential; callers sharing a device across goroutines must serialize
// access themselves (single-owner pattern).
type Device struct {
	transport colorsense.I2CBus
	addr      byte
	settle    time.Duration

	state State
	cfg   Config
	stats *stats.Set
}

type Option func(*Device)

func WithAddress(addr byte) Option {
	return func(d *Device) {
		d.addr = addr
	}
}

// WithSettleDelay overrides the power-on settle delay applied before ENABLE
// writes. Mainly useful to speed up tests.
func WithSettleDelay(delay time.Duration) Option {
	return func(d *Device) {
		d.settle = delay
	}
}

func WithStats(set *stats.Set) Option {
	return func(d *Device) {
		d.stats = set
	}
}

func New(transport colorsense.I2CBus, opts ...Option) *Device {
	d := &Device{
		transport: transport,
		addr:      DefaultAddress,
		// datasheet power-on timing: 2.4ms warm-up, rounded up
		settle: 3 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.stats == nil {
		d.stats = NewStats()
	}
	return d
}

// NewStats builds the counter set the driver increments. Register it with
// the stats registry at startup to expose it for querying.
func NewStats() *stats.Set {
	return stats.NewSet("tcs34725",
		statSamples2_4ms,
		statSamples24ms,
		statSamples50ms,
		statSamples101ms,
		statSamples154ms,
		statSamples700ms,
		statSamplesUserdef,
		statErrors,
	)
}

func (d *Device) Stats() *stats.Set {
	return d.stats
}

func (d *Device) State() State {
	return d.state
}

// SetEnabled powers the oscillator and the RGBC ADC on or off, preserving
// the remaining ENABLE bits.
func (d *Device) SetEnabled(ctx context.Context, enable bool) error {
	reg, err := d.readReg(ctx, regEnable)
	if err != nil {
		return err
	}
	// PON warm-up time before the ADC may be touched
	if err = d.wait(ctx, d.settle); err != nil {
		return err
	}
	if enable {
		err = d.writeReg(ctx, regEnable, reg|enablePON|enableAEN)
	} else {
		err = d.writeReg(ctx, regEnable, reg&^(enablePON|enableAEN))
	}
	if err != nil {
		return err
	}
	d.state.Enabled = enable
	return nil
}

func (d *Device) Enabled() bool {
	return d.state.Enabled
}

// SetIntegrationTime writes the ATIME register. Gain and integration time
// share one write payload on this chip, so the current gain is OR'd back in
// on every update.
func (d *Device) SetIntegrationTime(ctx context.Context, it IntegrationTime) error {
	err := d.writeReg(ctx, regATime, byte(it)|byte(d.state.Gain))
	if err != nil {
		return err
	}
	d.state.IntegrationTime = it
	return nil
}

func (d *Device) IntegrationTime() IntegrationTime {
	return d.state.IntegrationTime
}

// SetGain writes the CONTROL register, OR-ing the current integration time
// back in (shared payload layout, see SetIntegrationTime).
func (d *Device) SetGain(ctx context.Context, gain Gain) error {
	if gain > Gain60x {
		return ErrInvalidGain
	}
	err := d.writeReg(ctx, regControl, byte(d.state.IntegrationTime)|byte(gain))
	if err != nil {
		return err
	}
	d.state.Gain = gain
	return nil
}

func (d *Device) Gain() Gain {
	return d.state.Gain
}

func (d *Device) ChipID(ctx context.Context) (byte, error) {
	return d.readReg(ctx, regID)
}

// Configure verifies the chip identity, then enables the device and applies
// integration time and gain. All three steps are attempted even if an
// earlier one fails, and any failure fails the whole call; this is a
// deliberate best-effort contract so a transient error on one step does not
// leave the others unapplied. The configuration is stored only on full
// success.
func (d *Device) Configure(ctx context.Context, cfg Config) error {
	id, err := d.ChipID(ctx)
	if err != nil {
		return err
	}
	if id != ChipID {
		return fmt.Errorf("%w: expected %#02x, got %#02x", ErrWrongChip, ChipID, id)
	}
	err = errors.Join(
		d.SetEnabled(ctx, true),
		d.SetIntegrationTime(ctx, cfg.IntegrationTime),
		d.SetGain(ctx, cfg.Gain),
	)
	if err != nil {
		return err
	}
	d.cfg = cfg
	return nil
}

func (d *Device) Configuration() Config {
	return d.cfg
}

// SetInterruptEnabled sets or clears the RGBC interrupt enable bit.
func (d *Device) SetInterruptEnabled(ctx context.Context, enable bool) error {
	reg, err := d.readReg(ctx, regEnable)
	if err != nil {
		return err
	}
	if enable {
		reg |= enableAIEN
	} else {
		reg &^= enableAIEN
	}
	return d.writeReg(ctx, regEnable, reg)
}

// ClearInterrupt resets a latched threshold interrupt with the
// special-function command framing; there is no data phase.
func (d *Device) ClearInterrupt(ctx context.Context) error {
	err := d.transport.WriteToAddr(ctx, d.addr, []byte{commandBit | cmdTypeSpecial | cmdClearIntAddr})
	if err != nil {
		d.stats.Inc(statErrors)
		return fmt.Errorf("tcs34725: clear interrupt failed: %w", err)
	}
	return nil
}

// SetInterruptLimits programs the low and high clear-channel thresholds.
// The chip ignores the high threshold when low > high; the driver does not
// second-guess that.
func (d *Device) SetInterruptLimits(ctx context.Context, low, high uint16) error {
	var payload [4]byte
	binary.LittleEndian.PutUint16(payload[0:2], low)
	binary.LittleEndian.PutUint16(payload[2:4], high)
	return d.writeBlock(ctx, regAILTL, payload[:])
}

// InterruptLimits reads back the programmed thresholds.
func (d *Device) InterruptLimits(ctx context.Context) (low, high uint16, err error) {
	var payload [4]byte
	err = d.readBlock(ctx, regAILTL, payload[:])
	if err != nil {
		return 0, 0, err
	}
	low = binary.LittleEndian.Uint16(payload[0:2])
	high = binary.LittleEndian.Uint16(payload[2:4])
	return low, high, nil
}

func (d *Device) wait(ctx context.Context, duration time.Duration) error {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
