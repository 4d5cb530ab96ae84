package tcs34725

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gophertribe/colorsense"
)

// Register access over the raw bus transport. Every read is a two-phase
// transaction: a one-byte write of the command-framed register address,
// followed by the data read. Failures on either phase count into the errors
// statistic before being surfaced to the caller.

func (d *Device) writeReg(ctx context.Context, reg byte, value byte) error {
	err := d.transport.WriteToAddr(ctx, d.addr, []byte{reg | commandBit, value})
	if err != nil {
		d.stats.Inc(statErrors)
		slog.Error("tcs34725 register write failed", "addr", d.addr, "reg", reg, "value", value, "error", err)
		return fmt.Errorf("tcs34725: write reg %#02x failed: %w", reg, err)
	}
	return nil
}

func (d *Device) readReg(ctx context.Context, reg byte) (byte, error) {
	err := d.transport.WriteToAddr(ctx, d.addr, []byte{reg | commandBit})
	if err != nil {
		d.stats.Inc(statErrors)
		slog.Error("tcs34725 register select failed", "addr", d.addr, "reg", reg, "error", err)
		return 0, fmt.Errorf("tcs34725: select reg %#02x failed: %w", reg, err)
	}
	// a defined zero even if the read phase fails halfway
	buf := []byte{0}
	err = d.transport.ReadFromAddr(ctx, d.addr, buf)
	if err != nil {
		d.stats.Inc(statErrors)
		slog.Error("tcs34725 register read failed", "addr", d.addr, "reg", reg, "error", err)
		return 0, fmt.Errorf("tcs34725: read reg %#02x failed: %w", reg, err)
	}
	return buf[0], nil
}

// readBlock fills buffer from consecutive registers starting at reg. The
// buffer is zeroed up front so a failed transfer never leaves garbage behind.
func (d *Device) readBlock(ctx context.Context, reg byte, buffer []byte) error {
	if len(buffer) > maxBlockLen {
		return fmt.Errorf("tcs34725: block read of %d bytes exceeds %d byte limit: %w",
			len(buffer), maxBlockLen, colorsense.ErrInvalidArgument)
	}
	for i := range buffer {
		buffer[i] = 0
	}
	err := d.transport.WriteToAddr(ctx, d.addr, []byte{reg | commandBit})
	if err != nil {
		d.stats.Inc(statErrors)
		slog.Error("tcs34725 register select failed", "addr", d.addr, "reg", reg, "error", err)
		return fmt.Errorf("tcs34725: select reg %#02x failed: %w", reg, err)
	}
	err = d.transport.ReadFromAddr(ctx, d.addr, buffer)
	if err != nil {
		d.stats.Inc(statErrors)
		slog.Error("tcs34725 block read failed", "addr", d.addr, "reg", reg, "len", len(buffer), "error", err)
		return fmt.Errorf("tcs34725: block read from %#02x failed: %w", reg, err)
	}
	return nil
}

// writeBlock writes data to consecutive registers starting at reg using the
// chip's two-phase block framing: the bare register address first (no
// command bit), then the payload in a separate transaction.
func (d *Device) writeBlock(ctx context.Context, reg byte, data []byte) error {
	if len(data) > maxBlockLen {
		return fmt.Errorf("tcs34725: block write of %d bytes exceeds %d byte limit: %w",
			len(data), maxBlockLen, colorsense.ErrInvalidArgument)
	}
	err := d.transport.WriteToAddr(ctx, d.addr, []byte{reg})
	if err != nil {
		d.stats.Inc(statErrors)
		slog.Error("tcs34725 register select failed", "addr", d.addr, "reg", reg, "error", err)
		return fmt.Errorf("tcs34725: select reg %#02x failed: %w", reg, err)
	}
	err = d.transport.WriteToAddr(ctx, d.addr, data)
	if err != nil {
		d.stats.Inc(statErrors)
		slog.Error("tcs34725 block write failed", "addr", d.addr, "reg", reg, "len", len(data), "error", err)
		return fmt.Errorf("tcs34725: block write to %#02x failed: %w", reg, err)
	}
	return nil
}
