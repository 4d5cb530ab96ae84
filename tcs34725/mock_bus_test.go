package tcs34725

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"
)

// MockI2CBus is a testify mock of colorsense.I2CBus for verifying exact wire
// framing.
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
		copy(buffer, data)
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fakeBus models the chip's register file behind the command-bit framing so
// read-modify-write sequences and block round-trips can be tested without
// scripting every transaction.
type fakeBus struct {
	regs       [256]byte
	sel        byte
	blockWrite bool
	special    []byte

	writes      int
	reads       int
	failOnWrite int // 1-based write index to fail on, 0 = never
	failOnRead  int
}

var errFakeBus = errors.New("transport failure")

func (f *fakeBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	f.writes++
	if f.failOnWrite == f.writes {
		f.blockWrite = false
		return errFakeBus
	}
	if f.blockWrite {
		copy(f.regs[f.sel:], buffer)
		f.blockWrite = false
		return nil
	}
	switch {
	case len(buffer) == 1 && buffer[0]&commandBit != 0 && buffer[0]&cmdTypeSpecial == cmdTypeSpecial:
		// special function command, no data phase
		f.special = append(f.special, buffer[0])
	case len(buffer) == 1 && buffer[0]&commandBit != 0:
		f.sel = buffer[0] &^ commandBit
	case len(buffer) == 1:
		// bare address select preceding a block data write
		f.sel = buffer[0]
		f.blockWrite = true
	case buffer[0]&commandBit != 0:
		f.regs[buffer[0]&^commandBit] = buffer[1]
	}
	return nil
}

func (f *fakeBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	f.reads++
	if f.failOnRead == f.reads {
		return errFakeBus
	}
	copy(buffer, f.regs[f.sel:int(f.sel)+len(buffer)])
	return nil
}

func (f *fakeBus) Release(ctx context.Context) error {
	return nil
}
