package i2c

import (
	"context"
	"fmt"

	"github.com/gophertribe/colorsense"
	"gobot.io/x/gobot/v2/drivers/i2c"
)

var _ colorsense.I2CBus = &GobotBus{}

// GobotBus bridges a gobot I2C adaptor (raspi, nanopi, ...) to the
// colorsense transport contract. Gobot connections are bound to one device
// address, so a connection is opened per address and cached.
type GobotBus struct {
	adaptor i2c.Connector
	bus     int
	conns   map[byte]i2c.Connection
}

func NewGobotBus(adaptor i2c.Connector, bus int) *GobotBus {
	return &GobotBus{
		adaptor: adaptor,
		bus:     bus,
		conns:   make(map[byte]i2c.Connection),
	}
}

func (b *GobotBus) connection(address byte) (i2c.Connection, error) {
	if conn, ok := b.conns[address]; ok {
		return conn, nil
	}
	conn, err := b.adaptor.GetI2cConnection(int(address), b.bus)
	if err != nil {
		return nil, fmt.Errorf("could not connect to %#x on bus %d: %w", address, b.bus, err)
	}
	b.conns[address] = conn
	return conn, nil
}

func (b *GobotBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Read(buffer)
	if err != nil {
		return fmt.Errorf("could not read from i2c bus %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short read from %x: %d of %d bytes", address, n, len(buffer))
	}
	return nil
}

func (b *GobotBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	n, err := conn.Write(buffer)
	if err != nil {
		return fmt.Errorf("could not write to i2c bus %x: %w", address, err)
	}
	if n != len(buffer) {
		return fmt.Errorf("short write to %x: %d of %d bytes", address, n, len(buffer))
	}
	return nil
}

func (b *GobotBus) Release(ctx context.Context) error {
	return nil
}

func (b *GobotBus) Close() error {
	var err error
	for addr, conn := range b.conns {
		if cerr := conn.Close(); cerr != nil {
			err = fmt.Errorf("could not close connection to %#x: %w", addr, cerr)
		}
		delete(b.conns, addr)
	}
	return err
}
