package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/gophertribe/colorsense"
	"github.com/gophertribe/colorsense/adapter"
	"github.com/gophertribe/colorsense/i2c"
)

var busFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "adapter",
		Value: "mcp2221",
		Usage: "bus backend: mcp2221, i2c or gobot",
	},
	&cli.StringFlag{
		Name:  "dev",
		Value: "/dev/i2c-1",
		Usage: "i2c character device (i2c backend)",
	},
	&cli.IntFlag{
		Name:  "bus",
		Value: 0,
		Usage: "i2c bus number (gobot backend)",
	},
	&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
}

// openBus builds the transport selected on the command line. The returned
// cleanup function is always safe to call.
func openBus(c *cli.Context) (colorsense.I2CBus, func(), error) {
	switch c.String("adapter") {
	case "mcp2221":
		return adapter.NewMCP2221(), func() {}, nil
	case "i2c":
		bus, err := i2c.NewGenericBus(c.String("dev"))
		if err != nil {
			return nil, func() {}, fmt.Errorf("could not open %s: %w", c.String("dev"), err)
		}
		return bus, func() { _ = bus.Close() }, nil
	case "gobot":
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, func() {}, fmt.Errorf("adaptor connect error: %w", err)
		}
		bus := i2c.NewGobotBus(npi, c.Int("bus"))
		return bus, func() {
			_ = bus.Close()
			_ = npi.I2cBusAdaptor.Finalize()
		}, nil
	}
	return nil, func() {}, fmt.Errorf("unknown adapter %q", c.String("adapter"))
}
