package main

import (
	"context"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/gophertribe/colorsense/cmd/colorsense/console"
	"github.com/gophertribe/colorsense/tcs34725"
)

var interruptCmd = cli.Command{
	Name:    "interrupt",
	Aliases: []string{"int"},
	Usage:   "control the clear-channel threshold interrupt",
	Subcommands: []*cli.Command{
		&interruptEnableCmd,
		&interruptDisableCmd,
		&interruptClearCmd,
		&interruptLimitsCmd,
	},
}

var interruptEnableCmd = cli.Command{
	Name:  "enable",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		return setInterrupt(c, true)
	},
}

var interruptDisableCmd = cli.Command{
	Name:  "disable",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		return setInterrupt(c, false)
	},
}

func setInterrupt(c *cli.Context, enable bool) error {
	ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
	bus, cleanup, err := openBus(c)
	if err != nil {
		return console.ExitErr(1, "adapter initialization error", err)
	}
	defer cleanup()
	dev := tcs34725.New(bus)
	err = dev.SetInterruptEnabled(ctx, enable)
	if err != nil {
		return console.ExitErr(1, "interrupt configuration error", err)
	}
	console.Infof("interrupt enabled: %v", enable)
	return nil
}

var interruptClearCmd = cli.Command{
	Name:  "clear",
	Usage: "clear a latched interrupt",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cleanup, err := openBus(c)
		if err != nil {
			return console.ExitErr(1, "adapter initialization error", err)
		}
		defer cleanup()
		dev := tcs34725.New(bus)
		err = dev.ClearInterrupt(ctx)
		if err != nil {
			return console.ExitErr(1, "interrupt clear error", err)
		}
		console.Info("interrupt cleared")
		return nil
	},
}

var interruptLimitsCmd = cli.Command{
	Name:      "limits",
	Usage:     "get or set the interrupt thresholds",
	ArgsUsage: "[<low> <high>]",
	Flags:     busFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cleanup, err := openBus(c)
		if err != nil {
			return console.ExitErr(1, "adapter initialization error", err)
		}
		defer cleanup()
		dev := tcs34725.New(bus)
		if c.NArg() == 0 {
			low, high, err := dev.InterruptLimits(ctx)
			if err != nil {
				return console.ExitErr(1, "threshold read error", err)
			}
			console.Printf("low: %s high: %s\n", console.White(low), console.White(high))
			return nil
		}
		if c.NArg() != 2 {
			return console.Exit(1, "expected <low> and <high> threshold values")
		}
		low, err := strconv.ParseUint(c.Args().Get(0), 0, 16)
		if err != nil {
			return console.Exit(1, "invalid low threshold: %s", console.Red(err))
		}
		high, err := strconv.ParseUint(c.Args().Get(1), 0, 16)
		if err != nil {
			return console.Exit(1, "invalid high threshold: %s", console.Red(err))
		}
		if low > high {
			// the chip ignores the high threshold in that case
			proceed, err := console.YesOrNo("low threshold above high, continue?")
			if err != nil || !proceed {
				return console.Exit(0, "aborted")
			}
		}
		err = dev.SetInterruptLimits(ctx, uint16(low), uint16(high))
		if err != nil {
			return console.ExitErr(1, "threshold write error", err)
		}
		console.Infof("thresholds set: low=%d high=%d", low, high)
		return nil
	},
}
