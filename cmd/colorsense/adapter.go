package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/gophertribe/colorsense/adapter"
	"github.com/gophertribe/colorsense/cmd/colorsense/console"
)

var adapterCmd = cli.Command{
	Name:  "adapter",
	Usage: "MCP2221 bridge maintenance",
	Subcommands: []*cli.Command{
		&adapterStatusCmd,
		&adapterReleaseCmd,
	},
}

var adapterStatusCmd = cli.Command{
	Name:  "status",
	Flags: []cli.Flag{&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}}},
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		a := adapter.NewMCP2221()
		status, err := a.Status(ctx)
		if err != nil {
			return console.ExitErr(1, "status request error", err)
		}
		enc := yaml.NewEncoder(os.Stdout)
		defer func() { _ = enc.Close() }()
		return enc.Encode(status)
	},
}

var adapterReleaseCmd = cli.Command{
	Name:  "release",
	Usage: "cancel a pending transfer and release the I2C engine",
	Flags: []cli.Flag{&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}}},
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		a := adapter.NewMCP2221()
		status, err := a.ReleaseBus(ctx)
		if err != nil {
			return console.ExitErr(1, "release request error", err)
		}
		enc := yaml.NewEncoder(os.Stdout)
		defer func() { _ = enc.Close() }()
		return enc.Encode(status)
	},
}
