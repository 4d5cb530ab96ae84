package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gophertribe/colorsense/cmd/colorsense/console"
	"github.com/gophertribe/colorsense/sensor"
	"github.com/gophertribe/colorsense/stats"
	"github.com/gophertribe/colorsense/tcs34725"
)

var readCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Usage:   "read color samples from the sensor",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "profile",
			Usage: "yaml device profile",
		},
		&cli.StringFlag{
			Name:  "gain",
			Value: "1x",
		},
		&cli.StringFlag{
			Name:    "time",
			Aliases: []string{"t"},
			Value:   "50ms",
			Usage:   "integration time preset or raw millisecond value",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Value:   1,
		},
		&cli.DurationFlag{
			Name:  "interval",
			Value: time.Second,
		},
	}, busFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		dev, cleanup, err := setupDevice(c, ctx)
		if err != nil {
			return console.ExitErr(1, "device setup error", err)
		}
		defer cleanup()

		registry := sensor.NewRegistry()
		err = dev.Register(registry, "tcs34725/0")
		if err != nil {
			return console.ExitErr(1, "sensor registration error", err)
		}
		stats.MustRegister(dev.Stats())

		for i := 0; i < c.Int("count"); i++ {
			if i > 0 {
				time.Sleep(c.Duration("interval"))
			}
			err = registry.Read(ctx, "tcs34725/0", sensor.Color, func(ctx context.Context, reading any) error {
				data := reading.(sensor.ColorData)
				console.PInfof(console.PictoPalette, "r=%s g=%s b=%s c=%s",
					console.Red(data.R), console.Green(data.G), console.Blue(data.B), console.White(data.C))
				console.PInfof(console.PictoBulb, "%s lux, %s K", console.White(data.Lux), console.White(data.ColorTemp))
				return nil
			})
			if err != nil {
				console.Errorf("error reading color sensor: %s", console.Red(err))
			}
		}
		if c.Bool("verbose") {
			dev.Stats().Each(func(counter string, value uint64) {
				console.Printf("%s: %d\n", counter, value)
			})
		}
		return nil
	},
}

var idCmd = cli.Command{
	Name:  "id",
	Usage: "read the chip identification register",
	Flags: busFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, cleanup, err := openBus(c)
		if err != nil {
			return console.ExitErr(1, "adapter initialization error", err)
		}
		defer cleanup()
		dev := tcs34725.New(bus)
		id, err := dev.ChipID(ctx)
		if err != nil {
			return console.ExitErr(1, "chip id read error", err)
		}
		status := console.Green("ok")
		if id != tcs34725.ChipID {
			status = console.Yellow("unexpected")
		}
		console.Printf("chip id: %s (%s)\n", console.White(id), status)
		return nil
	},
}

var configureCmd = cli.Command{
	Name:  "configure",
	Usage: "verify chip identity and apply gain and integration time",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "profile"},
		&cli.StringFlag{Name: "gain", Value: "1x"},
		&cli.StringFlag{Name: "time", Aliases: []string{"t"}, Value: "50ms"},
	}, busFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		dev, cleanup, err := setupDevice(c, ctx)
		if err != nil {
			return console.ExitErr(1, "device setup error", err)
		}
		defer cleanup()
		state := dev.State()
		console.PInfof(console.PictoPin, "configured: gain=%s atime=%#02x enabled=%v",
			console.White(state.Gain), byte(state.IntegrationTime), state.Enabled)
		return nil
	},
}

// setupDevice opens the selected bus, builds the device (profile file takes
// precedence over flags) and runs Configure.
func setupDevice(c *cli.Context, ctx context.Context) (*tcs34725.Device, func(), error) {
	bus, cleanup, err := openBus(c)
	if err != nil {
		return nil, cleanup, err
	}
	var opts []tcs34725.Option
	var profile *Profile
	gainValue := c.String("gain")
	timeValue := c.String("time")
	if path := c.String("profile"); path != "" {
		profile, err = loadProfile(path)
		if err != nil {
			return nil, cleanup, err
		}
		if profile.Sensor.Address != 0 {
			opts = append(opts, tcs34725.WithAddress(profile.Sensor.Address))
		}
		if profile.Sensor.Gain != "" {
			gainValue = profile.Sensor.Gain
		}
		if profile.Sensor.IntegrationTime != "" {
			timeValue = profile.Sensor.IntegrationTime
		}
	}
	gain, err := parseGain(gainValue)
	if err != nil {
		return nil, cleanup, err
	}
	integrationTime, err := parseIntegrationTime(timeValue)
	if err != nil {
		return nil, cleanup, err
	}
	dev := tcs34725.New(bus, opts...)
	err = dev.Configure(ctx, tcs34725.Config{
		IntegrationTime: integrationTime,
		Gain:            gain,
	})
	if err != nil {
		return nil, cleanup, err
	}
	if profile != nil && profile.Thresholds != nil {
		err = dev.SetInterruptLimits(ctx, profile.Thresholds.Low, profile.Thresholds.High)
		if err != nil {
			return nil, cleanup, err
		}
	}
	return dev, cleanup, nil
}
