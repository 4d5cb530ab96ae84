package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gophertribe/colorsense/tcs34725"
)

// Profile is the yaml device profile the CLI can apply before reading.
//
//	sensor:
//	  address: 0x29
//	  integration_time: 101ms
//	  gain: 4x
//	thresholds:
//	  low: 1000
//	  high: 20000
type Profile struct {
	Sensor struct {
		Address         byte   `yaml:"address"`
		IntegrationTime string `yaml:"integration_time"`
		Gain            string `yaml:"gain"`
	} `yaml:"sensor"`
	Thresholds *struct {
		Low  uint16 `yaml:"low"`
		High uint16 `yaml:"high"`
	} `yaml:"thresholds"`
}

func loadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile %s: %w", path, err)
	}
	var p Profile
	err = yaml.Unmarshal(raw, &p)
	if err != nil {
		return nil, fmt.Errorf("could not parse profile %s: %w", path, err)
	}
	return &p, nil
}

func parseGain(value string) (tcs34725.Gain, error) {
	switch value {
	case "", "1x":
		return tcs34725.Gain1x, nil
	case "4x":
		return tcs34725.Gain4x, nil
	case "16x":
		return tcs34725.Gain16x, nil
	case "60x":
		return tcs34725.Gain60x, nil
	}
	return 0, fmt.Errorf("unknown gain %q (1x, 4x, 16x, 60x)", value)
}

func parseIntegrationTime(value string) (tcs34725.IntegrationTime, error) {
	switch value {
	case "", "2.4ms":
		return tcs34725.IntegrationTime2_4ms, nil
	case "24ms":
		return tcs34725.IntegrationTime24ms, nil
	case "50ms":
		return tcs34725.IntegrationTime50ms, nil
	case "101ms":
		return tcs34725.IntegrationTime101ms, nil
	case "154ms":
		return tcs34725.IntegrationTime154ms, nil
	case "700ms":
		return tcs34725.IntegrationTime700ms, nil
	}
	// raw ATIME byte, treated by the driver as a direct millisecond count
	var raw byte
	_, err := fmt.Sscanf(value, "%d", &raw)
	if err != nil {
		return 0, fmt.Errorf("unknown integration time %q", value)
	}
	return tcs34725.IntegrationTime(raw), nil
}
