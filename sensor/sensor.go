// Package sensor defines the generic capability abstraction drivers register
// into. A driver advertises one or more capability types and serves read
// requests through a per-reading callback, so consumers never depend on a
// concrete chip package.
package sensor

import (
	"context"
	"strings"
)

// Type is a bitmask of sensor capabilities. A single physical device may
// advertise several.
type Type uint32

const (
	None        Type = 0
	Temperature Type = 1 << iota
	Humidity
	Light
	Color
	Motion
)

func (t Type) Has(other Type) bool {
	return t&other != 0
}

func (t Type) String() string {
	if t == None {
		return "none"
	}
	var parts []string
	for mask, name := range typeNames {
		if t.Has(mask) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

var typeNames = map[Type]string{
	Temperature: "temperature",
	Humidity:    "humidity",
	Light:       "light",
	Color:       "color",
	Motion:      "motion",
}

// ValueType describes how readings for a capability are encoded.
type ValueType int

const (
	ValueTypeNone ValueType = iota
	ValueTypeInt32
	ValueTypeFloat64
)

// Config is the per-capability configuration a driver reports through
// GetConfig.
type Config struct {
	ValueType ValueType
}

// ColorData is a single color capability reading: the four raw channels plus
// the derived illuminance and correlated color temperature.
type ColorData struct {
	R         uint16
	G         uint16
	B         uint16
	C         uint16
	Lux       uint16
	ColorTemp uint16
}

// ReadingFunc receives each reading produced by Driver.Read. Returning an
// error aborts the read.
type ReadingFunc func(ctx context.Context, reading any) error

// Driver is implemented by chip packages. Read delivers readings for the
// requested capability through fn; GetConfig reports how readings of the
// given capability are encoded; GetInterface exposes an optional
// driver-specific extension (nil when there is none).
type Driver interface {
	Read(ctx context.Context, t Type, fn ReadingFunc) error
	GetConfig(t Type) (Config, error)
	GetInterface(t Type) any
}
