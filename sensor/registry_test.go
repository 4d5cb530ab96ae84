package sensor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDriver struct {
	reading any
	err     error
	calls   int
}

func (s *stubDriver) Read(ctx context.Context, t Type, fn ReadingFunc) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return fn(ctx, s.reading)
}

func (s *stubDriver) GetConfig(t Type) (Config, error) {
	return Config{ValueType: ValueTypeInt32}, nil
}

func (s *stubDriver) GetInterface(t Type) any {
	return nil
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	drv := &stubDriver{}

	require.NoError(t, reg.Register("color/0", Color, drv))
	err := reg.Register("color/0", Color, drv)
	require.Error(t, err, "duplicate names are rejected")

	got, ok := reg.Lookup("color/0")
	require.True(t, ok)
	assert.Same(t, drv, got)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_Find(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("color/0", Color, &stubDriver{}))
	require.NoError(t, reg.Register("combo/0", Color|Light, &stubDriver{}))
	require.NoError(t, reg.Register("temp/0", Temperature, &stubDriver{}))

	names := reg.Find(Color)
	assert.ElementsMatch(t, []string{"color/0", "combo/0"}, names)
	assert.Empty(t, reg.Find(Motion))
}

func TestRegistry_Read(t *testing.T) {
	reg := NewRegistry()
	drv := &stubDriver{reading: ColorData{R: 1, G: 2, B: 3, C: 6}}
	require.NoError(t, reg.Register("color/0", Color, drv))

	var got any
	err := reg.Read(context.Background(), "color/0", Color, func(ctx context.Context, reading any) error {
		got = reading
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, drv.reading, got)
	assert.Equal(t, 1, drv.calls)

	err = reg.Read(context.Background(), "missing", Color, func(ctx context.Context, reading any) error {
		return nil
	})
	require.Error(t, err)
}

func TestRegistry_ReadDriverError(t *testing.T) {
	reg := NewRegistry()
	want := errors.New("bus gone")
	require.NoError(t, reg.Register("color/0", Color, &stubDriver{err: want}))

	err := reg.Read(context.Background(), "color/0", Color, func(ctx context.Context, reading any) error {
		return nil
	})
	assert.ErrorIs(t, err, want)
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "color", Color.String())
	got := (Color | Light).String()
	assert.Contains(t, got, "color")
	assert.Contains(t, got, "light")
}
