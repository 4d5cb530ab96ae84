package tcs34725

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gophertribe/colorsense"
)

func TestRegIO_ReadFraming(t *testing.T) {
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regID | commandBit}).Return(nil)
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.MatchedBy(func(b []byte) bool {
		return len(b) == 1
	})).Return([]byte{ChipID}, nil)

	dev := New(bus)
	id, err := dev.ChipID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte(ChipID), id)
	bus.AssertExpectations(t)
}

func TestRegIO_WriteFraming(t *testing.T) {
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regATime | commandBit, byte(IntegrationTime24ms)}).Return(nil)

	dev := New(bus)
	err := dev.SetIntegrationTime(context.Background(), IntegrationTime24ms)
	require.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestRegIO_BlockWriteFraming(t *testing.T) {
	bus := &MockI2CBus{}
	// bare register address first, payload in a second transaction
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{regAILTL}).Return(nil).Once()
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), []byte{0x10, 0x27, 0x00, 0x80}).Return(nil).Once()

	dev := New(bus)
	err := dev.SetInterruptLimits(context.Background(), 10000, 32768)
	require.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestRegIO_CustomAddress(t *testing.T) {
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", mock.Anything, byte(0x39), []byte{regID | commandBit}).Return(nil)
	bus.On("ReadFromAddr", mock.Anything, byte(0x39), mock.Anything).Return([]byte{ChipID}, nil)

	dev := New(bus, WithAddress(0x39))
	_, err := dev.ChipID(context.Background())
	require.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestRegIO_SelectFailureSkipsRead(t *testing.T) {
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(errFakeBus)

	dev := New(bus)
	_, err := dev.ChipID(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errFakeBus)
	bus.AssertNotCalled(t, "ReadFromAddr", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, uint64(1), dev.Stats().Get(statErrors))
}

func TestRegIO_BlockLengthLimit(t *testing.T) {
	bus := &MockI2CBus{}
	dev := New(bus)
	ctx := context.Background()

	buf := make([]byte, maxBlockLen+1)
	err := dev.readBlock(ctx, regCDataL, buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, colorsense.ErrInvalidArgument)

	err = dev.writeBlock(ctx, regAILTL, buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, colorsense.ErrInvalidArgument)

	bus.AssertNotCalled(t, "WriteToAddr", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegIO_BlockReadFailureZeroesBuffer(t *testing.T) {
	bus := &MockI2CBus{}
	bus.On("WriteToAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil)
	bus.On("ReadFromAddr", mock.Anything, byte(DefaultAddress), mock.Anything).Return(nil, errFakeBus)

	dev := New(bus)
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	err := dev.readBlock(context.Background(), regCDataL, buf)
	require.Error(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf, "stale content must not survive a failed transfer")
}
