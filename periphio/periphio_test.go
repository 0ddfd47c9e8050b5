package periphio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	conngpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	conni2ctest "periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/moffa90/go-fm24c/fram"
	"github.com/moffa90/go-fm24c/i2c"
)

func TestBusWriteTransaction(t *testing.T) {
	playback := &conni2ctest.Playback{
		Ops: []conni2ctest.IO{
			{Addr: 0x50, W: []byte{0x10, 0xA5}, R: nil},
		},
		DontPanic: true,
	}
	bus := NewBus(playback)

	bus.BeginTransmission(0x50)
	bus.Write(0x10)
	bus.Write(0xA5)
	assert.Equal(t, i2c.OK, bus.EndTransmission())
	require.NoError(t, playback.Close())
}

func TestBusReadTransaction(t *testing.T) {
	playback := &conni2ctest.Playback{
		Ops: []conni2ctest.IO{
			{Addr: 0x51, W: []byte{0x2C}, R: nil},
			{Addr: 0x51, W: nil, R: []byte{0xDE, 0xAD}},
		},
		DontPanic: true,
	}
	bus := NewBus(playback)

	bus.BeginTransmission(0x51)
	bus.Write(0x2C)
	require.Equal(t, i2c.OK, bus.EndTransmission())
	require.Equal(t, i2c.OK, bus.RequestFrom(0x51, 2))
	assert.Equal(t, byte(0xDE), bus.Read())
	assert.Equal(t, byte(0xAD), bus.Read())
	assert.Equal(t, byte(0x00), bus.Read())
	require.NoError(t, playback.Close())
}

func TestBusMismatchReportsError(t *testing.T) {
	playback := &conni2ctest.Playback{
		Ops: []conni2ctest.IO{
			{Addr: 0x50, W: []byte{0x00}, R: nil},
		},
		DontPanic: true,
	}
	bus := NewBus(playback)

	bus.BeginTransmission(0x50)
	bus.Write(0x01) // playback expects 0x00
	assert.Equal(t, i2c.ErrOther, bus.EndTransmission())
}

func TestDeviceOverPlayback(t *testing.T) {
	// WriteByte then ReadByte through the whole stack.
	playback := &conni2ctest.Playback{
		Ops: []conni2ctest.IO{
			{Addr: 0x50, W: []byte{0x10, 0xA5}, R: nil},
			{Addr: 0x50, W: []byte{0x10}, R: nil},
			{Addr: 0x50, W: nil, R: []byte{0xA5}},
		},
		DontPanic: true,
	}

	dev, err := fram.New(NewBus(playback), fram.DefaultAddr)
	require.NoError(t, err)

	require.NoError(t, dev.WriteByte(0x10, 0xA5))
	v, err := dev.ReadByte(0x10)
	require.NoError(t, err)
	assert.Equal(t, byte(0xA5), v)
	require.NoError(t, playback.Close())
}

func TestPin(t *testing.T) {
	hw := &gpiotest.Pin{N: "WP", Num: 13}
	pin := NewPin(hw)

	pin.ConfigureOutput()
	assert.Equal(t, conngpio.Low, hw.L)

	pin.Set(true)
	assert.Equal(t, conngpio.High, hw.L)

	pin.Set(false)
	assert.Equal(t, conngpio.Low, hw.L)
	assert.NoError(t, pin.Err())
}

func TestNilArgumentsPanic(t *testing.T) {
	assert.Panics(t, func() { NewBus(nil) })
	assert.Panics(t, func() { NewPin(nil) })
}
