package i2ctest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moffa90/go-fm24c/i2c"
)

func TestWriteCommitsMemory(t *testing.T) {
	bus := New(0x50, 512)

	bus.BeginTransmission(0x50)
	bus.Write(0x10) // sub-address
	bus.Write(0xAA)
	bus.Write(0xBB)
	require.Equal(t, i2c.OK, bus.EndTransmission())

	assert.Equal(t, byte(0xAA), bus.Mem()[0x10])
	assert.Equal(t, byte(0xBB), bus.Mem()[0x11])
	require.Len(t, bus.Transactions(), 1)
	assert.Equal(t, []byte{0x10, 0xAA, 0xBB}, bus.Transactions()[0].W)
}

func TestSelectorFoldsAddressBit(t *testing.T) {
	bus := New(0x50, 512)

	// Selector low bit set addresses the upper 256-byte page.
	bus.BeginTransmission(0x51)
	bus.Write(0x05)
	bus.Write(0xCC)
	require.Equal(t, i2c.OK, bus.EndTransmission())

	assert.Equal(t, byte(0xCC), bus.Mem()[0x105])
}

func TestReadAfterLatch(t *testing.T) {
	bus := New(0x50, 512)
	bus.Mem()[0x20] = 0x12
	bus.Mem()[0x21] = 0x34

	bus.BeginTransmission(0x50)
	bus.Write(0x20)
	require.Equal(t, i2c.OK, bus.EndTransmission())
	require.Equal(t, i2c.OK, bus.RequestFrom(0x50, 2))

	assert.Equal(t, byte(0x12), bus.Read())
	assert.Equal(t, byte(0x34), bus.Read())
	assert.Equal(t, byte(0x00), bus.Read()) // exhausted
}

func TestWrongSelectorNACKs(t *testing.T) {
	bus := New(0x50, 512)

	bus.BeginTransmission(0x52)
	bus.Write(0x00)
	assert.Equal(t, i2c.ErrAddressNACK, bus.EndTransmission())
	assert.Equal(t, i2c.ErrAddressNACK, bus.RequestFrom(0x52, 1))
}

func TestInjectedFailures(t *testing.T) {
	bus := New(0x50, 512)
	bus.FailWriteAt(2, i2c.ErrDataNACK)

	bus.BeginTransmission(0x50)
	bus.Write(0x00)
	bus.Write(0x11)
	require.Equal(t, i2c.OK, bus.EndTransmission())

	bus.BeginTransmission(0x50)
	bus.Write(0x01)
	bus.Write(0x22)
	assert.Equal(t, i2c.ErrDataNACK, bus.EndTransmission())
	// Failed transaction must not commit.
	assert.Equal(t, byte(0x00), bus.Mem()[0x01])

	bus.SetReadStatus(i2c.ErrOther)
	assert.Equal(t, i2c.ErrOther, bus.RequestFrom(0x50, 1))
	assert.Equal(t, byte(0x00), bus.Read())
}

func TestWritesCountsWriteTransactions(t *testing.T) {
	bus := New(0x50, 512)

	bus.BeginTransmission(0x50)
	bus.Write(0x00)
	bus.Write(0x01)
	require.Equal(t, i2c.OK, bus.EndTransmission())

	bus.BeginTransmission(0x50)
	bus.Write(0x00)
	require.Equal(t, i2c.OK, bus.EndTransmission())
	require.Equal(t, i2c.OK, bus.RequestFrom(0x50, 1))

	assert.Equal(t, 2, bus.Writes())
	assert.Len(t, bus.Transactions(), 3)
}

func TestNewValidation(t *testing.T) {
	assert.Panics(t, func() { New(0x51, 512) })
	assert.Panics(t, func() { New(0x80, 512) })
	assert.Panics(t, func() { New(0x50, 0) })
	assert.Panics(t, func() { New(0x50, 513) })
}
