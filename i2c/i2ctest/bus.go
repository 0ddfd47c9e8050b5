// Package i2ctest provides a memory-backed i2c.Bus double for tests and
// examples.
//
// The bus simulates an FM24C04-style part: the low bit of the device
// selector is memory address bit 8, the first byte of every write
// transaction latches the address pointer, and subsequent data bytes (or a
// following read request) access memory from that pointer. Every
// transaction is recorded and failures can be injected per transaction.
package i2ctest

import (
	"github.com/moffa90/go-fm24c/i2c"
)

// Transaction is one recorded bus exchange.
type Transaction struct {
	// Addr is the selector the transaction was directed at
	Addr byte

	// W holds the written bytes (sub-address first) for write transactions
	W []byte

	// R holds the bytes returned for read requests
	R []byte
}

// Bus is a fake FRAM chip on a fake I2C bus. The zero value is not usable;
// create instances with New.
type Bus struct {
	base byte
	mem  []byte

	txs []Transaction

	// write transaction in flight
	addr byte
	wbuf []byte

	// address latch set by the last write transaction
	ptr int

	// receive buffer filled by RequestFrom
	rbuf []byte
	rpos int

	writeCount int
	failAt     int
	failWith   i2c.Status
	readStatus i2c.Status
}

// New returns a bus with a zeroed memory of the given capacity behind the
// 7-bit base selector. The low selector bit must be clear; it is the
// address-extension bit.
func New(base byte, capacity int) *Bus {
	if base&0x01 != 0 || base > 0x7F {
		panic("i2ctest: base selector must be 7-bit with the low bit clear")
	}
	if capacity <= 0 || capacity > 512 {
		panic("i2ctest: capacity must be 1..512")
	}
	return &Bus{
		base: base,
		mem:  make([]byte, capacity),
	}
}

// Mem exposes the backing memory for seeding and inspection.
func (b *Bus) Mem() []byte { return b.mem }

// Transactions returns every recorded transaction in order.
func (b *Bus) Transactions() []Transaction { return b.txs }

// Writes returns the number of completed write transactions.
func (b *Bus) Writes() int {
	n := 0
	for _, tx := range b.txs {
		if tx.R == nil {
			n++
		}
	}
	return n
}

// FailWriteAt makes the n-th write transaction (1-based) end with the given
// status instead of committing its data.
func (b *Bus) FailWriteAt(n int, st i2c.Status) {
	b.failAt = n
	b.failWith = st
}

// SetReadStatus makes every subsequent RequestFrom return st. The receive
// buffer is left zeroed when st is not OK.
func (b *Bus) SetReadStatus(st i2c.Status) { b.readStatus = st }

func (b *Bus) BeginTransmission(addr byte) {
	b.addr = addr
	b.wbuf = b.wbuf[:0]
}

func (b *Bus) Write(p byte) {
	b.wbuf = append(b.wbuf, p)
}

func (b *Bus) EndTransmission() i2c.Status {
	w := make([]byte, len(b.wbuf))
	copy(w, b.wbuf)
	b.txs = append(b.txs, Transaction{Addr: b.addr, W: w})

	b.writeCount++
	if b.failAt != 0 && b.writeCount == b.failAt {
		return b.failWith
	}
	if b.addr&^0x01 != b.base {
		return i2c.ErrAddressNACK
	}
	if len(w) == 0 {
		return i2c.OK
	}

	// First byte latches the address pointer, folding in selector bit 0 as
	// address bit 8. Remaining bytes are the data payload.
	b.ptr = int(b.addr&0x01)<<8 | int(w[0])
	for _, v := range w[1:] {
		if b.ptr >= len(b.mem) {
			return i2c.ErrDataNACK
		}
		b.mem[b.ptr] = v
		b.ptr++
	}
	return i2c.OK
}

func (b *Bus) RequestFrom(addr byte, n int) i2c.Status {
	b.rbuf = make([]byte, n)
	b.rpos = 0
	tx := Transaction{Addr: addr, R: b.rbuf}
	b.txs = append(b.txs, tx)

	if b.readStatus != i2c.OK {
		return b.readStatus
	}
	if addr&^0x01 != b.base {
		return i2c.ErrAddressNACK
	}
	for i := 0; i < n && b.ptr < len(b.mem); i++ {
		b.rbuf[i] = b.mem[b.ptr]
		b.ptr++
	}
	return i2c.OK
}

func (b *Bus) Read() byte {
	if b.rpos >= len(b.rbuf) {
		return 0
	}
	v := b.rbuf[b.rpos]
	b.rpos++
	return v
}
