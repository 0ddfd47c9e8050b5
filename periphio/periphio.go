// Package periphio adapts periph.io buses and pins to the driver's
// transport contracts.
//
// Example:
//
//	if _, err := host.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	hw, err := i2creg.Open("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer hw.Close()
//
//	dev, err := fram.New(periphio.NewBus(hw), fram.DefaultAddr,
//	    fram.WithWriteProtect(periphio.NewPin(gpioreg.ByName("GPIO13")), false),
//	)
package periphio

import (
	conngpio "periph.io/x/conn/v3/gpio"
	conni2c "periph.io/x/conn/v3/i2c"

	"github.com/moffa90/go-fm24c/i2c"
)

// Bus implements i2c.Bus on top of a periph.io I2C bus. Write transactions
// are buffered and flushed as a single Tx on EndTransmission.
type Bus struct {
	bus  conni2c.Bus
	addr byte
	wbuf []byte
	rbuf []byte
	rpos int
}

// NewBus wraps a periph.io bus.
func NewBus(bus conni2c.Bus) *Bus {
	if bus == nil {
		panic("bus cannot be nil")
	}
	return &Bus{bus: bus}
}

func (b *Bus) BeginTransmission(addr byte) {
	b.addr = addr
	b.wbuf = b.wbuf[:0]
}

func (b *Bus) Write(p byte) {
	b.wbuf = append(b.wbuf, p)
}

func (b *Bus) EndTransmission() i2c.Status {
	if err := b.bus.Tx(uint16(b.addr), b.wbuf, nil); err != nil {
		return i2c.ErrOther
	}
	return i2c.OK
}

func (b *Bus) RequestFrom(addr byte, n int) i2c.Status {
	if cap(b.rbuf) < n {
		b.rbuf = make([]byte, n)
	}
	b.rbuf = b.rbuf[:n]
	b.rpos = 0
	if err := b.bus.Tx(uint16(addr), nil, b.rbuf); err != nil {
		for i := range b.rbuf {
			b.rbuf[i] = 0
		}
		return i2c.ErrOther
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

// Pin implements gpio.Pin on top of a periph.io pin. Pin errors cannot be
// reported through the contract; the first one is kept and exposed via Err.
type Pin struct {
	pin conngpio.PinIO
	err error
}

// NewPin wraps a periph.io pin.
func NewPin(pin conngpio.PinIO) *Pin {
	if pin == nil {
		panic("pin cannot be nil")
	}
	return &Pin{pin: pin}
}

// ConfigureOutput configures the pin as an output, initially low.
func (p *Pin) ConfigureOutput() {
	p.set(p.pin.Out(conngpio.Low))
}

// Set drives the pin high or low.
func (p *Pin) Set(high bool) {
	l := conngpio.Low
	if high {
		l = conngpio.High
	}
	p.set(p.pin.Out(l))
}

// Err returns the first error reported by the underlying pin, if any.
func (p *Pin) Err() error {
	return p.err
}

func (p *Pin) set(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}
