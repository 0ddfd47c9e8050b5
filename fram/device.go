package fram

import (
	"fmt"
	"sync"

	"github.com/moffa90/go-fm24c/i2c"
)

// Device selectors for the FM24C04 family (1010 + A2 + A1 + page bit). The
// low selector bit carries memory address bit 8, so only even selectors
// name a chip.
const (
	AddrA000 = 0x50
	AddrA010 = 0x52
	AddrA100 = 0x54
	AddrA110 = 0x56

	// DefaultAddr is the selector with all address pins strapped low
	DefaultAddr = AddrA000
)

// DefaultCapacity is the full 4 Kbit memory map in bytes.
const DefaultCapacity = 512

// MaxTransfer is the largest number of data bytes per transaction.
const MaxTransfer = 255

// Device is a handle to one FRAM chip on an I2C bus.
//
// Device is safe for concurrent use: each operation holds the handle's lock
// for its whole duration, so read-modify-write sequences (bit operations,
// CopyByte, EraseDevice) are atomic with respect to other operations on the
// same handle.
type Device struct {
	bus      i2c.Bus
	addr     byte
	capacity uint16
	config   Config

	mu sync.Mutex
	wp wpState
}

// New creates a Device for the chip at the given 7-bit selector.
// The selector's low bit must be clear; it is the address-extension bit.
//
// Example:
//
//	bus := periphio.NewBus(hwBus)
//	dev, err := fram.New(bus, fram.DefaultAddr,
//	    fram.WithWriteProtect(pin, false),
//	)
func New(bus i2c.Bus, addr byte, opts ...Option) (*Device, error) {
	if bus == nil {
		panic("bus cannot be nil")
	}
	if addr > 0x7F || addr&0x01 != 0 {
		return nil, fmt.Errorf("invalid device selector 0x%02X: must be 7-bit with the low bit clear", addr)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Capacity == 0 || cfg.Capacity > DefaultCapacity {
		return nil, fmt.Errorf("invalid capacity %d: must be 1..%d", cfg.Capacity, DefaultCapacity)
	}

	d := &Device{
		bus:      bus,
		addr:     addr,
		capacity: cfg.Capacity,
		config:   cfg,
		wp:       wpUnmanaged,
	}
	d.initProtect()
	return d, nil
}

// Capacity returns the addressable size of the device in bytes.
func (d *Device) Capacity() uint16 {
	return d.capacity
}

// Addr returns the base selector of the device.
func (d *Device) Addr() byte {
	return d.addr
}

// WriteArray writes data to consecutive addresses starting at addr in one
// bus transaction. Requests that exceed the device capacity fail with
// *AddressRangeError before any bus activity.
func (d *Device) WriteArray(addr uint16, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeArray(addr, data)
}

// ReadArray fills data from consecutive addresses starting at addr.
// A zero-length request fails with ErrEmptyRead before any bus activity.
func (d *Device) ReadArray(addr uint16, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readArray(addr, data)
}

// LogIdentity writes the device configuration to the configured logger.
func (d *Device) LogIdentity() {
	d.logDebug("fram device",
		"selector", fmt.Sprintf("0x%02X", d.addr),
		"capacity", d.capacity,
		"wp_managed", d.config.ProtectPin != nil,
	)
}

// selector folds memory address bit 8 into the low selector bit.
func (d *Device) selector(addr uint16) byte {
	return d.addr | byte((addr>>8)&0x1)
}

// checkRange validates an n-byte transfer at addr against the capacity.
// A zero-length transfer never fits.
func (d *Device) checkRange(addr uint16, n int) error {
	if n == 0 || int(addr) >= int(d.capacity) || int(addr)+n-1 >= int(d.capacity) {
		return &AddressRangeError{Addr: addr, Length: n, Capacity: d.capacity}
	}
	return nil
}

func (d *Device) writeArray(addr uint16, data []byte) error {
	if len(data) > MaxTransfer {
		return &TransferTooLargeError{Length: len(data)}
	}
	if err := d.checkRange(addr, len(data)); err != nil {
		return err
	}

	sel := d.selector(addr)
	d.bus.BeginTransmission(sel)
	d.bus.Write(byte(addr & 0xFF))
	for _, b := range data {
		d.bus.Write(b)
	}
	return d.bus.EndTransmission().Err("write array")
}

func (d *Device) readArray(addr uint16, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyRead
	}
	if len(data) > MaxTransfer {
		return &TransferTooLargeError{Length: len(data)}
	}
	if err := d.checkRange(addr, len(data)); err != nil {
		return err
	}

	// Address phase: a write transaction of just the sub-address latches
	// the chip's address pointer.
	sel := d.selector(addr)
	d.bus.BeginTransmission(sel)
	d.bus.Write(byte(addr & 0xFF))
	addrStatus := d.bus.EndTransmission()

	readStatus := d.bus.RequestFrom(sel, len(data))
	for i := range data {
		data[i] = d.bus.Read()
	}

	if addrStatus != i2c.OK {
		return addrStatus.Err("select address")
	}
	return readStatus.Err("read array")
}

// logDebug logs a debug message if a logger is configured.
func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (d *Device) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (d *Device) logError(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Error(msg, keysAndValues...)
	}
}
