package fram

import "encoding/binary"

// ReadByte reads the byte at addr.
func (d *Device) ReadByte(addr uint16) (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readByte(addr)
}

// WriteByte writes value to addr.
func (d *Device) WriteByte(addr uint16, value byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeByte(addr, value)
}

// CopyByte copies the byte at src to dst. The returned error reflects only
// the write; a failed read is not reported separately.
func (d *Device) CopyByte(src, dst uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, _ := d.readByte(src)
	return d.writeByte(dst, v)
}

// ReadBit returns the value (0 or 1) of the given bit of the byte at addr.
func (d *Device) ReadBit(addr uint16, bit uint8) (byte, error) {
	if bit > 7 {
		return 0, &BitIndexError{Index: bit}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readByte(addr)
	if err != nil {
		return 0, err
	}
	return (b >> bit) & 0x1, nil
}

// SetBit sets the given bit of the byte at addr.
func (d *Device) SetBit(addr uint16, bit uint8) error {
	if bit > 7 {
		return &BitIndexError{Index: bit}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readByte(addr)
	if err != nil {
		return err
	}
	return d.writeByte(addr, b|1<<bit)
}

// ClearBit clears the given bit of the byte at addr.
func (d *Device) ClearBit(addr uint16, bit uint8) error {
	if bit > 7 {
		return &BitIndexError{Index: bit}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readByte(addr)
	if err != nil {
		return err
	}
	return d.writeByte(addr, b&^(1<<bit))
}

// ToggleBit flips the given bit of the byte at addr: the bit becomes 0 if
// it was 1, and 1 otherwise.
func (d *Device) ToggleBit(addr uint16, bit uint8) error {
	if bit > 7 {
		return &BitIndexError{Index: bit}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readByte(addr)
	if err != nil {
		return err
	}
	if b&(1<<bit) == 1<<bit {
		b &^= 1 << bit
	} else {
		b |= 1 << bit
	}
	return d.writeByte(addr, b)
}

// ReadWord reads a 16-bit value stored little-endian at addr.
func (d *Device) ReadWord(addr uint16) (uint16, error) {
	var buf [2]byte
	d.mu.Lock()
	defer d.mu.Unlock()
	err := d.readArray(addr, buf[:])
	return binary.LittleEndian.Uint16(buf[:]), err
}

// WriteWord writes a 16-bit value little-endian at addr.
func (d *Device) WriteWord(addr uint16, value uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], value)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeArray(addr, buf[:])
}

// ReadLong reads a 32-bit value stored little-endian at addr.
func (d *Device) ReadLong(addr uint16) (uint32, error) {
	var buf [4]byte
	d.mu.Lock()
	defer d.mu.Unlock()
	err := d.readArray(addr, buf[:])
	return binary.LittleEndian.Uint32(buf[:]), err
}

// WriteLong writes a 32-bit value little-endian at addr.
func (d *Device) WriteLong(addr uint16, value uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], value)
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeArray(addr, buf[:])
}

func (d *Device) readByte(addr uint16) (byte, error) {
	var buf [1]byte
	err := d.readArray(addr, buf[:])
	return buf[0], err
}

func (d *Device) writeByte(addr uint16, value byte) error {
	return d.writeArray(addr, []byte{value})
}
