// Package fram provides a driver for FM24Cxx-family I2C FRAM chips.
//
// # Overview
//
// The driver exposes byte-addressable access to the chip's 512-byte memory
// map plus the conveniences the part is typically used with:
//   - Array, byte, 16-bit word and 32-bit long transfers
//   - Bit-level read/set/clear/toggle
//   - Inter-address byte copy
//   - Whole-device erase with progress tracking
//   - Optional hardware write-protect pin management
//
// # Basic Usage
//
// The driver is hardware independent: the caller provides an i2c.Bus (see
// the periphio package for real hardware, i2ctest for a fake chip):
//
//	dev, err := fram.New(bus, fram.DefaultAddr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := dev.WriteByte(0x10, 0xA5); err != nil {
//	    log.Fatal(err)
//	}
//	v, err := dev.ReadByte(0x10)
//
// # Addressing
//
// The FM24C04 folds memory address bit 8 into the low bit of its 7-bit
// selector, so a chip occupies two consecutive bus addresses. New therefore
// accepts only even selectors (the Addr* constants). Transfers are validated
// against the configured capacity before any bus activity.
//
// # Word Format
//
// ReadWord/WriteWord and ReadLong/WriteLong use a fixed little-endian byte
// order on the wire regardless of the host architecture.
//
// # Write Protection
//
// The WP line is managed only when a pin is supplied at construction:
//
//	dev, err := fram.New(bus, fram.DefaultAddr,
//	    fram.WithWriteProtect(pin, false),
//	)
//	err = dev.EnableWriteProtect()
//
// On a device without a managed pin, EnableWriteProtect and
// DisableWriteProtect fail with ErrProtectUnmanaged and Protected always
// reports false.
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	dev, err := fram.New(bus, fram.DefaultAddr,
//	    fram.WithCapacity(256),
//	    fram.WithWriteProtect(pin, true),
//	    fram.WithLogger(myLogger),
//	    fram.WithProgressCallback(progressFunc),
//	)
//
// # Error Handling
//
// Every operation returns an error the caller can inspect:
//   - *i2c.StatusError: the transport reported a failure status
//   - *AddressRangeError: the request exceeds the device capacity
//   - *TransferTooLargeError: more than MaxTransfer bytes in one transfer
//   - *BitIndexError: bit index above 7
//   - ErrEmptyRead: zero-length read request
//   - ErrProtectUnmanaged: WP toggled without a managed pin
//
// The driver never retries; all errors are recoverable by the caller.
package fram
