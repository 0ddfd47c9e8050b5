package fram

import (
	"errors"
	"fmt"
)

// ErrEmptyRead indicates a zero-length read was requested.
var ErrEmptyRead = errors.New("zero-length read requested")

// ErrProtectUnmanaged indicates a write-protect operation on a device whose
// WP pin is not managed by the driver.
var ErrProtectUnmanaged = errors.New("write-protect pin is not managed")

// AddressRangeError indicates that a request falls outside the device's
// memory map. No bus activity takes place for such requests.
type AddressRangeError struct {
	Addr     uint16
	Length   int
	Capacity uint16
}

func (e *AddressRangeError) Error() string {
	return fmt.Sprintf("address 0x%03X length %d is out of range: device capacity is %d bytes",
		e.Addr, e.Length, e.Capacity)
}

// TransferTooLargeError indicates a transfer above MaxTransfer bytes.
type TransferTooLargeError struct {
	Length int
}

func (e *TransferTooLargeError) Error() string {
	return fmt.Sprintf("transfer of %d bytes exceeds maximum of %d per transaction",
		e.Length, MaxTransfer)
}

// BitIndexError indicates a bit index outside 0..7.
type BitIndexError struct {
	Index uint8
}

func (e *BitIndexError) Error() string {
	return fmt.Sprintf("bit index %d is out of range: valid range is 0-7", e.Index)
}
