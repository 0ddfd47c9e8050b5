package i2c

import (
	"errors"
	"fmt"
)

// Status is the result code of a bus transaction.
type Status byte

// Transaction status codes, in the order transports report them.
const (
	// OK indicates the transaction completed and was acknowledged.
	OK Status = 0

	// ErrBufferOverflow indicates the data did not fit the transport's
	// transmit buffer.
	ErrBufferOverflow Status = 1

	// ErrAddressNACK indicates the device did not acknowledge its selector.
	ErrAddressNACK Status = 2

	// ErrDataNACK indicates the device did not acknowledge a data byte.
	ErrDataNACK Status = 3

	// ErrOther indicates a transport failure not covered by the codes above.
	ErrOther Status = 4
)

// String returns a human-readable name for the status code.
func (s Status) String() string {
	switch s {
	case OK:
		return "success"
	case ErrBufferOverflow:
		return "transmit buffer overflow"
	case ErrAddressNACK:
		return "address NACK"
	case ErrDataNACK:
		return "data NACK"
	case ErrOther:
		return "bus error"
	default:
		return fmt.Sprintf("unknown status code 0x%02X", byte(s))
	}
}

// Err returns nil for OK and a *StatusError naming the failed operation
// otherwise.
func (s Status) Err(operation string) error {
	if s == OK {
		return nil
	}
	return &StatusError{Operation: operation, Status: s}
}

// StatusError represents a failed bus transaction.
// It carries the status code reported by the transport.
type StatusError struct {
	// Operation is the driver operation that failed
	Operation string

	// Status is the code reported by the transport
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%02X)", e.Operation, e.Status, byte(e.Status))
}

// IsStatusError returns true if the error chain contains a *StatusError.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
