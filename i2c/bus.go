package i2c

// Bus is the master-side transport used by the FRAM driver.
// Implementations are not required to be safe for concurrent use; the
// driver serializes access to the bus it owns.
type Bus interface {
	// BeginTransmission starts a write transaction to the device with the
	// given 7-bit selector.
	BeginTransmission(addr byte)

	// Write buffers one byte for the current transaction. No status is
	// reported until EndTransmission.
	Write(b byte)

	// EndTransmission flushes the buffered transaction and returns its
	// result.
	EndTransmission() Status

	// RequestFrom reads n bytes from the device with the given selector
	// into the transport's receive buffer and returns the result of the
	// read transaction. The bytes are consumed one at a time via Read.
	RequestFrom(addr byte, n int) Status

	// Read returns the next byte received by the last RequestFrom.
	Read() byte
}
