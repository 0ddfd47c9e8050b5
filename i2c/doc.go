// Package i2c defines the transport contract between the FRAM driver and an
// I2C bus implementation.
//
// # Transaction Model
//
// The contract mirrors the classic master-side transaction sequence:
//
//	bus.BeginTransmission(addr)  // START + device selector
//	bus.Write(b)                 // buffer data bytes
//	status := bus.EndTransmission()  // flush + STOP, returns the result
//
// Reads are requested after the device's address latch has been set by a
// write transaction:
//
//	status := bus.RequestFrom(addr, n)
//	for i := 0; i < n; i++ {
//	    data[i] = bus.Read()
//	}
//
// # Status Codes
//
// Every transaction terminates with a Status. OK means the device
// acknowledged everything; the error codes distinguish a full transmit
// buffer, an address NACK, a data NACK and any other transport failure.
// Status.Err converts a code into a *StatusError for the error chain:
//
//	if err := bus.EndTransmission().Err("write array"); err != nil {
//	    return err // "write array failed: data NACK (0x03)"
//	}
//
// # Implementations
//
// This package does NOT talk to hardware. The periphio package adapts a
// periph.io bus to this contract, and i2ctest provides a memory-backed
// double for tests. Any other transport (a vendor SDK, a remote bridge, a
// kernel character device) can be plugged in by implementing Bus.
package i2c
