// Package gpio defines the pin contract used by the FRAM driver for the
// write-protect line.
//
// Like the i2c package, this package does not talk to hardware. The
// periphio package adapts a periph.io pin; gpiotest provides a recording
// double.
package gpio

// Pin is a single digital output line.
type Pin interface {
	// ConfigureOutput configures the pin as an output.
	ConfigureOutput()

	// Set drives the pin high or low.
	Set(high bool)
}
