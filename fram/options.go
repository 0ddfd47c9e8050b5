package fram

import "github.com/moffa90/go-fm24c/gpio"

// Config holds the driver configuration.
type Config struct {
	// Capacity is the addressable size of the chip in bytes
	Capacity uint16

	// ProtectPin drives the chip's WP input; nil leaves WP unmanaged
	ProtectPin gpio.Pin

	// InitiallyProtected is the WP state applied at construction when
	// ProtectPin is set
	InitiallyProtected bool

	// Logger is used for logging operations (optional)
	Logger Logger

	// ProgressCallback is called during EraseDevice to report progress
	// (optional)
	ProgressCallback ProgressCallback
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithCapacity sets the addressable capacity in bytes. The FM24C04 family
// maps at most 512 bytes behind one selector pair; New rejects capacities
// outside 1..512.
//
// Example:
//
//	dev, err := fram.New(bus, fram.DefaultAddr, fram.WithCapacity(256))
func WithCapacity(capacity uint16) Option {
	return func(c *Config) {
		c.Capacity = capacity
	}
}

// WithWriteProtect hands the chip's WP line to the driver. The pin is
// configured as an output during New and driven to the requested initial
// state.
//
// Example:
//
//	dev, err := fram.New(bus, fram.DefaultAddr,
//	    fram.WithWriteProtect(pin, false),
//	)
func WithWriteProtect(pin gpio.Pin, initiallyProtected bool) Option {
	return func(c *Config) {
		c.ProtectPin = pin
		c.InitiallyProtected = initiallyProtected
	}
}

// WithLogger sets a logger for the driver operations.
//
// Example:
//
//	dev, err := fram.New(bus, fram.DefaultAddr, fram.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithProgressCallback sets a callback function to track erase progress.
//
// Example:
//
//	dev, err := fram.New(bus, fram.DefaultAddr,
//	    fram.WithProgressCallback(func(p fram.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}
