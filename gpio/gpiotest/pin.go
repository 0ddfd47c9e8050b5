// Package gpiotest provides a recording gpio.Pin double.
package gpiotest

// Pin records every configuration and level change applied to it.
type Pin struct {
	// Configured reports whether ConfigureOutput was called
	Configured bool

	// Level is the last level driven (true = high)
	Level bool

	// History holds every level driven, in order
	History []bool
}

func (p *Pin) ConfigureOutput() {
	p.Configured = true
}

func (p *Pin) Set(high bool) {
	p.Level = high
	p.History = append(p.History, high)
}
