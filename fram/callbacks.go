package fram

import "time"

// Progress contains information about a running erase.
// Passed to ProgressCallback after each written byte.
type Progress struct {
	// Current is the number of bytes erased so far
	Current int

	// Total is the device capacity in bytes
	Total int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the erase started
	ElapsedTime time.Duration
}

// ProgressCallback is called during EraseDevice to report progress.
// Implementations should return quickly to avoid stalling the bus.
//
// Example:
//
//	dev, _ := fram.New(bus, fram.DefaultAddr,
//	    fram.WithProgressCallback(func(p fram.Progress) {
//	        fmt.Printf("%.1f%% (%d/%d)\n", p.Percentage, p.Current, p.Total)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// driver. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	dev, _ := fram.New(bus, fram.DefaultAddr, fram.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
