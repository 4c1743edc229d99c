package renderer

import "fmt"

// Logger receives progress output from the render loop
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdoutLogger implements Logger by writing to stdout
type StdoutLogger struct{}

func (sl *StdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewStdoutLogger creates a new stdout-backed logger
func NewStdoutLogger() Logger {
	return &StdoutLogger{}
}

// NopLogger discards all output; useful in tests
type NopLogger struct{}

func (nl *NopLogger) Printf(format string, args ...interface{}) {}
