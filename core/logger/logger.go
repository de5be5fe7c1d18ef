// Package logger provides structured logging for pagelift.
// Messages go to stderr so that command output on stdout stays clean.
// Debug messages are only emitted in verbose mode.
package logger

import (
	"io"
	"os"

	"github.com/baditaflorin/l"
)

// Logger is the logging surface used across the pipeline.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Close() error
}

// Options configures a Logger.
type Options struct {
	Output  io.Writer
	JSON    bool
	Verbose bool
}

// StdLogger adapts l.Logger to the Logger interface.
type StdLogger struct {
	logger  l.Logger
	verbose bool
}

// New creates a logger writing to opts.Output (stderr when nil).
func New(opts Options) (*StdLogger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	lg, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     out,
		JsonFormat: opts.JSON,
		AsyncWrite: false,
		AddSource:  opts.Verbose,
	})
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: lg, verbose: opts.Verbose}, nil
}

// Debug logs a debug message when verbose mode is on.
func (s *StdLogger) Debug(msg string, keysAndValues ...any) {
	if s.verbose {
		s.logger.Debug(msg, keysAndValues...)
	}
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...any) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...any) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...any) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the underlying logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// Nop discards everything. Used by tests and as a safe default.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
func (Nop) Close() error         { return nil }
