package args

import (
	argsio "github.com/dzonerzy/go-args/io"
)

// Sink receives every diagnostic the parser produces, in order.
type Sink interface {
	Report(err *ParseError)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(err *ParseError)

// Report calls f(err).
func (f SinkFunc) Report(err *ParseError) { f(err) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(*ParseError) {})

// LoggerSink writes diagnostics through logger at error level, which the
// logger routes to stderr.
func LoggerSink(logger *argsio.Logger) Sink {
	return SinkFunc(func(err *ParseError) {
		logger.Error("%s", err.Error())
	})
}

// Collector records diagnostics for later inspection.
type Collector struct {
	Errors []*ParseError
}

// Report appends err to Errors.
func (c *Collector) Report(err *ParseError) { c.Errors = append(c.Errors, err) }

// Types returns the recorded error types in report order.
func (c *Collector) Types() []ErrorType {
	types := make([]ErrorType, len(c.Errors))
	for i, e := range c.Errors {
		types[i] = e.Type
	}
	return types
}

// Reset clears the recorded diagnostics.
func (c *Collector) Reset() { c.Errors = c.Errors[:0] }
