package common

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup fails to match a known device
	ErrNotFound = errors.New(`device not found`)
	// ErrDuplicate is returned when adding a device that is already known
	ErrDuplicate = errors.New(`device already known`)
	// ErrClosed is returned on operations against a closed subscription
	ErrClosed = errors.New(`subscription closed`)
	// ErrTimeout is returned when an operation exceeds its deadline
	ErrTimeout = errors.New(`operation timed out`)
	// ErrUnsupported is returned when a command requires a capability the
	// target device does not implement
	ErrUnsupported = errors.New(`command not supported by this device`)

	// ErrTruncated is returned when a response frame is shorter than the
	// fixed length its opcode requires
	ErrTruncated = errors.New(`response frame truncated`)
	// ErrBadChecksum is returned when the trailing checksum byte of a frame
	// does not match the sum of the preceding bytes
	ErrBadChecksum = errors.New(`response frame checksum mismatch`)
	// ErrUnknownOpcode is returned when a response frame starts with an
	// opcode the codec does not recognize
	ErrUnknownOpcode = errors.New(`unknown response opcode`)
	// ErrUnexpectedResponse is returned when a device acknowledges a command
	// with a frame other than the one the protocol defines
	ErrUnexpectedResponse = errors.New(`unexpected response frame`)
)

// ParseError reports malformed textual input (colors, temperatures, tokens).
// Parse failures abort resolution of the offending value and are never sent
// to the network.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(`cannot parse %q: %s`, e.Input, e.Reason)
}

// ValidationError reports a value that parsed correctly but falls outside
// the domain the device accepts, e.g. a brightness of 150%.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(`%s %d out of range [%d, %d]`, e.Field, e.Value, e.Min, e.Max)
}

// UnreachableError reports a device that could not be reached - a connect
// failure or an exchange that timed out.  It wraps the transport error.
type UnreachableError struct {
	Addr string
	Err  error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf(`device %s unreachable: %v`, e.Addr, e.Err)
}

// Unwrap returns the underlying transport error
func (e *UnreachableError) Unwrap() error {
	return e.Err
}
