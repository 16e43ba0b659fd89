// Package protocol defines the interface a protocol family must satisfy to
// be driven by the golednet Client, and provides implementations.
package protocol

import (
	"errors"

	"github.com/pdf/golednet/common"
)

// ErrNoClient is returned when a protocol is used before SetClient
var ErrNoClient = errors.New(`no client assigned to protocol`)

// Protocol defines the interface between the Client and a protocol
// implementation
type Protocol interface {
	// SetClient assigns the client that owns the protocol, devices found by
	// the protocol are registered with this client
	SetClient(client common.Client)
	// Discover performs a single discovery sweep, registering responsive
	// devices with the client
	Discover() error
	// Target registers a device at a known address with the client, without
	// probing the network
	Target(host string) (common.Device, error)
	// Close releases any resources held by the protocol
	Close() error
}
