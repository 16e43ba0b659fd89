package common

import "time"

// DefaultTimeout bounds a single request/response exchange with a device
const DefaultTimeout = 2 * time.Second

// Client defines the interface required by protocols
type Client interface {
	AddDevice(Device) error
	GetTimeout() *time.Duration
}
