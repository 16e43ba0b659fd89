package golednet

import (
	"sync"
	"time"

	"github.com/pdf/golednet/common"
	"github.com/pdf/golednet/protocol"
)

// Client provides a simple interface for interacting with LEDNET controllers.
// Client can not be instantiated manually or it will not function - always
// use NewClient() to obtain a Client instance.
type Client struct {
	protocol protocol.Protocol
	timeout  time.Duration
	// order preserves registration order so results and listings are stable
	order         []string
	devices       map[string]common.Device
	subscriptions map[string]*common.Subscription
	sync.RWMutex
}

// AddDevice is for use by protocols only.
// Adds dev to the client's known devices.  Returns common.ErrDuplicate if a
// device with the same ID is already known.
func (c *Client) AddDevice(dev common.Device) error {
	id := dev.ID()
	c.RLock()
	_, ok := c.devices[id]
	c.RUnlock()
	if ok {
		return common.ErrDuplicate
	}

	c.Lock()
	c.devices[id] = dev
	c.order = append(c.order, id)
	c.Unlock()

	c.publish(common.EventNewDevice{Device: dev})

	return nil
}

// RemoveDeviceByID looks up a device by its id and removes it from the
// client's list of known devices, or returns common.ErrNotFound if the device
// is not known at this time.
func (c *Client) RemoveDeviceByID(id string) error {
	c.RLock()
	_, ok := c.devices[id]
	c.RUnlock()
	if !ok {
		return common.ErrNotFound
	}

	c.Lock()
	delete(c.devices, id)
	for i, known := range c.order {
		if known == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.Unlock()

	return nil
}

// GetDeviceByID looks up a device by its id, or returns common.ErrNotFound if
// the device is not known at this time.
func (c *Client) GetDeviceByID(id string) (common.Device, error) {
	c.RLock()
	dev, ok := c.devices[id]
	c.RUnlock()
	if !ok {
		return nil, common.ErrNotFound
	}
	return dev, nil
}

// Devices returns the known devices in registration order, or
// common.ErrNotFound if no devices are known at this time.
func (c *Client) Devices() ([]common.Device, error) {
	c.RLock()
	defer c.RUnlock()

	if len(c.devices) == 0 {
		return nil, common.ErrNotFound
	}

	devices := make([]common.Device, 0, len(c.order))
	for _, id := range c.order {
		devices = append(devices, c.devices[id])
	}
	return devices, nil
}

// Discover performs a single discovery sweep on the LAN, registering every
// responsive device with the client
func (c *Client) Discover() error {
	return c.protocol.Discover()
}

// AddTarget registers a device at a known IP address, skipping discovery.
// Reachability is not verified; an unreachable target fails on its first
// operation instead.
func (c *Client) AddTarget(host string) (common.Device, error) {
	return c.protocol.Target(host)
}

// SetTimeout sets the time to wait for network operations to complete
func (c *Client) SetTimeout(timeout time.Duration) {
	c.Lock()
	c.timeout = timeout
	c.Unlock()
}

// GetTimeout returns the currently configured timeout period for operations
// on this client
func (c *Client) GetTimeout() *time.Duration {
	return &c.timeout
}

// NewSubscription returns a new *common.Subscription for receiving events
// from this client
func (c *Client) NewSubscription() (*common.Subscription, error) {
	sub := common.NewSubscription(c)
	c.Lock()
	if c.subscriptions == nil {
		c.subscriptions = make(map[string]*common.Subscription)
	}
	c.subscriptions[sub.ID()] = sub
	c.Unlock()
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of subscriptions
func (c *Client) CloseSubscription(sub *common.Subscription) error {
	c.RLock()
	_, ok := c.subscriptions[sub.ID()]
	c.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	c.Lock()
	delete(c.subscriptions, sub.ID())
	c.Unlock()

	return nil
}

// Close signals the termination of this client, and releases resources held
// by the client and its protocol
func (c *Client) Close() error {
	c.Lock()
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.Unlock()

	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			common.Log.Warnf("Failed closing subscription: %v\n", err)
		}
	}

	return c.protocol.Close()
}

// Pushes an event to subscribers
func (c *Client) publish(event interface{}) {
	c.RLock()
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.RUnlock()

	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf("Failed publishing event: %v\n", err)
		}
	}
}

// Result pairs a device with the outcome of a command executed against it.
// Exactly one of Response and Err is meaningful.
type Result struct {
	Device   common.Device
	Response Response
	Err      error
}

// Execute runs cmd against every known device concurrently and returns one
// Result per device, in registration order.  A failure on one device never
// prevents the command reaching the others.
func (c *Client) Execute(cmd Command) ([]Result, error) {
	devices, err := c.Devices()
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(devices))
	var wg sync.WaitGroup
	for i, dev := range devices {
		wg.Add(1)
		go func(i int, dev common.Device) {
			defer wg.Done()
			resp, err := cmd.Execute(dev)
			results[i] = Result{Device: dev, Response: resp, Err: err}
		}(i, dev)
	}
	wg.Wait()

	return results, nil
}
