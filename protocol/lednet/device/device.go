// Package device implements a client for a single LEDNET controller.
//
// This package is not designed to be accessed by end users, all interaction
// should occur via the Client in the golednet package.
package device

import (
	"bytes"
	"errors"
	"io"
	"math"
	"net"
	"os"
	"sync"
	"time"

	"github.com/pdf/golednet/common"
	"github.com/pdf/golednet/protocol/lednet/packet"
	"github.com/pdf/golednet/protocol/lednet/shared"
)

// Device talks to one LEDNET controller.  Every operation opens its own TCP
// connection to the control port, performs a single bounded request/response
// exchange and closes it again - there is no session, no pipelining, and no
// retrying.  A Device is safe for use by a single goroutine at a time; the
// dispatcher gives each concurrent operation its own Device.
type Device struct {
	addr    *net.TCPAddr
	model   string
	timeout *time.Duration

	state         common.State
	subscriptions map[string]*common.Subscription
	sync.RWMutex
}

// New returns a Device for the controller at addr.  model may be empty when
// the device was targeted directly rather than discovered.
func New(addr *net.TCPAddr, model string, timeout *time.Duration) *Device {
	return &Device{
		addr:          addr,
		model:         model,
		timeout:       timeout,
		subscriptions: make(map[string]*common.Subscription),
	}
}

// ID returns the `host:port` identity of the device
func (d *Device) ID() string {
	return d.addr.String()
}

// Address returns the IP address of the device
func (d *Device) Address() net.IP {
	return d.addr.IP
}

// Port returns the control port of the device
func (d *Device) Port() uint16 {
	return uint16(d.addr.Port)
}

// Model returns the WiFi module identifier reported during discovery, or an
// empty string for directly targeted devices
func (d *Device) Model() string {
	return d.model
}

// Name returns the family name, qualified by the module identifier when one
// is known
func (d *Device) Name() string {
	if d.model == `` {
		return shared.FamilyName
	}
	return shared.FamilyName + `:` + d.model
}

// State returns the snapshot captured by the last Refresh
func (d *Device) State() common.State {
	d.RLock()
	state := d.state
	d.RUnlock()
	return state
}

// Power returns the power state captured by the last Refresh
func (d *Device) Power() bool {
	return d.State().Power
}

// Refresh queries the controller and replaces the cached state snapshot,
// publishing events for any registers that changed
func (d *Device) Refresh() error {
	resp, err := d.roundTrip(packet.StateQuery(), packet.StateLen)
	if err != nil {
		return err
	}

	raw, err := packet.DecodeState(resp)
	if err != nil {
		return err
	}
	state := stateFromRegisters(raw)

	d.Lock()
	prev := d.state
	d.state = state
	d.Unlock()
	common.Log.Debugf("Got state (%v): %+v\n", d.ID(), state)

	if prev.Power != state.Power {
		d.publish(common.EventUpdatePower{Power: state.Power})
	}
	if prev.Color != state.Color {
		d.publish(common.EventUpdateColor{Color: state.Color})
	}
	if prev.Kelvin != state.Kelvin || prev.WhiteBrightness != state.WhiteBrightness {
		d.publish(common.EventUpdateWhite{Kelvin: state.Kelvin, Brightness: state.WhiteBrightness})
	}

	return nil
}

// SetPower turns the controller output on or off.  The controller echoes
// power commands; the echo is verified before the state is re-read.
func (d *Device) SetPower(state bool) error {
	ack := packet.PowerAck(state)
	common.Log.Debugf("Setting power state on %v: %v\n", d.ID(), state)
	resp, err := d.roundTrip(packet.SetPower(state), len(ack))
	if err != nil {
		return err
	}
	if !bytes.Equal(resp, ack) {
		return common.ErrUnexpectedResponse
	}
	return d.Refresh()
}

// SetRGBExact writes the color channel registers verbatim
func (d *Device) SetRGBExact(color common.Color) error {
	rgb := color.RGB()
	if err := d.writeChannels(rgb.R, rgb.G, rgb.B, 0, 0, packet.MaskColor); err != nil {
		return err
	}
	return d.Refresh()
}

// SetRGB applies color dimmed to the given brightness percentage.
// Brightness replaces the value component of the color's HSV form.
func (d *Device) SetRGB(color common.Color, brightness uint8) error {
	if err := validBrightness(brightness); err != nil {
		return err
	}
	hsv := common.RGBToHSV(color.RGB())
	hsv.V = brightness
	return d.SetRGBExact(hsv)
}

// SetRGBColor applies color keeping the brightness the controller currently
// has
func (d *Device) SetRGBColor(color common.Color) error {
	if err := d.Refresh(); err != nil {
		return err
	}
	return d.SetRGB(color, d.State().ColorBrightness)
}

// SetRGBBrightness changes brightness keeping the color the controller
// currently has
func (d *Device) SetRGBBrightness(brightness uint8) error {
	if err := validBrightness(brightness); err != nil {
		return err
	}
	if err := d.Refresh(); err != nil {
		return err
	}
	return d.SetRGB(d.RGBColor(), brightness)
}

// RGBColor returns the current hue and saturation at full value
func (d *Device) RGBColor() common.Color {
	hsv := common.RGBToHSV(d.State().Color)
	hsv.V = 100
	return hsv
}

// RGBExact returns the raw color channel registers
func (d *Device) RGBExact() common.Color {
	return d.State().Color
}

// RGBBrightness returns the color channel brightness percentage
func (d *Device) RGBBrightness() uint8 {
	return d.State().ColorBrightness
}

// SetCCT applies a white temperature at the given brightness percentage
func (d *Device) SetCCT(kelvin uint16, brightness uint8) error {
	if err := validBrightness(brightness); err != nil {
		return err
	}
	warm, cold := kelvinToWarmCold(kelvin)
	scale := float64(brightness) / 100
	err := d.writeChannels(
		0, 0, 0,
		uint8(float64(warm)*scale),
		uint8(float64(cold)*scale),
		packet.MaskWhite,
	)
	if err != nil {
		return err
	}
	return d.Refresh()
}

// SetCCTTemperature changes temperature keeping the brightness the
// controller currently has
func (d *Device) SetCCTTemperature(kelvin uint16) error {
	if err := d.Refresh(); err != nil {
		return err
	}
	return d.SetCCT(kelvin, d.State().WhiteBrightness)
}

// SetCCTBrightness changes brightness keeping the temperature the
// controller currently has
func (d *Device) SetCCTBrightness(brightness uint8) error {
	if err := validBrightness(brightness); err != nil {
		return err
	}
	if err := d.Refresh(); err != nil {
		return err
	}
	return d.SetCCT(d.State().Kelvin, brightness)
}

// CCTTemperature returns the white channel temperature in Kelvin
func (d *Device) CCTTemperature() uint16 {
	return d.State().Kelvin
}

// CCTBrightness returns the white channel brightness percentage
func (d *Device) CCTBrightness() uint8 {
	return d.State().WhiteBrightness
}

// SetWarmCold writes the warm and cold white registers verbatim, bypassing
// the Kelvin mapping
func (d *Device) SetWarmCold(warm, cold uint8) error {
	if err := d.writeChannels(0, 0, 0, warm, cold, packet.MaskWhite); err != nil {
		return err
	}
	return d.Refresh()
}

// SetRGBCCT drives the color and white channels simultaneously in a single
// frame
func (d *Device) SetRGBCCT(color common.Color, kelvin uint16) error {
	rgb := color.RGB()
	warm, cold := kelvinToWarmCold(kelvin)
	if err := d.writeChannels(rgb.R, rgb.G, rgb.B, warm, cold, packet.MaskBoth); err != nil {
		return err
	}
	return d.Refresh()
}

// NewSubscription returns a new *common.Subscription for receiving events
// from this device
func (d *Device) NewSubscription() (*common.Subscription, error) {
	sub := common.NewSubscription(d)
	d.Lock()
	d.subscriptions[sub.ID()] = sub
	d.Unlock()
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of subscriptions
func (d *Device) CloseSubscription(sub *common.Subscription) error {
	d.RLock()
	_, ok := d.subscriptions[sub.ID()]
	d.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	d.Lock()
	delete(d.subscriptions, sub.ID())
	d.Unlock()

	return nil
}

func (d *Device) writeChannels(r, g, b, warm, cold, mask byte) error {
	_, err := d.roundTrip(packet.SetChannels(r, g, b, warm, cold, mask), 0)
	return err
}

// roundTrip opens a connection, writes one frame and reads respLen response
// bytes before the deadline.  respLen zero means the frame is not
// acknowledged.
func (d *Device) roundTrip(frame []byte, respLen int) ([]byte, error) {
	timeout := common.DefaultTimeout
	if d.timeout != nil && *d.timeout > 0 {
		timeout = *d.timeout
	}

	conn, err := net.DialTimeout(`tcp`, d.addr.String(), timeout)
	if err != nil {
		return nil, &common.UnreachableError{Addr: d.ID(), Err: err}
	}
	defer func() { _ = conn.Close() }()

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}

	common.Log.Debugf("Sending frame to %v: % x\n", d.ID(), frame)
	if _, err := conn.Write(frame); err != nil {
		return nil, &common.UnreachableError{Addr: d.ID(), Err: err}
	}
	if respLen == 0 {
		return nil, nil
	}

	resp := make([]byte, respLen)
	if _, err := io.ReadFull(conn, resp); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, common.ErrTruncated
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, &common.UnreachableError{Addr: d.ID(), Err: common.ErrTimeout}
		}
		return nil, &common.UnreachableError{Addr: d.ID(), Err: err}
	}
	common.Log.Debugf("Received frame from %v: % x\n", d.ID(), resp)

	return resp, nil
}

// Pushes an event to subscribers
func (d *Device) publish(event interface{}) {
	d.RLock()
	subs := make([]*common.Subscription, 0, len(d.subscriptions))
	for _, sub := range d.subscriptions {
		subs = append(subs, sub)
	}
	d.RUnlock()

	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf("Failed publishing event on device %v: %v\n", d.ID(), err)
		}
	}
}

// stateFromRegisters interprets a raw register block.  Exactly one channel
// is considered active: the white channel whenever either white register is
// non-zero, the color channel otherwise.
func stateFromRegisters(raw packet.State) common.State {
	rgb := common.RGBColor{R: raw.R, G: raw.G, B: raw.B}

	mode := common.ModeColor
	if raw.Warm != 0 || raw.Cold != 0 {
		mode = common.ModeWhite
	}

	whitePct := math.Round(float64(uint16(raw.Warm)+uint16(raw.Cold)) / 0xff * 100)
	if whitePct > 100 {
		whitePct = 100
	}

	return common.State{
		Power:           raw.Power,
		Mode:            mode,
		Color:           rgb,
		ColorBrightness: common.RGBToHSV(rgb).V,
		Kelvin:          warmColdToKelvin(raw.Warm, raw.Cold),
		WhiteBrightness: uint8(whitePct),
	}
}

func validBrightness(pct uint8) error {
	if pct > 100 {
		return &common.ValidationError{Field: `brightness`, Value: int(pct), Min: 0, Max: 100}
	}
	return nil
}
