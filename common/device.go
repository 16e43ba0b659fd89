package common

import "net"

// Mode identifies which of the two mutually exclusive output channels a
// controller is driving
type Mode uint8

const (
	// ModeColor means the RGB channel is active
	ModeColor Mode = iota
	// ModeWhite means the color temperature (warm/cold white) channel is
	// active
	ModeWhite
)

func (m Mode) String() string {
	if m == ModeWhite {
		return `CCT`
	}
	return `RGB`
}

// State is one snapshot of a controller's registers.  It is read fresh from
// the device on every get/status operation and never cached across
// invocations.
type State struct {
	Power bool
	// Mode reports which channel the register contents say is active
	Mode Mode
	// Color holds the exact color channel register bytes
	Color RGBColor
	// ColorBrightness is the color channel intensity as a percentage
	ColorBrightness uint8
	// Kelvin is the white channel temperature
	Kelvin uint16
	// WhiteBrightness is the white channel intensity as a percentage
	WhiteBrightness uint8
}

// Device represents a generic smart LED controller
type Device interface {
	// ID returns the `host:port` identity of the device; two devices are
	// the same device exactly when their IDs are equal
	ID() string
	// Address returns the IP address of the device
	Address() net.IP
	// Port returns the control port of the device
	Port() uint16
	// Name returns a human readable name, unique enough for display
	Name() string

	// Refresh reads the current state from the device
	Refresh() error
	// State returns the state captured by the last Refresh
	State() State
	// Power returns the power state captured by the last Refresh
	Power() bool
	// SetPower turns the device on or off
	SetPower(state bool) error

	// Device is a SubscriptionTarget
	SubscriptionTarget
}

// RGB is a device with a color channel
type RGB interface {
	Device

	// SetRGB applies color dimmed to the given brightness percentage
	SetRGB(color Color, brightness uint8) error
	// SetRGBExact writes the color channel registers verbatim
	SetRGBExact(color Color) error
	// SetRGBColor applies color keeping the current brightness
	SetRGBColor(color Color) error
	// SetRGBBrightness changes brightness keeping the current color
	SetRGBBrightness(brightness uint8) error

	// RGBColor returns the current hue/saturation at full value
	RGBColor() Color
	// RGBExact returns the raw color channel registers
	RGBExact() Color
	// RGBBrightness returns the color channel brightness percentage
	RGBBrightness() uint8
}

// CCT is a device with a correlated color temperature (white) channel
type CCT interface {
	Device

	// SetCCT applies a temperature at the given brightness percentage
	SetCCT(kelvin uint16, brightness uint8) error
	// SetCCTTemperature changes temperature keeping the current brightness
	SetCCTTemperature(kelvin uint16) error
	// SetCCTBrightness changes brightness keeping the current temperature
	SetCCTBrightness(brightness uint8) error

	// CCTTemperature returns the white channel temperature in Kelvin
	CCTTemperature() uint16
	// CCTBrightness returns the white channel brightness percentage
	CCTBrightness() uint8
}

// Mono is a device with a single brightness-only channel
type Mono interface {
	Device

	// SetMono sets the channel brightness percentage
	SetMono(brightness uint8) error
	// MonoBrightness returns the channel brightness percentage
	MonoBrightness() uint8
}
