package golednet

import (
	"fmt"
	"net"
	"strconv"

	"github.com/pdf/golednet/common"
)

// Response is the displayable outcome of a command.  Commands that only
// change device state return a nil Response.
type Response interface {
	fmt.Stringer
}

// Command is a unit of work executed against a single device.  The
// dispatcher applies one Command to many devices concurrently, so a Command
// must be safe for concurrent Execute calls.
type Command interface {
	Execute(dev common.Device) (Response, error)
}

// PowerResponse reports a power state
type PowerResponse struct {
	On bool
}

func (r PowerResponse) String() string {
	if r.On {
		return `ON`
	}
	return `OFF`
}

// ColorResponse reports a color in its RGB form
type ColorResponse struct {
	Color common.Color
}

func (r ColorResponse) String() string {
	return r.Color.RGB().String()
}

// BrightnessResponse reports a brightness percentage
type BrightnessResponse struct {
	Brightness uint8
}

func (r BrightnessResponse) String() string {
	return strconv.Itoa(int(r.Brightness))
}

// TemperatureResponse reports a white temperature in Kelvin
type TemperatureResponse struct {
	Kelvin uint16
}

func (r TemperatureResponse) String() string {
	return strconv.Itoa(int(r.Kelvin))
}

// AddressResponse reports a device IP address
type AddressResponse struct {
	IP net.IP
}

func (r AddressResponse) String() string {
	return r.IP.String()
}

// PortResponse reports a device control port
type PortResponse struct {
	Port uint16
}

func (r PortResponse) String() string {
	return strconv.Itoa(int(r.Port))
}

// StatusResponse reports the full device state as a single line
type StatusResponse struct {
	Name  string
	Addr  string
	State common.State
}

func (r StatusResponse) String() string {
	hue := common.RGBToHSV(r.State.Color)
	hue.V = 100
	return fmt.Sprintf(
		`%s -- Address: %s Power: %s RGB: [%s @ %d%%] CCT: [%s @ %d%%]`,
		r.Name,
		r.Addr,
		PowerResponse{On: r.State.Power},
		hue.RGB(),
		r.State.ColorBrightness,
		common.Temperature(r.State.Kelvin),
		r.State.WhiteBrightness,
	)
}

// SetPower switches the device output on or off
type SetPower struct {
	On bool
}

// Execute runs the command against dev
func (c SetPower) Execute(dev common.Device) (Response, error) {
	return nil, dev.SetPower(c.On)
}

// GetPower reports the current power state
type GetPower struct{}

// Execute runs the command against dev
func (c GetPower) Execute(dev common.Device) (Response, error) {
	if err := dev.Refresh(); err != nil {
		return nil, err
	}
	return PowerResponse{On: dev.Power()}, nil
}

// GetAddress reports the device IP address
type GetAddress struct{}

// Execute runs the command against dev
func (c GetAddress) Execute(dev common.Device) (Response, error) {
	return AddressResponse{IP: dev.Address()}, nil
}

// GetPort reports the device control port
type GetPort struct{}

// Execute runs the command against dev
func (c GetPort) Execute(dev common.Device) (Response, error) {
	return PortResponse{Port: dev.Port()}, nil
}

// SetRGB applies a color dimmed to a brightness percentage
type SetRGB struct {
	Color      common.Color
	Brightness uint8
}

// Execute runs the command against dev
func (c SetRGB) Execute(dev common.Device) (Response, error) {
	rgb, ok := dev.(common.RGB)
	if !ok {
		return nil, common.ErrUnsupported
	}
	return nil, rgb.SetRGB(c.Color, c.Brightness)
}

// SetRGBExact writes color channel values verbatim
type SetRGBExact struct {
	Color common.Color
}

// Execute runs the command against dev
func (c SetRGBExact) Execute(dev common.Device) (Response, error) {
	rgb, ok := dev.(common.RGB)
	if !ok {
		return nil, common.ErrUnsupported
	}
	return nil, rgb.SetRGBExact(c.Color)
}

// SetRGBColor applies a color keeping the device's current brightness
type SetRGBColor struct {
	Color common.Color
}

// Execute runs the command against dev
func (c SetRGBColor) Execute(dev common.Device) (Response, error) {
	rgb, ok := dev.(common.RGB)
	if !ok {
		return nil, common.ErrUnsupported
	}
	return nil, rgb.SetRGBColor(c.Color)
}

// SetRGBBrightness changes brightness keeping the device's current color
type SetRGBBrightness struct {
	Brightness uint8
}

// Execute runs the command against dev
func (c SetRGBBrightness) Execute(dev common.Device) (Response, error) {
	rgb, ok := dev.(common.RGB)
	if !ok {
		return nil, common.ErrUnsupported
	}
	return nil, rgb.SetRGBBrightness(c.Brightness)
}

// GetRGBColor reports the current color at full value
type GetRGBColor struct{}

// Execute runs the command against dev
func (c GetRGBColor) Execute(dev common.Device) (Response, error) {
	rgb, ok := dev.(common.RGB)
	if !ok {
		return nil, common.ErrUnsupported
	}
	if err := dev.Refresh(); err != nil {
		return nil, err
	}
	return ColorResponse{Color: rgb.RGBColor()}, nil
}

// GetRGBExact reports the raw color channel values
type GetRGBExact struct{}

// Execute runs the command against dev
func (c GetRGBExact) Execute(dev common.Device) (Response, error) {
	rgb, ok := dev.(common.RGB)
	if !ok {
		return nil, common.ErrUnsupported
	}
	if err := dev.Refresh(); err != nil {
		return nil, err
	}
	return ColorResponse{Color: rgb.RGBExact()}, nil
}

// GetRGBBrightness reports the color channel brightness percentage
type GetRGBBrightness struct{}

// Execute runs the command against dev
func (c GetRGBBrightness) Execute(dev common.Device) (Response, error) {
	rgb, ok := dev.(common.RGB)
	if !ok {
		return nil, common.ErrUnsupported
	}
	if err := dev.Refresh(); err != nil {
		return nil, err
	}
	return BrightnessResponse{Brightness: rgb.RGBBrightness()}, nil
}

// SetCCT applies a white temperature at a brightness percentage
type SetCCT struct {
	Kelvin     uint16
	Brightness uint8
}

// Execute runs the command against dev
func (c SetCCT) Execute(dev common.Device) (Response, error) {
	cct, ok := dev.(common.CCT)
	if !ok {
		return nil, common.ErrUnsupported
	}
	return nil, cct.SetCCT(c.Kelvin, c.Brightness)
}

// SetCCTTemperature changes temperature keeping the device's current
// brightness
type SetCCTTemperature struct {
	Kelvin uint16
}

// Execute runs the command against dev
func (c SetCCTTemperature) Execute(dev common.Device) (Response, error) {
	cct, ok := dev.(common.CCT)
	if !ok {
		return nil, common.ErrUnsupported
	}
	return nil, cct.SetCCTTemperature(c.Kelvin)
}

// SetCCTBrightness changes brightness keeping the device's current
// temperature
type SetCCTBrightness struct {
	Brightness uint8
}

// Execute runs the command against dev
func (c SetCCTBrightness) Execute(dev common.Device) (Response, error) {
	cct, ok := dev.(common.CCT)
	if !ok {
		return nil, common.ErrUnsupported
	}
	return nil, cct.SetCCTBrightness(c.Brightness)
}

// GetCCTTemperature reports the white channel temperature in Kelvin
type GetCCTTemperature struct{}

// Execute runs the command against dev
func (c GetCCTTemperature) Execute(dev common.Device) (Response, error) {
	cct, ok := dev.(common.CCT)
	if !ok {
		return nil, common.ErrUnsupported
	}
	if err := dev.Refresh(); err != nil {
		return nil, err
	}
	return TemperatureResponse{Kelvin: cct.CCTTemperature()}, nil
}

// GetCCTBrightness reports the white channel brightness percentage
type GetCCTBrightness struct{}

// Execute runs the command against dev
func (c GetCCTBrightness) Execute(dev common.Device) (Response, error) {
	cct, ok := dev.(common.CCT)
	if !ok {
		return nil, common.ErrUnsupported
	}
	if err := dev.Refresh(); err != nil {
		return nil, err
	}
	return BrightnessResponse{Brightness: cct.CCTBrightness()}, nil
}

// SetMono sets the brightness of a single-channel device
type SetMono struct {
	Brightness uint8
}

// Execute runs the command against dev
func (c SetMono) Execute(dev common.Device) (Response, error) {
	mono, ok := dev.(common.Mono)
	if !ok {
		return nil, common.ErrUnsupported
	}
	return nil, mono.SetMono(c.Brightness)
}

// GetMono reports the brightness of a single-channel device
type GetMono struct{}

// Execute runs the command against dev
func (c GetMono) Execute(dev common.Device) (Response, error) {
	mono, ok := dev.(common.Mono)
	if !ok {
		return nil, common.ErrUnsupported
	}
	if err := dev.Refresh(); err != nil {
		return nil, err
	}
	return BrightnessResponse{Brightness: mono.MonoBrightness()}, nil
}

// Status reports the full device state as a single line
type Status struct{}

// Execute runs the command against dev
func (c Status) Execute(dev common.Device) (Response, error) {
	if err := dev.Refresh(); err != nil {
		return nil, err
	}
	return StatusResponse{
		Name:  dev.Name(),
		Addr:  dev.ID(),
		State: dev.State(),
	}, nil
}
