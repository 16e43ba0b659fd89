package common

// EventNewDevice is emitted by a Client when a device is discovered or
// targeted
type EventNewDevice struct {
	Device Device
}

// EventUpdatePower is emitted by a Device when its power state changes
type EventUpdatePower struct {
	Power bool
}

// EventUpdateColor is emitted by a Device when its color channel registers
// change
type EventUpdateColor struct {
	Color RGBColor
}

// EventUpdateWhite is emitted by a Device when its white channel changes
type EventUpdateWhite struct {
	Kelvin     uint16
	Brightness uint8
}
