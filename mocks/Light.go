package mocks

import "github.com/pdf/golednet/common"

// Light mocks a device carrying both the RGB and CCT capabilities
type Light struct {
	Device
}

func (_m *Light) SetRGB(color common.Color, brightness uint8) error {
	ret := _m.Called(color, brightness)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.Color, uint8) error); ok {
		r0 = rf(color, brightness)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
func (_m *Light) SetRGBExact(color common.Color) error {
	ret := _m.Called(color)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.Color) error); ok {
		r0 = rf(color)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
func (_m *Light) SetRGBColor(color common.Color) error {
	ret := _m.Called(color)

	var r0 error
	if rf, ok := ret.Get(0).(func(common.Color) error); ok {
		r0 = rf(color)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
func (_m *Light) SetRGBBrightness(brightness uint8) error {
	ret := _m.Called(brightness)

	var r0 error
	if rf, ok := ret.Get(0).(func(uint8) error); ok {
		r0 = rf(brightness)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
func (_m *Light) RGBColor() common.Color {
	ret := _m.Called()

	var r0 common.Color
	if rf, ok := ret.Get(0).(func() common.Color); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Color)
	}

	return r0
}
func (_m *Light) RGBExact() common.Color {
	ret := _m.Called()

	var r0 common.Color
	if rf, ok := ret.Get(0).(func() common.Color); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Color)
	}

	return r0
}
func (_m *Light) RGBBrightness() uint8 {
	ret := _m.Called()

	var r0 uint8
	if rf, ok := ret.Get(0).(func() uint8); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(uint8)
	}

	return r0
}
func (_m *Light) SetCCT(kelvin uint16, brightness uint8) error {
	ret := _m.Called(kelvin, brightness)

	var r0 error
	if rf, ok := ret.Get(0).(func(uint16, uint8) error); ok {
		r0 = rf(kelvin, brightness)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
func (_m *Light) SetCCTTemperature(kelvin uint16) error {
	ret := _m.Called(kelvin)

	var r0 error
	if rf, ok := ret.Get(0).(func(uint16) error); ok {
		r0 = rf(kelvin)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
func (_m *Light) SetCCTBrightness(brightness uint8) error {
	ret := _m.Called(brightness)

	var r0 error
	if rf, ok := ret.Get(0).(func(uint8) error); ok {
		r0 = rf(brightness)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
func (_m *Light) CCTTemperature() uint16 {
	ret := _m.Called()

	var r0 uint16
	if rf, ok := ret.Get(0).(func() uint16); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(uint16)
	}

	return r0
}
func (_m *Light) CCTBrightness() uint8 {
	ret := _m.Called()

	var r0 uint8
	if rf, ok := ret.Get(0).(func() uint8); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(uint8)
	}

	return r0
}
