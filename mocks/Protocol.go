package mocks

import "github.com/pdf/golednet/common"
import "github.com/stretchr/testify/mock"

type Protocol struct {
	mock.Mock
}

// SetClient provides a mock function with given fields: client
func (_m *Protocol) SetClient(client common.Client) {
	_m.Called(client)
}

// Discover provides a mock function with given fields:
func (_m *Protocol) Discover() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Target provides a mock function with given fields: host
func (_m *Protocol) Target(host string) (common.Device, error) {
	ret := _m.Called(host)

	var r0 common.Device
	if rf, ok := ret.Get(0).(func(string) common.Device); ok {
		r0 = rf(host)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(common.Device)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(host)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Close provides a mock function with given fields:
func (_m *Protocol) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
