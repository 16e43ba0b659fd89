package device

import (
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdf/golednet/common"
	"github.com/pdf/golednet/protocol/lednet/packet"
)

// fakeController emulates a LEDNET controller on a loopback TCP listener.
// It keeps a register block and answers frames the way real hardware does:
// power commands are echoed, channel writes are silent, state queries return
// the encoded registers.
type fakeController struct {
	listener net.Listener
	regs     packet.State
	sync.Mutex
}

func newFakeController(t *testing.T) *fakeController {
	t.Helper()

	listener, err := net.Listen(`tcp`, `127.0.0.1:0`)
	require.NoError(t, err)

	fc := &fakeController{listener: listener}
	go fc.serve()
	t.Cleanup(func() { _ = listener.Close() })

	return fc
}

func (fc *fakeController) addr() *net.TCPAddr {
	return fc.listener.Addr().(*net.TCPAddr)
}

func (fc *fakeController) state() packet.State {
	fc.Lock()
	defer fc.Unlock()
	return fc.regs
}

func (fc *fakeController) setState(s packet.State) {
	fc.Lock()
	fc.regs = s
	fc.Unlock()
}

// frameLen returns the total request frame length for an opcode
func frameLen(op byte) int {
	switch op {
	case packet.OpSetChannels:
		return 9
	default:
		// OpSetPower and OpState
		return 4
	}
}

func (fc *fakeController) serve() {
	for {
		conn, err := fc.listener.Accept()
		if err != nil {
			return
		}
		go fc.handle(conn)
	}
}

func (fc *fakeController) handle(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	op := make([]byte, 1)
	for {
		if _, err := io.ReadFull(conn, op); err != nil {
			return
		}
		rest := make([]byte, frameLen(op[0])-1)
		if _, err := io.ReadFull(conn, rest); err != nil {
			return
		}
		frame := append(op[:1:1], rest...)
		if packet.Checksum(frame[:len(frame)-1]) != frame[len(frame)-1] {
			return
		}

		switch frame[0] {
		case packet.OpSetPower:
			fc.Lock()
			fc.regs.Power = frame[1] == packet.PowerOn
			fc.Unlock()
			if _, err := conn.Write(packet.PowerAck(frame[1] == packet.PowerOn)); err != nil {
				return
			}

		case packet.OpSetChannels:
			fc.Lock()
			if frame[6]&packet.MaskWhite == 0 {
				fc.regs.R, fc.regs.G, fc.regs.B = frame[1], frame[2], frame[3]
			}
			if frame[6]&packet.MaskColor == 0 {
				fc.regs.Warm, fc.regs.Cold = frame[4], frame[5]
			}
			fc.Unlock()

		case packet.OpState:
			fc.Lock()
			resp := packet.EncodeState(fc.regs)
			fc.Unlock()
			if _, err := conn.Write(resp); err != nil {
				return
			}
		}
	}
}

func testDevice(fc *fakeController) *Device {
	timeout := 500 * time.Millisecond
	return New(fc.addr(), `HF-LPB100-ZJ200`, &timeout)
}

func TestDeviceIdentity(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	assert.Equal(t, fc.addr().String(), dev.ID())
	assert.Equal(t, uint16(fc.addr().Port), dev.Port())
	assert.Equal(t, `LEDNET:HF-LPB100-ZJ200`, dev.Name())

	anon := New(fc.addr(), ``, nil)
	assert.Equal(t, `LEDNET`, anon.Name())
}

func TestSetPower(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	require.NoError(t, dev.SetPower(true))
	assert.True(t, fc.state().Power)
	assert.True(t, dev.Power())

	require.NoError(t, dev.SetPower(false))
	assert.False(t, fc.state().Power)
	assert.False(t, dev.Power())
}

func TestRefresh(t *testing.T) {
	fc := newFakeController(t)
	fc.setState(packet.State{Power: true, R: 255, G: 135, B: 30})
	dev := testDevice(fc)

	require.NoError(t, dev.Refresh())
	state := dev.State()
	assert.True(t, state.Power)
	assert.Equal(t, common.ModeColor, state.Mode)
	assert.Equal(t, common.RGBColor{R: 255, G: 135, B: 30}, state.Color)
	assert.Equal(t, uint8(100), state.ColorBrightness)
}

func TestSetRGBExact(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	require.NoError(t, dev.SetRGBExact(common.RGBColor{R: 128, G: 64}))
	regs := fc.state()
	assert.Equal(t, uint8(128), regs.R)
	assert.Equal(t, uint8(64), regs.G)
	assert.Equal(t, uint8(0), regs.B)
	// color writes must not disturb the white registers
	assert.Equal(t, uint8(0), regs.Warm)
	assert.Equal(t, uint8(0), regs.Cold)

	assert.Equal(t, common.RGBColor{R: 128, G: 64}, dev.State().Color)
}

func TestSetRGBScalesBrightness(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	require.NoError(t, dev.SetRGB(common.RGBColor{R: 255}, 50))
	regs := fc.state()
	assert.Equal(t, uint8(128), regs.R)
	assert.Equal(t, uint8(0), regs.G)
	assert.Equal(t, uint8(0), regs.B)
}

func TestSetRGBBrightnessKeepsHue(t *testing.T) {
	fc := newFakeController(t)
	fc.setState(packet.State{Power: true, R: 255})
	dev := testDevice(fc)

	require.NoError(t, dev.SetRGBBrightness(25))
	regs := fc.state()
	assert.Equal(t, uint8(64), regs.R)
	assert.Equal(t, uint8(0), regs.G)
	assert.Equal(t, uint8(0), regs.B)
	assert.Equal(t, uint8(25), dev.RGBBrightness())
}

func TestSetCCT(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	require.NoError(t, dev.SetCCT(2800, 100))
	regs := fc.state()
	assert.Equal(t, uint8(255), regs.Warm)
	assert.Equal(t, uint8(0), regs.Cold)
	// white writes must not disturb the color registers
	assert.Equal(t, uint8(0), regs.R)

	state := dev.State()
	assert.Equal(t, common.ModeWhite, state.Mode)
	assert.Equal(t, uint16(2800), state.Kelvin)
	assert.Equal(t, uint8(100), state.WhiteBrightness)
}

func TestSetCCTBrightnessScalesRegisters(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	require.NoError(t, dev.SetCCT(2800, 50))
	regs := fc.state()
	assert.Equal(t, uint8(127), regs.Warm)
	assert.Equal(t, uint8(0), regs.Cold)
	assert.Equal(t, uint8(50), dev.CCTBrightness())
	assert.Equal(t, uint16(2800), dev.CCTTemperature())
}

func TestSetCCTBrightnessKeepsTemperature(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	require.NoError(t, dev.SetCCT(2800, 100))
	require.NoError(t, dev.SetCCTBrightness(80))

	state := dev.State()
	assert.Equal(t, uint16(2800), state.Kelvin)
	assert.Equal(t, uint8(80), state.WhiteBrightness)
}

func TestSetRGBCCT(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	require.NoError(t, dev.SetRGBCCT(common.RGBColor{B: 255}, 6500))
	regs := fc.state()
	assert.Equal(t, uint8(255), regs.B)
	assert.Equal(t, uint8(255), regs.Cold)
}

func TestBrightnessValidation(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	for _, err := range []error{
		dev.SetRGB(common.RGBColor{R: 255}, 101),
		dev.SetRGBBrightness(101),
		dev.SetCCT(2800, 101),
		dev.SetCCTBrightness(101),
	} {
		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, `brightness`, verr.Field)
	}
}

func TestUnreachableDevice(t *testing.T) {
	// Grab a port and close it again so nothing is listening
	listener, err := net.Listen(`tcp`, `127.0.0.1:0`)
	require.NoError(t, err)
	addr := listener.Addr().(*net.TCPAddr)
	require.NoError(t, listener.Close())

	timeout := 200 * time.Millisecond
	dev := New(addr, ``, &timeout)

	err = dev.Refresh()
	var uerr *common.UnreachableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, dev.ID(), uerr.Addr)
}

func TestTimeout(t *testing.T) {
	// A listener that accepts but never answers
	listener, err := net.Listen(`tcp`, `127.0.0.1:0`)
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			defer func() { _ = conn.Close() }()
		}
	}()

	timeout := 100 * time.Millisecond
	dev := New(listener.Addr().(*net.TCPAddr), ``, &timeout)

	err = dev.Refresh()
	var uerr *common.UnreachableError
	require.ErrorAs(t, err, &uerr)
	assert.True(t, errors.Is(uerr.Err, common.ErrTimeout))
}

func TestRefreshPublishesEvents(t *testing.T) {
	fc := newFakeController(t)
	dev := testDevice(fc)

	sub, err := dev.NewSubscription()
	require.NoError(t, err)

	fc.setState(packet.State{Power: true, R: 255})
	require.NoError(t, dev.Refresh())

	var sawPower, sawColor bool
	for i := 0; i < 2; i++ {
		select {
		case event := <-sub.Events():
			switch e := event.(type) {
			case common.EventUpdatePower:
				sawPower = e.Power
			case common.EventUpdateColor:
				sawColor = e.Color == common.RGBColor{R: 255}
			}
		case <-time.After(time.Second):
			t.Fatal(`timed out waiting for events`)
		}
	}
	assert.True(t, sawPower)
	assert.True(t, sawColor)

	require.NoError(t, sub.Close())
	assert.Equal(t, common.ErrNotFound, dev.CloseSubscription(sub))
}

func TestKelvinMapping(t *testing.T) {
	tests := []struct {
		kelvin     uint16
		warm, cold uint8
	}{
		{2800, 255, 0},
		{6500, 0, 255},
		// below and above the range clamp
		{1000, 255, 0},
		{40000, 0, 255},
	}

	for _, tt := range tests {
		warm, cold := kelvinToWarmCold(tt.kelvin)
		assert.Equal(t, tt.warm, warm, `warm at %dK`, tt.kelvin)
		assert.Equal(t, tt.cold, cold, `cold at %dK`, tt.kelvin)
	}
}

func TestKelvinRoundTrip(t *testing.T) {
	// The mapping is lossy, but must invert to within register resolution
	for k := uint16(MinKelvin); k <= MaxKelvin; k += 100 {
		warm, cold := kelvinToWarmCold(k)
		got := warmColdToKelvin(warm, cold)
		assert.InDelta(t, float64(k), float64(got), kelvinSpan/0xff+1, `%dK`, k)
	}

	// Inactive white channel maps to zero
	assert.Equal(t, uint16(0), warmColdToKelvin(0, 0))

	// Brightness scaling must not shift the temperature
	full := warmColdToKelvin(200, 55)
	half := warmColdToKelvin(100, 27)
	assert.InDelta(t, float64(full), float64(half), kelvinSpan/0xff+1)
}
