// Package packet implements framing for the LEDNET binary protocol.
//
// Frames are fixed-schema byte sequences: an opcode, a payload whose length
// is a constant of the opcode, and a trailing checksum computed as the sum
// of all preceding bytes modulo 256.  There is no length field and no
// versioning; unknown opcodes are rejected, never guessed at.
package packet

import (
	"fmt"
	"net"
	"strings"

	"github.com/pdf/golednet/common"
)

// Opcodes
const (
	// OpSetPower switches the controller output on or off
	OpSetPower byte = 0x71
	// OpSetChannels writes the color and/or white channel registers
	OpSetChannels byte = 0x31
	// OpState queries the controller state
	OpState byte = 0x81
)

// Frame words
const (
	// Terminator closes every request frame
	Terminator byte = 0x0f
	// PowerOn and PowerOff are the OpSetPower arguments
	PowerOn  byte = 0x23
	PowerOff byte = 0x24
	// MaskColor selects the RGB registers in an OpSetChannels frame,
	// MaskWhite the warm/cold white registers, MaskBoth all five
	MaskColor byte = 0xf0
	MaskWhite byte = 0x0f
	MaskBoth  byte = MaskColor & MaskWhite
)

// StateLen is the fixed length of an OpState response frame
const StateLen = 14

// Checksum returns the sum of b modulo 256
func Checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return sum
}

// Finalize returns words with their checksum appended, forming a complete
// frame
func Finalize(words ...byte) []byte {
	return append(words, Checksum(words))
}

// StateQuery returns the fixed frame that asks a controller for its state.
// The 0x8a 0x8b arguments are carried verbatim from the reference captures;
// their meaning is undocumented.
func StateQuery() []byte {
	return Finalize(OpState, 0x8a, 0x8b)
}

// SetPower returns the frame switching the controller output on or off
func SetPower(on bool) []byte {
	word := PowerOff
	if on {
		word = PowerOn
	}
	return Finalize(OpSetPower, word, Terminator)
}

// PowerAck returns the echo frame a controller sends back for SetPower
func PowerAck(on bool) []byte {
	word := PowerOff
	if on {
		word = PowerOn
	}
	return Finalize(Terminator, OpSetPower, word)
}

// SetChannels returns the frame writing the channel registers selected by
// mask.  The controller does not acknowledge this frame.
func SetChannels(r, g, b, warm, cold, mask byte) []byte {
	return Finalize(OpSetChannels, r, g, b, warm, cold, mask, Terminator)
}

// State is the decoded register block of an OpState response
type State struct {
	Power      bool
	R, G, B    uint8
	Warm, Cold uint8
}

// DecodeState validates and decodes an OpState response frame.  It fails
// with common.ErrTruncated when buf is shorter than StateLen,
// common.ErrUnknownOpcode when the leading byte is not OpState, and
// common.ErrBadChecksum when the trailing byte does not match the recomputed
// checksum.
func DecodeState(buf []byte) (State, error) {
	if len(buf) < StateLen {
		return State{}, common.ErrTruncated
	}
	buf = buf[:StateLen]
	if buf[0] != OpState {
		return State{}, common.ErrUnknownOpcode
	}
	if Checksum(buf[:StateLen-1]) != buf[StateLen-1] {
		return State{}, common.ErrBadChecksum
	}

	return State{
		Power: buf[2] == PowerOn,
		R:     buf[6],
		G:     buf[7],
		B:     buf[8],
		Warm:  buf[9],
		Cold:  buf[11],
	}, nil
}

// EncodeState builds an OpState response frame from s.  Real controllers
// produce these; golednet only needs it for simulators and tests, so the
// bytes DecodeState ignores are filled with representative capture values.
func EncodeState(s State) []byte {
	power := PowerOff
	if s.Power {
		power = PowerOn
	}
	return Finalize(OpState, 0x04, power, 0x61, 0x21, 0x00, s.R, s.G, s.B, s.Warm, 0x04, s.Cold, 0x00)
}

// DiscoveryReply is the parsed form of a reply to the discovery probe
type DiscoveryReply struct {
	IP    net.IP
	MAC   string
	Model string
}

// ParseDiscoveryReply parses the `ip,mac,model` payload a WiFi module sends
// in response to the discovery probe, e.g.
// `192.168.1.212,F0FE6B5A6D68,HF-LPB100-ZJ200`.
func ParseDiscoveryReply(buf []byte) (DiscoveryReply, error) {
	text := strings.TrimSpace(string(buf))
	fields := strings.Split(text, `,`)
	if len(fields) != 3 {
		return DiscoveryReply{}, &common.ParseError{
			Input:  text,
			Reason: fmt.Sprintf(`expected 3 comma separated fields, got %d`, len(fields)),
		}
	}

	ip := net.ParseIP(strings.TrimSpace(fields[0]))
	if ip == nil {
		return DiscoveryReply{}, &common.ParseError{Input: text, Reason: `invalid IP address`}
	}

	return DiscoveryReply{
		IP:    ip,
		MAC:   strings.TrimSpace(fields[1]),
		Model: strings.TrimSpace(fields[2]),
	}, nil
}
