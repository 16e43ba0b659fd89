package protocol

import (
	"net"
	"time"

	"github.com/pdf/golednet/common"
	"github.com/pdf/golednet/protocol/lednet/device"
	"github.com/pdf/golednet/protocol/lednet/packet"
	"github.com/pdf/golednet/protocol/lednet/shared"
)

// LedNet implements the Protocol interface for LEDNET/Magic Home WiFi
// controllers.  Discovery broadcasts a magic UDP probe and collects replies
// for a fixed window; control is unicast TCP per device.
type LedNet struct {
	// Port is the TCP control port devices are driven on, defaults to
	// shared.ControlPort
	Port int
	// DiscoveryPort is the UDP port probes are sent to, defaults to
	// shared.DiscoveryPort
	DiscoveryPort int
	// Window bounds how long a discovery sweep collects replies, defaults
	// to shared.DefaultDiscoveryWindow
	Window time.Duration
	// ProbeAddrs optionally overrides the probe destinations.  When empty,
	// the probe is broadcast on every broadcast-capable interface.
	ProbeAddrs []string

	client common.Client
}

// SetClient assigns the client that owns the protocol
func (p *LedNet) SetClient(client common.Client) {
	p.client = client
}

// Discover broadcasts the discovery probe and registers every supported
// device that replies before the window closes.  A sweep that finds no
// devices is not an error.
func (p *LedNet) Discover() error {
	if p.client == nil {
		return ErrNoClient
	}

	laddr := &net.UDPAddr{IP: net.IPv4zero, Port: p.discoveryPort()}
	if len(p.ProbeAddrs) > 0 {
		// Unicast probes get replies on our source port, no need to own
		// the well-known one
		laddr.Port = 0
	}
	conn, err := net.ListenUDP(`udp4`, laddr)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	dests, err := p.probeDestinations()
	if err != nil {
		return err
	}
	for _, dest := range dests {
		common.Log.Debugf("Sending discovery probe to %v\n", dest)
		if _, err := conn.WriteToUDP([]byte(shared.DiscoveryProbe), dest); err != nil {
			common.Log.Warnf("Failed sending discovery probe to %v: %v\n", dest, err)
		}
	}

	window := p.Window
	if window == 0 {
		window = shared.DefaultDiscoveryWindow
	}
	if err := conn.SetReadDeadline(time.Now().Add(window)); err != nil {
		return err
	}

	buf := make([]byte, 512)
	for {
		n, raddr, err := conn.ReadFromUDP(buf)
		if err != nil {
			if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
				return nil
			}
			return err
		}
		payload := buf[:n]
		if string(payload) == shared.DiscoveryProbe {
			// Our own broadcast looped back
			continue
		}

		reply, err := packet.ParseDiscoveryReply(payload)
		if err != nil {
			common.Log.Debugf("Ignoring malformed discovery reply from %v: %v\n", raddr, err)
			continue
		}
		if !shared.Supported(reply.Model) {
			common.Log.Debugf("Ignoring unsupported module %v at %v\n", reply.Model, reply.IP)
			continue
		}

		dev := device.New(
			&net.TCPAddr{IP: raddr.IP, Port: p.controlPort()},
			reply.Model,
			p.client.GetTimeout(),
		)
		common.Log.Debugf("Discovered device %v (%v)\n", dev.ID(), reply.Model)
		if err := p.client.AddDevice(dev); err != nil {
			if err == common.ErrDuplicate {
				common.Log.Debugf("Device already known: %v\n", dev.ID())
				continue
			}
			return err
		}
	}
}

// Target registers a device at a known IP address without probing the
// network.  Reachability is not verified here, an unreachable target
// surfaces as an error on its first operation.
func (p *LedNet) Target(host string) (common.Device, error) {
	if p.client == nil {
		return nil, ErrNoClient
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return nil, &common.ParseError{Input: host, Reason: `invalid IP address`}
	}

	dev := device.New(
		&net.TCPAddr{IP: ip, Port: p.controlPort()},
		``,
		p.client.GetTimeout(),
	)
	if err := p.client.AddDevice(dev); err != nil {
		return nil, err
	}
	return dev, nil
}

// Close releases any resources held by the protocol
func (p *LedNet) Close() error {
	return nil
}

func (p *LedNet) controlPort() int {
	if p.Port != 0 {
		return p.Port
	}
	return shared.ControlPort
}

func (p *LedNet) discoveryPort() int {
	if p.DiscoveryPort != 0 {
		return p.DiscoveryPort
	}
	return shared.DiscoveryPort
}

// probeDestinations returns the addresses the discovery probe is sent to:
// the configured ProbeAddrs when set, otherwise the broadcast address of
// every up, broadcast-capable interface
func (p *LedNet) probeDestinations() ([]*net.UDPAddr, error) {
	if len(p.ProbeAddrs) > 0 {
		dests := make([]*net.UDPAddr, 0, len(p.ProbeAddrs))
		for _, addr := range p.ProbeAddrs {
			dest, err := net.ResolveUDPAddr(`udp4`, addr)
			if err != nil {
				return nil, err
			}
			dests = append(dests, dest)
		}
		return dests, nil
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var dests []*net.UDPAddr
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagBroadcast == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip4 := ipnet.IP.To4()
			if ip4 == nil {
				continue
			}
			bcast := make(net.IP, len(ip4))
			for i := range ip4 {
				bcast[i] = ip4[i] | ^ipnet.Mask[i]
			}
			dests = append(dests, &net.UDPAddr{IP: bcast, Port: p.discoveryPort()})
		}
	}
	if len(dests) == 0 {
		dests = append(dests, &net.UDPAddr{IP: net.IPv4bcast, Port: p.discoveryPort()})
	}
	return dests, nil
}
