// Package shared holds constants common to the LEDNET protocol packages.
package shared

import "time"

const (
	// ControlPort is the TCP port a controller listens on for command
	// frames
	ControlPort = 5577
	// DiscoveryPort is the UDP port used for the discovery probe and its
	// replies
	DiscoveryPort = 48899
	// DiscoveryProbe is the magic payload a controller's WiFi module
	// answers to
	DiscoveryProbe = `HF-A11ASSISTHREAD`
	// DefaultDiscoveryWindow bounds how long a discovery sweep collects
	// replies
	DefaultDiscoveryWindow = 2 * time.Second
	// FamilyName prefixes device names for this protocol family
	FamilyName = `LEDNET`
)

// SupportedModels lists the WiFi module identifiers this driver has been
// verified against.  Discovery replies from other modules are ignored.
var SupportedModels = []string{
	`HF-LPB100-ZJ200`,
}

// Supported reports whether model is a known-good module identifier
func Supported(model string) bool {
	for _, m := range SupportedModels {
		if m == model {
			return true
		}
	}
	return false
}
