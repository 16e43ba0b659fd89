package device

import "math"

// Correlated color temperature range the LEDNET firmware maps onto its
// warm/cold white registers.  Values outside the range are clamped, matching
// the firmware behaviour.
const (
	MinKelvin = 2800
	MaxKelvin = 6500
)

const kelvinSpan = float64(MaxKelvin - MinKelvin)

// kelvinToWarmCold converts a temperature in Kelvin to the two-byte
// warm/cold register representation
func kelvinToWarmCold(kelvin uint16) (warm, cold uint8) {
	k := float64(clampKelvin(kelvin) - MinKelvin)
	warm = uint8(math.Ceil(0xff * (1 - k/kelvinSpan)))
	cold = uint8(math.Ceil(0xff * k / kelvinSpan))
	return warm, cold
}

// warmColdToKelvin converts the warm/cold register representation back to
// Kelvin.  Both registers zero means the white channel is inactive and maps
// to zero.  The registers encode brightness as well as temperature, so the
// warm/cold ratio is rescaled to full intensity before inverting.
func warmColdToKelvin(warm, cold uint8) uint16 {
	if warm == 0 && cold == 0 {
		return 0
	}
	w := float64(warm)
	wc := w + float64(cold)
	w += (0xff - wc) * (w / wc)
	return uint16((0xff-w)*kelvinSpan/0xff + MinKelvin)
}

func clampKelvin(k uint16) uint16 {
	if k < MinKelvin {
		return MinKelvin
	}
	if k > MaxKelvin {
		return MaxKelvin
	}
	return k
}
