package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is the interface satisfied by every color representation understood
// by golednet.  A Color always knows how to render itself in its own
// notation, and how to convert itself to the canonical RGB form used on the
// wire.  Conversions are deterministic, and idempotent under a full round
// trip through RGB, but may lose precision (CMYK and Kelvin in particular).
type Color interface {
	// RGB returns the canonical RGB rendition of the color
	RGB() RGBColor
	// String renders the color in its own notation
	String() string
}

// RGBColor is a color expressed as 8-bit red, green and blue components.
// This is the canonical form - it is what actually gets written to the
// device's color channel registers.
type RGBColor struct {
	R, G, B uint8
}

// RGB returns the color unchanged
func (c RGBColor) RGB() RGBColor {
	return c
}

func (c RGBColor) String() string {
	return fmt.Sprintf(`rgb(%d, %d, %d)`, c.R, c.G, c.B)
}

// CMYKColor is a color expressed as cyan/magenta/yellow/key percentages
// (0-100).  CMYK exists for parsing and display only, it is converted to RGB
// before anything touches the network.
type CMYKColor struct {
	C, M, Y, K uint8
}

// RGB converts via the standard naive formula.  The conversion is lossy but
// deterministic, and black/white map exactly.
func (c CMYKColor) RGB() RGBColor {
	cf := float64(clampPct(c.C)) / 100
	mf := float64(clampPct(c.M)) / 100
	yf := float64(clampPct(c.Y)) / 100
	kf := float64(clampPct(c.K)) / 100
	return RGBColor{
		R: uint8(math.Round(255 * (1 - cf) * (1 - kf))),
		G: uint8(math.Round(255 * (1 - mf) * (1 - kf))),
		B: uint8(math.Round(255 * (1 - yf) * (1 - kf))),
	}
}

func (c CMYKColor) String() string {
	return fmt.Sprintf(`cmyk(%d%%, %d%%, %d%%, %d%%)`, c.C, c.M, c.Y, c.K)
}

// HSVColor is a color expressed as hue in degrees (0-360) plus saturation
// and value percentages (0-100).
type HSVColor struct {
	H    uint16
	S, V uint8
}

// RGB converts using the standard sextant formula
func (c HSVColor) RGB() RGBColor {
	s := float64(clampPct(c.S)) / 100
	v := float64(clampPct(c.V)) / 100

	if s == 0 {
		grey := uint8(math.Round(v * 255))
		return RGBColor{R: grey, G: grey, B: grey}
	}

	h := float64(c.H%360) / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var rf, gf, bf float64
	switch int(i) {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}

	return RGBColor{
		R: uint8(math.Round(rf * 255)),
		G: uint8(math.Round(gf * 255)),
		B: uint8(math.Round(bf * 255)),
	}
}

func (c HSVColor) String() string {
	return fmt.Sprintf(`hsv(%d, %d%%, %d%%)`, c.H, c.S, c.V)
}

// Temperature is a correlated color temperature in Kelvin
type Temperature uint16

// Bounds for the display conversion.  Devices narrow this range further, see
// the device package.
const (
	minDisplayKelvin = 1000
	maxDisplayKelvin = 40000
)

// RGB approximates the blackbody color at the given temperature using Tanner
// Helland's curve (tannerhelland.com/4435).  The approximation is monotonic:
// raising the temperature never decreases the blue component and never
// increases the red one.  Device-measured output may differ slightly, which
// is a property of the curve, not a defect.
func (c Temperature) RGB() RGBColor {
	k := float64(c)
	if k < minDisplayKelvin {
		k = minDisplayKelvin
	}
	if k > maxDisplayKelvin {
		k = maxDisplayKelvin
	}
	temp := k / 100

	var rf, gf, bf float64

	if temp <= 66 {
		rf = 255
	} else {
		rf = 329.698727446 * math.Pow(temp-60, -0.1332047592)
	}

	if temp <= 66 {
		gf = 99.4708025861*math.Log(temp) - 161.1195681661
	} else {
		gf = 288.1221695283 * math.Pow(temp-60, -0.0755148492)
	}

	if temp >= 66 {
		bf = 255
	} else if temp <= 19 {
		bf = 0
	} else {
		bf = 138.5177312231*math.Log(temp-10) - 305.0447927307
	}

	return RGBColor{
		R: uint8(clampFloat(rf, 0, 255)),
		G: uint8(clampFloat(gf, 0, 255)),
		B: uint8(clampFloat(bf, 0, 255)),
	}
}

func (c Temperature) String() string {
	return fmt.Sprintf(`%dK`, uint16(c))
}

// NamedColor is a color selected from the fixed name table by a symbolic
// name like `green` or `white`
type NamedColor struct {
	Name  string
	Value RGBColor
}

// RGB returns the resolved table entry
func (c NamedColor) RGB() RGBColor {
	return c.Value
}

func (c NamedColor) String() string {
	return c.Name
}

// RGBToHSV converts an RGB color to HSV (hue 0-360, saturation and value
// 0-100).  Grey inputs yield zero hue and saturation.
func RGBToHSV(c RGBColor) HSVColor {
	rf := float64(c.R) / 255
	gf := float64(c.G) / 255
	bf := float64(c.B) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	out := HSVColor{V: uint8(math.Round(max * 100))}
	if max == 0 || delta == 0 {
		return out
	}
	out.S = uint8(math.Round(delta / max * 100))

	var hf float64
	switch {
	case rf == max:
		hf = (gf - bf) / delta
		if gf < bf {
			hf += 6
		}
	case gf == max:
		hf = 2 + (bf-rf)/delta
	default:
		hf = 4 + (rf-gf)/delta
	}
	out.H = uint16(math.Round(hf*60)) % 360

	return out
}

// RGBToCMYK converts an RGB color to CMYK percentages
func RGBToCMYK(c RGBColor) CMYKColor {
	rf := float64(c.R) / 255
	gf := float64(c.G) / 255
	bf := float64(c.B) / 255

	max := math.Max(rf, math.Max(gf, bf))
	if max == 0 {
		return CMYKColor{K: 100}
	}

	return CMYKColor{
		C: uint8(math.Round((max - rf) / max * 100)),
		M: uint8(math.Round((max - gf) / max * 100)),
		Y: uint8(math.Round((max - bf) / max * 100)),
		K: uint8(math.Round((1 - max) * 100)),
	}
}

// ParseColor parses a case-insensitive textual color.  Accepted forms are
// `rgb(r, g, b)`, `cmyk(c%, m%, y%, k%)`, `hsv(h, s%, v%)` and any name from
// the fixed name table.  Percent signs are optional on percentage
// components.  Out of range components and unrecognized syntax fail with a
// *ParseError.
func ParseColor(text string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.HasPrefix(s, `rgb(`) && strings.HasSuffix(s, `)`):
		vals, err := parseComponents(text, s[4:len(s)-1], []int{255, 255, 255})
		if err != nil {
			return nil, err
		}
		return RGBColor{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2])}, nil

	case strings.HasPrefix(s, `cmyk(`) && strings.HasSuffix(s, `)`):
		vals, err := parseComponents(text, s[5:len(s)-1], []int{100, 100, 100, 100})
		if err != nil {
			return nil, err
		}
		return CMYKColor{C: uint8(vals[0]), M: uint8(vals[1]), Y: uint8(vals[2]), K: uint8(vals[3])}, nil

	case strings.HasPrefix(s, `hsv(`) && strings.HasSuffix(s, `)`):
		vals, err := parseComponents(text, s[4:len(s)-1], []int{360, 100, 100})
		if err != nil {
			return nil, err
		}
		return HSVColor{H: uint16(vals[0]), S: uint8(vals[1]), V: uint8(vals[2])}, nil

	default:
		if rgb, ok := Names[s]; ok {
			return NamedColor{Name: s, Value: rgb}, nil
		}
		return nil, &ParseError{Input: text, Reason: `unrecognized color`}
	}
}

// ParseKelvin parses a color temperature given as a bare integer with an
// optional trailing `K`
func ParseKelvin(text string) (Temperature, error) {
	s := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(text)), `k`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: text, Reason: `not a temperature in Kelvin`}
	}
	if v < minDisplayKelvin || v > maxDisplayKelvin {
		return 0, &ParseError{
			Input:  text,
			Reason: fmt.Sprintf(`temperature out of range [%d, %d]`, minDisplayKelvin, maxDisplayKelvin),
		}
	}
	return Temperature(v), nil
}

func parseComponents(input, inner string, max []int) ([]int, error) {
	fields := strings.Split(inner, `,`)
	if len(fields) != len(max) {
		return nil, &ParseError{
			Input:  input,
			Reason: fmt.Sprintf(`expected %d components, got %d`, len(max), len(fields)),
		}
	}

	vals := make([]int, len(fields))
	for i, f := range fields {
		f = strings.TrimSuffix(strings.TrimSpace(f), `%`)
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{Input: input, Reason: fmt.Sprintf(`component %q is not an integer`, f)}
		}
		if v < 0 || v > max[i] {
			return nil, &ParseError{Input: input, Reason: fmt.Sprintf(`component %d out of range [0, %d]`, v, max[i])}
		}
		vals[i] = v
	}

	return vals, nil
}

func clampPct(v uint8) uint8 {
	if v > 100 {
		return 100
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
