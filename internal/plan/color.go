package plan

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// Pastel band used for every generated color.
const (
	pastelSaturation   = 100
	pastelLightnessMin = 70
	pastelLightnessMax = 100 // exclusive
)

// ColorMode selects how activity colors are produced.
type ColorMode string

const (
	// ColorsRandom draws fresh colors every session.
	ColorsRandom ColorMode = "random"
	// ColorsStable derives colors from activity names so they survive restarts.
	ColorsStable ColorMode = "stable"
)

// Valid returns true if the mode is a known value.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorsRandom, ColorsStable:
		return true
	default:
		return false
	}
}

// Color is an HSL triple. S and L are percentages.
type Color struct {
	H float64
	S float64
	L float64
}

func (c Color) colorful() colorful.Color {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped()
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// RGB returns 8-bit channels.
func (c Color) RGB() (r, g, b uint8) {
	return c.colorful().RGB255()
}

// String returns the CSS form, e.g. "hsl(212, 100%, 84%)".
func (c Color) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(c.H), int(c.S), int(c.L))
}

// GeneratePastelColors returns count random pastel colors: hue uniform in
// [0, 360), saturation 100%, lightness uniform in [70, 100).
// A nil rng uses the global source.
func GeneratePastelColors(count int, rng *rand.Rand) []Color {
	if count <= 0 {
		return []Color{}
	}
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	colors := make([]Color, 0, count)
	for i := 0; i < count; i++ {
		colors = append(colors, Color{
			H: float64(intN(360)),
			S: pastelSaturation,
			L: float64(pastelLightnessMin + intN(pastelLightnessMax-pastelLightnessMin)),
		})
	}
	return colors
}

// StableColors derives one pastel color per name from an FNV-1a hash.
// The same name always gets the same color.
func StableColors(names []string) []Color {
	colors := make([]Color, 0, len(names))
	for _, name := range names {
		h := fnv.New32a()
		_, _ = h.Write([]byte(name))
		sum := h.Sum32()
		colors = append(colors, Color{
			H: float64(sum % 360),
			S: pastelSaturation,
			L: float64(pastelLightnessMin + int((sum>>16)%(pastelLightnessMax-pastelLightnessMin))),
		})
	}
	return colors
}

// AssignColors picks the color sequence for names according to mode.
func AssignColors(mode ColorMode, names []string, rng *rand.Rand) []Color {
	if mode == ColorsStable {
		return StableColors(names)
	}
	return GeneratePastelColors(len(names), rng)
}
