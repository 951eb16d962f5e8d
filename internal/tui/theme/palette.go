package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Full        lipgloss.Color
	Warning     lipgloss.Color

	// EmptyCell fills grid cells no activity owns.
	EmptyCell lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnFull    lipgloss.Color
	TextOnWarning lipgloss.Color

	Modal ModalColors

	fg string
	bg string
}

// ModalColors holds the colors of the confirm and help modals.
type ModalColors struct {
	Bg     lipgloss.Color
	Border lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	emptyHex := blendColors(t.BgHighlight, t.Bg, 0.35)
	if IsLight(t.Bg) {
		emptyHex = blendColors(t.BgHighlight, "#000000", 0.04)
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Full:        lipgloss.Color(t.Full),
		Warning:     lipgloss.Color(t.Warning),

		EmptyCell: lipgloss.Color(emptyHex),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnFull:    lipgloss.Color(chooseTextColor(t.Full, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:     lipgloss.Color(orDefault(t.Modal.Bg, t.BgHighlight)),
			Border: lipgloss.Color(orDefault(t.Modal.Border, t.Accent)),
			Text:   lipgloss.Color(t.Fg),
			Muted:  lipgloss.Color(t.FgMuted),
		},

		fg: t.Fg,
		bg: t.Bg,
	}
}

// TextOn picks the theme foreground or background, whichever reads better
// on the given cell color.
func (p *Palette) TextOn(hex string) lipgloss.Color {
	return lipgloss.Color(chooseTextColor(hex, p.fg, p.bg))
}

// IsLight reports whether a background color is light.
func IsLight(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func chooseTextColor(bg, lightText, darkText string) string {
	lightContrast := contrastRatio(bg, lightText)
	darkContrast := contrastRatio(bg, darkText)
	if lightContrast >= darkContrast {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// relativeLuminance follows WCAG 2.x. Unparseable colors count as black.
func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	return 0.2126*srgbToLinear(c.R) + 0.7152*srgbToLinear(c.G) + 0.0722*srgbToLinear(c.B)
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// blendColors mixes b into a by ratio in [0, 1]. Invalid input returns a.
func blendColors(a, b string, ratio float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return a
	}
	ratio = math.Max(0, math.Min(1, ratio))
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
