package draft

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an entity color: either one of the symbolic by-layer/by-block
// placeholders, an indexed color from the classic 1..255 palette, or a 24-bit
// true color.
type Color struct {
	index     int
	r, g, b   uint8
	trueColor bool
}

// Symbolic palette indices.
const (
	colorByBlock = 0
	colorByLayer = 256
)

// ColorByLayer returns the placeholder color resolved against the entity's
// layer.
func ColorByLayer() Color {
	return Color{index: colorByLayer}
}

// ColorByBlock returns the placeholder color resolved against the owning
// block reference.
func ColorByBlock() Color {
	return Color{index: colorByBlock}
}

// NewColorIndex returns an indexed color. The index must be in [1, 255].
func NewColorIndex(index int) (Color, error) {
	if index < 1 || index > 255 {
		return Color{}, fmt.Errorf("color index %d outside [1, 255]", index)
	}
	return Color{index: index}, nil
}

// NewColorRGB returns a 24-bit true color.
func NewColorRGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, trueColor: true, index: nearestIndex(r, g, b)}
}

// IsByLayer reports whether the color resolves against the entity's layer.
func (c Color) IsByLayer() bool { return !c.trueColor && c.index == colorByLayer }

// IsByBlock reports whether the color resolves against the owning block.
func (c Color) IsByBlock() bool { return !c.trueColor && c.index == colorByBlock }

// IsTrueColor reports whether the color carries explicit RGB channels.
func (c Color) IsTrueColor() bool { return c.trueColor }

// Index returns the palette index, which for a true color is the nearest
// palette entry.
func (c Color) Index() int { return c.index }

// RGB returns the color's channels. Symbolic colors report the palette entry
// of their index; by-layer and by-block report white.
func (c Color) RGB() (r, g, b uint8) {
	if c.trueColor {
		return c.r, c.g, c.b
	}
	if c.index < 1 || c.index > 255 {
		return 255, 255, 255
	}
	e := aciPalette[c.index]
	return e[0], e[1], e[2]
}

func (c Color) String() string {
	switch {
	case c.trueColor:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	case c.index == colorByLayer:
		return "ByLayer"
	case c.index == colorByBlock:
		return "ByBlock"
	default:
		return fmt.Sprintf("index %d", c.index)
	}
}

// Colorful converts the color to a colorful.Color for blending and distance
// computations.
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Blend mixes two colors in RGB space, returning a true color. t runs from 0
// (pure c) to 1 (pure o).
func (c Color) Blend(o Color, t float64) Color {
	mixed := c.Colorful().BlendRgb(o.Colorful(), t).Clamped()
	r, g, b := mixed.RGB255()
	return NewColorRGB(r, g, b)
}

// nearestIndex finds the palette index closest to the given channels by RGB
// distance.
func nearestIndex(r, g, b uint8) int {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 7, 2.0
	for i := 1; i < len(aciPalette); i++ {
		e := aciPalette[i]
		candidate := colorful.Color{R: float64(e[0]) / 255, G: float64(e[1]) / 255, B: float64(e[2]) / 255}
		if d := target.DistanceRgb(candidate); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// aciPalette holds the classic indexed palette. Indices 1..9 are the named
// colors; the body of the table repeats ten hue bands at five brightness
// levels each, and 250..255 are grays. Index 0 is unused (ByBlock).
var aciPalette = func() [256][3]uint8 {
	var p [256][3]uint8
	named := [][3]uint8{
		{0, 0, 0},       // 0: placeholder
		{255, 0, 0},     // 1: red
		{255, 255, 0},   // 2: yellow
		{0, 255, 0},     // 3: green
		{0, 255, 255},   // 4: cyan
		{0, 0, 255},     // 5: blue
		{255, 0, 255},   // 6: magenta
		{255, 255, 255}, // 7: white
		{128, 128, 128}, // 8: dark gray
		{192, 192, 192}, // 9: light gray
	}
	copy(p[:], named)
	// Hue bands 10..249: 24 hues, 5 brightness levels, full and half
	// saturation alternating.
	for i := 10; i < 250; i++ {
		hue := float64((i-10)/10) * 15
		level := (i - 10) % 10
		value := 1.0 - float64(level/2)*0.175
		saturation := 1.0
		if level%2 == 1 {
			saturation = 0.5
		}
		r, g, b := colorful.Hsv(hue, saturation, value).Clamped().RGB255()
		p[i] = [3]uint8{r, g, b}
	}
	for i := 250; i < 256; i++ {
		v := uint8(51 * (i - 250 + 1))
		p[i] = [3]uint8{v, v, v}
	}
	return p
}()
