package renderer

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a true color or the terminal's default color.
type Color struct {
	R, G, B uint8
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex creates a color from "#RGB", "#RRGGBB", "RGB" or "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color length: %q", hex)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return fromColorful(c), nil
}

// colorFromChroma converts a chroma colour; unset colours become the default.
func colorFromChroma(c chroma.Colour) Color {
	if !c.IsSet() {
		return ColorDefault
	}
	return Color{R: c.Red(), G: c.Green(), B: c.Blue()}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// IsDark reports whether the color has a lightness below one half.
// The default color is treated as dark.
func (c Color) IsDark() bool {
	if c.Default {
		return true
	}
	l, _, _ := c.colorful().Lab()
	return l < 0.5
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if c.Default || other.Default {
		return c.Default == other.Default
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns "default" or the "#RRGGBB" form.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	return c.ToHex()
}

// ToHex returns the hex representation of the color.
func (c Color) ToHex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend mixes c toward other in Lab space.
// Amount 0.0 = c, 1.0 = other.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Default || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.colorful().BlendLab(other.colorful(), amount))
}

// Shade moves the color toward white when it is dark, toward black otherwise.
func (c Color) Shade(amount float64) Color {
	base := c
	if base.Default {
		base = ColorBlack
	}
	if base.IsDark() {
		return base.Blend(ColorWhite, amount)
	}
	return base.Blend(ColorBlack, amount)
}

// Contrast returns black or white, whichever is further from c in Lab space.
func (c Color) Contrast() Color {
	if c.Default {
		return ColorWhite
	}
	lab := c.colorful()
	if lab.DistanceLab(colorful.Color{}) > lab.DistanceLab(colorful.Color{R: 1, G: 1, B: 1}) {
		return ColorBlack
	}
	return ColorWhite
}
