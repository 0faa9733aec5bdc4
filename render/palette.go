package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/trail-sketch/config"
)

// Palette holds the fixed colors of the canvas
type Palette struct {
	Background colorful.Color
	Trail      colorful.Color
	Band       colorful.Color
}

// NewPalette parses configured hex colors
func NewPalette(cfg config.ColorsConfig) (Palette, error) {
	var p Palette
	for _, c := range []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"background", cfg.Background, &p.Background},
		{"trail", cfg.Trail, &p.Trail},
		{"band", cfg.Band, &p.Band},
	} {
		col, err := colorful.Hex(c.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", c.name, err)
		}
		*c.dst = col
	}
	return p, nil
}

// Darken reduces HSL lightness by amount (0.25 = 25% darker)
func Darken(c colorful.Color, amount float64) colorful.Color {
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s, l*(1-amount)).Clamped()
}

// Fade blends from the background toward c; alpha 0 is invisible, 1 is opaque
func Fade(bg, c colorful.Color, alpha float64) colorful.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return bg.BlendRgb(c, alpha).Clamped()
}

// ToTcell converts to a 24-bit terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
