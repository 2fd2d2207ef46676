package gbase

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

const StatusBarH = 28

// ---- Styles (palettes) ----

// Palette is a board color theme. The config file may override any field.
type Palette struct {
	Bg          color.RGBA
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	Highlight   color.RGBA
	StatusText  color.RGBA
	ToastFill   color.RGBA
	ToastStroke color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:          color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	LightSquare: color.RGBA{240, 217, 181, 0xff},
	DarkSquare:  color.RGBA{181, 136, 99, 0xff},
	Highlight:   color.RGBA{150, 232, 125, 0xff},
	StatusText:  color.RGBA{0x22, 0x22, 0x22, 0xff},
	ToastFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ToastStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
}

var DarkPalette = Palette{
	Bg:          color.RGBA{0x12, 0x12, 0x12, 0xff},
	LightSquare: color.RGBA{0xb0, 0xb6, 0xbd, 0xff},
	DarkSquare:  color.RGBA{0x4b, 0x5a, 0x6b, 0xff},
	Highlight:   color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	StatusText:  color.RGBA{0xee, 0xee, 0xee, 0xff},
	ToastFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ToastStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
}

// ParseHexColor accepts "#rgb", "#rrggbb" and "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 3:
		_, err = fmt.Sscanf(s, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R, c.G, c.B = c.R*17, c.G*17, c.B*17
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("error parse color %q: %v", s, err)
	}
	return c, nil
}

func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ---- Toast ----

// Toast is a short status message that fades out. Drive it with Update
// every frame.
type Toast struct {
	Text    string
	Alpha   float64 // current opacity 0..1
	target  float64
	holdFor float64 // seconds left at full opacity
	Speed   float64
}

func (t *Toast) Show(text string, hold float64) {
	t.Text = text
	t.target = 1
	t.holdFor = hold
}

func (t *Toast) Visible() bool {
	return t.Alpha > 0.01
}

// Update with dt seconds approaches the target opacity
func (t *Toast) Update(dt float64) {
	if t.Speed <= 0 {
		t.Speed = 8.0
	}
	if t.target == 1 && t.Alpha > 0.99 {
		t.holdFor -= dt
		if t.holdFor <= 0 {
			t.target = 0
		}
	}
	k := 1.0 - math.Exp(-t.Speed*dt)
	t.Alpha = t.Alpha*(1.0-k) + t.target*k
}
