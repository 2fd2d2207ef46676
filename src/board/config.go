package board

import (
	"image/color"
	"time"
)

type PieceStyle string

const (
	PieceStyleUnicode PieceStyle = "unicode"
	PieceStyleLetters PieceStyle = "letters"
)

// Config is the visual and behavioral setup of a BoardView.
type Config struct {
	BoardSize int

	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	HighlightColor color.RGBA

	ArrowColor  color.RGBA
	ArrowWidth  int
	CircleColor color.RGBA
	CircleWidth int

	ShowLegal   bool
	LegalColor  color.RGBA
	LegalWidth  int
	LegalRadius int

	ShowCoordinates bool
	AllowInput      bool
	AllowDragging   bool
	AllowDrawing    bool
	Flipped         bool

	Animation         bool
	AnimationFPS      int
	AnimationDuration time.Duration

	FontFamily string
	PieceStyle PieceStyle
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func DefaultConfig() Config {
	return Config{
		BoardSize:         480,
		LightSquare:       rgb(240, 217, 181),
		DarkSquare:        rgb(181, 136, 99),
		HighlightColor:    rgb(150, 232, 125),
		ArrowColor:        rgb(255, 0, 0),
		ArrowWidth:        3,
		CircleColor:       rgb(50, 50, 255),
		CircleWidth:       3,
		ShowLegal:         true,
		LegalColor:        rgb(50, 50, 50),
		LegalWidth:        5,
		LegalRadius:       7,
		ShowCoordinates:   true,
		AllowInput:        true,
		AllowDragging:     true,
		AllowDrawing:      true,
		Animation:         true,
		AnimationFPS:      60,
		AnimationDuration: 200 * time.Millisecond,
		FontFamily:        "Arial",
		PieceStyle:        PieceStyleUnicode,
	}
}

// normalize clamps values the widget cannot work with.
func (c *Config) normalize() {
	if c.BoardSize < 8 {
		c.BoardSize = 8
	}
	if c.AnimationFPS < 1 {
		c.AnimationFPS = 1
	}
	if c.AnimationDuration < 0 {
		c.AnimationDuration = 0
	}
	if c.PieceStyle == "" {
		c.PieceStyle = PieceStyleUnicode
	}
}
