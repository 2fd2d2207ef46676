package gconf

import (
	"chessview/src/board"
	"chessview/ui/gui/gbase"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "chessview.json"

type Config struct {
	Theme     string `json:"theme" yaml:"theme"` // light/dark
	BoardSize int    `json:"board_size" yaml:"board_size"`

	// colors as #rrggbb; empty means "take it from the theme"
	LightSquare    string `json:"light_square" yaml:"light_square"`
	DarkSquare     string `json:"dark_square" yaml:"dark_square"`
	HighlightColor string `json:"highlight_color" yaml:"highlight_color"`
	ArrowColor     string `json:"arrow_color" yaml:"arrow_color"`
	CircleColor    string `json:"circle_color" yaml:"circle_color"`
	LegalColor     string `json:"legal_color" yaml:"legal_color"`

	ArrowWidth  int `json:"arrow_width" yaml:"arrow_width"`
	CircleWidth int `json:"circle_width" yaml:"circle_width"`
	LegalWidth  int `json:"legal_width" yaml:"legal_width"`
	LegalRadius int `json:"legal_radius" yaml:"legal_radius"`

	ShowLegal       bool `json:"show_legal" yaml:"show_legal"`
	ShowCoordinates bool `json:"show_coordinates" yaml:"show_coordinates"`
	AllowInput      bool `json:"allow_input" yaml:"allow_input"`
	AllowDragging   bool `json:"allow_dragging" yaml:"allow_dragging"`
	AllowDrawing    bool `json:"allow_drawing" yaml:"allow_drawing"`
	Flipped         bool `json:"flipped" yaml:"flipped"`

	Animation           bool `json:"animation" yaml:"animation"`
	AnimationFPS        int  `json:"animation_fps" yaml:"animation_fps"`
	AnimationDurationMS int  `json:"animation_duration_ms" yaml:"animation_duration_ms"`

	FontFamily string `json:"font_family" yaml:"font_family"`
	FontPath   string `json:"font_path" yaml:"font_path"` // ttf/otf with chess glyphs
	PieceStyle string `json:"piece_style" yaml:"piece_style"`

	LogLevel string `json:"log_level" yaml:"log_level"`
	Debug    bool   `json:"debug" yaml:"debug"`
}

func defaultConfig() Config {
	d := board.DefaultConfig()
	return Config{
		Theme:               "light",
		BoardSize:           d.BoardSize,
		ArrowColor:          gbase.HexColor(d.ArrowColor),
		CircleColor:         gbase.HexColor(d.CircleColor),
		LegalColor:          gbase.HexColor(d.LegalColor),
		ArrowWidth:          d.ArrowWidth,
		CircleWidth:         d.CircleWidth,
		LegalWidth:          d.LegalWidth,
		LegalRadius:         d.LegalRadius,
		ShowLegal:           d.ShowLegal,
		ShowCoordinates:     d.ShowCoordinates,
		AllowInput:          d.AllowInput,
		AllowDragging:       d.AllowDragging,
		AllowDrawing:        d.AllowDrawing,
		Animation:           d.Animation,
		AnimationFPS:        d.AnimationFPS,
		AnimationDurationMS: int(d.AnimationDuration / time.Millisecond),
		FontFamily:          d.FontFamily,
		PieceStyle:          string(d.PieceStyle),
		LogLevel:            "info",
	}
}

func Default() *Config {
	def := defaultConfig()
	return &def
}

func isYAML(file string) bool {
	ext := strings.ToLower(filepath.Ext(file))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads file; a missing file yields the defaults. Fields absent from
// the file keep their default values.
func Load(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		return Default(), nil
	} else if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	c := defaultConfig()
	if isYAML(file) {
		err = yaml.Unmarshal(data, &c)
	} else {
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save(file string) error {
	if file == "" {
		file = DefaultFile
	}
	var (
		data []byte
		err  error
	)
	if isYAML(file) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "    ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.BoardSize < 160 || c.BoardSize > 2048 {
		c.BoardSize = def.BoardSize
	}
	for _, f := range []struct {
		v   *string
		def string
	}{
		{&c.LightSquare, ""},
		{&c.DarkSquare, ""},
		{&c.HighlightColor, ""},
		{&c.ArrowColor, def.ArrowColor},
		{&c.CircleColor, def.CircleColor},
		{&c.LegalColor, def.LegalColor},
	} {
		if *f.v == "" {
			*f.v = f.def
			continue
		}
		if _, err := gbase.ParseHexColor(*f.v); err != nil {
			*f.v = f.def
		}
	}
	positive := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	positive(&c.ArrowWidth, def.ArrowWidth)
	positive(&c.CircleWidth, def.CircleWidth)
	positive(&c.LegalWidth, def.LegalWidth)
	positive(&c.LegalRadius, def.LegalRadius)
	if c.AnimationFPS < 1 || c.AnimationFPS > 240 {
		c.AnimationFPS = def.AnimationFPS
	}
	if c.AnimationDurationMS < 0 {
		c.AnimationDurationMS = 0
	}
	if c.PieceStyle != string(board.PieceStyleUnicode) && c.PieceStyle != string(board.PieceStyleLetters) {
		c.PieceStyle = def.PieceStyle
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
}

func pick(s string, fallback color.RGBA) color.RGBA {
	if s == "" {
		return fallback
	}
	c, err := gbase.ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// ViewConfig converts the file settings to the widget configuration.
func (c *Config) ViewConfig() board.Config {
	p := gbase.PaletteFromString(c.Theme)
	v := board.DefaultConfig()
	v.BoardSize = c.BoardSize
	v.LightSquare = pick(c.LightSquare, p.LightSquare)
	v.DarkSquare = pick(c.DarkSquare, p.DarkSquare)
	v.HighlightColor = pick(c.HighlightColor, p.Highlight)
	v.ArrowColor = pick(c.ArrowColor, v.ArrowColor)
	v.CircleColor = pick(c.CircleColor, v.CircleColor)
	v.LegalColor = pick(c.LegalColor, v.LegalColor)
	v.ArrowWidth = c.ArrowWidth
	v.CircleWidth = c.CircleWidth
	v.LegalWidth = c.LegalWidth
	v.LegalRadius = c.LegalRadius
	v.ShowLegal = c.ShowLegal
	v.ShowCoordinates = c.ShowCoordinates
	v.AllowInput = c.AllowInput
	v.AllowDragging = c.AllowDragging
	v.AllowDrawing = c.AllowDrawing
	v.Flipped = c.Flipped
	v.Animation = c.Animation
	v.AnimationFPS = c.AnimationFPS
	v.AnimationDuration = time.Duration(c.AnimationDurationMS) * time.Millisecond
	v.FontFamily = c.FontFamily
	v.PieceStyle = board.PieceStyle(c.PieceStyle)
	return v
}
