package gfont

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fonts that usually carry the chess glyphs U+2654..U+265F
var systemSymbolFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Apple Symbols.ttf",
	`C:\Windows\Fonts\seguisym.ttf`,
}

// Faces hands out font faces by pixel size, created on first use.
type Faces struct {
	font    *opentype.Font
	faces   map[float64]font.Face
	Path    string
	Symbols bool // the font has chess glyphs
}

// LoadFaces opens path, or the first system symbol font when path is
// empty. Without any of them the bundled Go font is used and Symbols is
// false.
func LoadFaces(path string) (*Faces, error) {
	if path != "" {
		f, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		return &Faces{font: f, faces: map[float64]font.Face{}, Path: path, Symbols: true}, nil
	}
	for _, p := range systemSymbolFonts {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if f, err := parseFile(p); err == nil {
			return &Faces{font: f, faces: map[float64]font.Face{}, Path: p, Symbols: true}, nil
		}
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Faces{font: f, faces: map[float64]font.Face{}}, nil
}

func parseFile(path string) (*opentype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("error parse font %s: %v", path, err)
	}
	return f, nil
}

func (fs *Faces) Face(size float64) font.Face {
	if f, ok := fs.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(fs.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	fs.faces[size] = f
	return f
}
