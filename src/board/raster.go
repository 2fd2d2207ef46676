package board

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// RasterOptions configures PNG export. Without a font file the bundled Go
// font is used and pieces are drawn as letters, since it has no chess
// glyphs.
type RasterOptions struct {
	FontPath string
}

type ggSurface struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face
}

func newGGSurface(size int, f *truetype.Font) *ggSurface {
	return &ggSurface{dc: gg.NewContext(size, size), font: f, faces: map[float64]font.Face{}}
}

func (s *ggSurface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(s.font, &truetype.Options{Size: size, Hinting: font.HintingFull})
	s.faces[size] = f
	return f
}

func (s *ggSurface) Clear() {
	s.dc.SetColor(white)
	s.dc.Clear()
}

func (s *ggSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *ggSurface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

func (s *ggSurface) StrokeOval(x0, y0, x1, y1, width float64, c color.RGBA) {
	s.dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

func (s *ggSurface) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

func (s *ggSurface) Text(x, y float64, text string, f Font, c color.RGBA, a Anchor) {
	s.dc.SetFontFace(s.face(f.Size))
	s.dc.SetColor(c)
	switch a {
	case AnchorNorthWest:
		s.dc.DrawStringAnchored(text, x, y, 0, 1)
	default:
		s.dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
	}
}

func loadRasterFont(opts RasterOptions) (*truetype.Font, bool, error) {
	if opts.FontPath == "" {
		f, err := truetype.Parse(goregular.TTF)
		return f, false, err
	}
	b, err := os.ReadFile(opts.FontPath)
	if err != nil {
		return nil, false, fmt.Errorf("error read font: %w", err)
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, false, fmt.Errorf("error parse font %s: %w", opts.FontPath, err)
	}
	return f, true, nil
}

// RenderImage rasterizes the same content GenerateSVG produces.
func (bv *BoardView) RenderImage(l Layers, opts RasterOptions) (image.Image, error) {
	f, custom, err := loadRasterFont(opts)
	if err != nil {
		return nil, err
	}
	mode := exportMode(l)
	if !custom {
		mode.style = PieceStyleLetters
	}
	s := newGGSurface(bv.boardPixels(), f)
	bv.render(s, mode)
	return s.dc.Image(), nil
}

func (bv *BoardView) ExportPNG(path string, l Layers, opts RasterOptions) error {
	img, err := bv.RenderImage(l, opts)
	if err != nil {
		bv.logger.Errorf("export png %s: %v", path, err)
		return err
	}
	var buf bytes.Buffer
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("error encode png: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		bv.logger.Errorf("export png %s: %v", path, err)
		return err
	}
	bv.logger.Infof("exported png %s", path)
	return nil
}
