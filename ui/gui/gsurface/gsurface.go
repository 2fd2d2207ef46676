package gsurface

import (
	"chessview/src/board"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

type FaceSource interface {
	Face(size float64) font.Face
}

// Surface draws the board onto an offscreen ebiten image.
type Surface struct {
	img   *ebiten.Image
	faces FaceSource
}

func New(size int, faces FaceSource) *Surface {
	return &Surface{img: ebiten.NewImage(size, size), faces: faces}
}

func (s *Surface) Image() *ebiten.Image {
	return s.img
}

func (s *Surface) Clear() {
	s.img.Clear()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	// keep the stroke inside the square like the canvas outline does
	in := width / 2
	vector.StrokeRect(s.img, float32(x+in), float32(y+in), float32(w-width), float32(h-width), float32(width), c, true)
}

func (s *Surface) StrokeOval(x0, y0, x1, y1, width float64, c color.RGBA) {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	if rx == ry {
		vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(rx), float32(width), c, true)
		return
	}
	const segments = 48
	px, py := cx+rx, cy
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		nx, ny := cx+rx*math.Cos(a), cy+ry*math.Sin(a)
		vector.StrokeLine(s.img, float32(px), float32(py), float32(nx), float32(ny), float32(width), c, true)
		px, py = nx, ny
	}
}

func (s *Surface) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *Surface) Text(x, y float64, str string, f board.Font, c color.RGBA, a board.Anchor) {
	if str == "" {
		return
	}
	face := s.faces.Face(f.Size)
	bounds := text.BoundString(face, str)
	var tx, ty int
	switch a {
	case board.AnchorNorthWest:
		tx = int(x)
		ty = int(y) + face.Metrics().Ascent.Ceil()
	default:
		tx = int(x) - bounds.Min.X - bounds.Dx()/2
		ty = int(y) - bounds.Min.Y - bounds.Dy()/2
	}
	text.Draw(s.img, str, face, tx, ty, c)
}
