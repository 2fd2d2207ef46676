package board

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// svgSurface collects drawing calls as SVG elements. The document root is
// added by String so Clear only has to drop the body.
type svgSurface struct {
	size   int
	body   bytes.Buffer
	canvas *svg.SVG
}

func newSVGSurface(size int) *svgSurface {
	s := &svgSurface{size: size}
	s.canvas = svg.New(&s.body)
	return s
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func strokeStyle(width float64, c color.RGBA) string {
	return "fill:none;stroke:" + hexColor(c) + ";stroke-width:" + num(width)
}

// style values are written unescaped
var familyCleaner = strings.NewReplacer(`"`, "", ";", "", "<", "", ">", "", "&", "")

func (s *svgSurface) Clear() {
	s.body.Reset()
}

func (s *svgSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	s.canvas.Rect(x, y, w, h, "fill:"+hexColor(c))
}

func (s *svgSurface) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	s.canvas.Rect(x, y, w, h, strokeStyle(width, c))
}

func (s *svgSurface) StrokeOval(x0, y0, x1, y1, width float64, c color.RGBA) {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	if rx == ry {
		s.canvas.Circle(cx, cy, rx, strokeStyle(width, c))
		return
	}
	s.canvas.Ellipse(cx, cy, rx, ry, strokeStyle(width, c))
}

func (s *svgSurface) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	s.canvas.Line(x0, y0, x1, y1, "stroke:"+hexColor(c)+";stroke-width:"+num(width))
}

func (s *svgSurface) Text(x, y float64, text string, f Font, c color.RGBA, a Anchor) {
	st := []string{"font-size:" + num(f.Size) + "px"}
	if fam := familyCleaner.Replace(f.Family); fam != "" {
		st = append(st, "font-family:"+fam)
	}
	st = append(st, "fill:"+hexColor(c))
	switch a {
	case AnchorNorthWest:
		st = append(st, "text-anchor:start", "dominant-baseline:hanging")
	default:
		st = append(st, "text-anchor:middle", "dominant-baseline:middle")
	}
	s.canvas.Text(x, y, text, strings.Join(st, ";"))
}

func (s *svgSurface) String() string {
	var out bytes.Buffer
	doc := svg.New(&out)
	size := float64(s.size)
	doc.Start(size, size, fmt.Sprintf(`viewBox="0 0 %d %d"`, s.size, s.size))
	out.Write(s.body.Bytes())
	doc.End()
	return out.String()
}

// GenerateSVG renders squares, pieces and the selected overlay layers as a
// standalone SVG document. Interaction state is not included.
func (bv *BoardView) GenerateSVG(l Layers) string {
	s := newSVGSurface(bv.boardPixels())
	bv.render(s, exportMode(l))
	return s.String()
}

// ExportSVG writes GenerateSVG(l) to path. The target is replaced in one
// step; on failure no partial file is left behind.
func (bv *BoardView) ExportSVG(path string, l Layers) error {
	if err := writeFileAtomic(path, []byte(bv.GenerateSVG(l))); err != nil {
		bv.logger.Errorf("export svg %s: %v", path, err)
		return err
	}
	bv.logger.Infof("exported svg %s", path)
	return nil
}
