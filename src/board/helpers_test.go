package board

import (
	"chessview/src/rules"
	"image/color"
	"testing"
	"time"

	"github.com/corentings/chess/v2"
)

type drawCall struct {
	op     string
	x, y   float64
	x1, y1 float64
	text   string
	color  color.RGBA
}

// recorder is a Surface that remembers the calls since the last Clear.
type recorder struct {
	calls  []drawCall
	clears int
}

func (r *recorder) Clear() {
	r.calls = r.calls[:0]
	r.clears++
}

func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.calls = append(r.calls, drawCall{op: "fill", x: x, y: y, x1: x + w, y1: y + h, color: c})
}

func (r *recorder) StrokeRect(x, y, w, h, width float64, c color.RGBA) {
	r.calls = append(r.calls, drawCall{op: "rect", x: x, y: y, x1: x + w, y1: y + h, color: c})
}

func (r *recorder) StrokeOval(x0, y0, x1, y1, width float64, c color.RGBA) {
	r.calls = append(r.calls, drawCall{op: "oval", x: x0, y: y0, x1: x1, y1: y1, color: c})
}

func (r *recorder) Line(x0, y0, x1, y1, width float64, c color.RGBA) {
	r.calls = append(r.calls, drawCall{op: "line", x: x0, y: y0, x1: x1, y1: y1, color: c})
}

func (r *recorder) Text(x, y float64, s string, f Font, c color.RGBA, a Anchor) {
	r.calls = append(r.calls, drawCall{op: "text", x: x, y: y, text: s, color: c})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *recorder) textAt(x, y float64) (string, bool) {
	for _, c := range r.calls {
		if c.op == "text" && c.x == x && c.y == y {
			return c.text, true
		}
	}
	return "", false
}

func sq(t *testing.T, s string) chess.Square {
	t.Helper()
	v, err := rules.ParseSquare(s)
	if err != nil {
		t.Fatalf("square %s: %v", s, err)
	}
	return v
}

// clock is a manual time source for TimerQueue.
type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func staticConfig() Config {
	cfg := DefaultConfig()
	cfg.Animation = false
	return cfg
}

func newStaticView(t *testing.T, opts ...Option) (*BoardView, *recorder) {
	t.Helper()
	r := &recorder{}
	return New(r, staticConfig(), opts...), r
}

// click presses and releases the primary button at the center of s.
func click(t *testing.T, bv *BoardView, s string) {
	t.Helper()
	x, y := bv.SquareCenter(sq(t, s))
	bv.PointerDown(ButtonPrimary, x, y)
	bv.PointerUp(ButtonPrimary, x, y)
}
