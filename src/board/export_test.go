package board

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/corentings/chess/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

func TestGenerateSVGStartPosition(t *testing.T) {
	bv := New(nil, staticConfig())
	doc := bv.GenerateSVG(AllLayers)

	if !strings.Contains(doc, `xmlns="http://www.w3.org/2000/svg"`) || !strings.Contains(doc, `viewBox="0 0 480 480"`) {
		t.Fatalf("unexpected root: %.200s", doc)
	}
	if !strings.HasSuffix(strings.TrimSpace(doc), "</svg>") {
		t.Errorf("document not closed")
	}
	if n := strings.Count(doc, "<rect "); n != 64 {
		t.Errorf("rects = %d, want 64", n)
	}
	if n := strings.Count(doc, "<text "); n != 32 {
		t.Errorf("texts = %d, want 32", n)
	}
	if n := strings.Count(doc, `font-size:42px`); n != 32 {
		t.Errorf("piece font size should be int(60*0.7)=42, found %d", n)
	}
	if !strings.Contains(doc, `text-anchor:middle;dominant-baseline:middle`) {
		t.Errorf("pieces not centered")
	}
}

func TestGenerateSVGLayers(t *testing.T) {
	bv := New(nil, staticConfig())
	bv.HighlightSquare(chess.E4, red, false)
	bv.DrawCircle(4, 4, red, 20, 2, false)
	bv.DrawArrow(6, 4, 4, 4, red, 3, false)

	all := bv.GenerateSVG(AllLayers)
	if n := strings.Count(all, "<rect "); n != 65 {
		t.Errorf("rects = %d, want 65", n)
	}
	if n := strings.Count(all, "<circle "); n != 1 {
		t.Errorf("circles = %d, want 1", n)
	}
	if n := strings.Count(all, "<line "); n != 3 {
		t.Errorf("lines = %d, want 3", n)
	}

	none := bv.GenerateSVG(Layers{})
	if strings.Contains(none, "<circle ") || strings.Contains(none, "<line ") || strings.Count(none, "<rect ") != 64 {
		t.Errorf("disabled layers leaked into export")
	}
}

func TestGenerateSVGKeepsSelection(t *testing.T) {
	bv, _ := newStaticView(t)
	click(t, bv, "e2")
	if bv.Selected() != chess.E2 {
		t.Fatalf("e2 not selected")
	}
	// selection outline and the two legal pawn targets live in the overlays
	doc := bv.GenerateSVG(AllLayers)
	if n := strings.Count(doc, "<rect "); n != 65 {
		t.Errorf("rects = %d, want 65", n)
	}
	if n := strings.Count(doc, "<circle "); n != 2 {
		t.Errorf("hint circles = %d, want 2", n)
	}
	if doc := bv.GenerateSVG(Layers{}); strings.Count(doc, "<rect ") != 64 {
		t.Errorf("selection exported with highlights off")
	}
}

func TestExportSVGReplacesFile(t *testing.T) {
	bv := New(nil, staticConfig())
	path := filepath.Join(t.TempDir(), "board.svg")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := bv.ExportSVG(path, AllLayers); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Errorf("file not replaced: %.40s", data)
	}
	if runtime.GOOS == "windows" {
		return
	}
	if fi, err := os.Stat(path); err != nil || fi.Mode().Perm() != 0644 {
		t.Errorf("mode = %v, %v", fi.Mode(), err)
	}
}

func TestExportSVGRasterizes(t *testing.T) {
	bv := New(nil, staticConfig())
	path := filepath.Join(t.TempDir(), "board.svg")
	if err := bv.ExportSVG(path, AllLayers); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	icon, err := oksvg.ReadIconStream(f, oksvg.IgnoreErrorMode)
	if err != nil {
		t.Fatalf("parse exported svg: %v", err)
	}
	const size = 480
	icon.SetTarget(0, 0, size, size)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	// a6 (row 2, col 0) is light, b6 dark
	light := img.RGBAAt(30, 150)
	dark := img.RGBAAt(90, 150)
	if light.R != 240 || light.G != 217 || light.B != 181 {
		t.Errorf("light square pixel = %v", light)
	}
	if dark.R != 181 || dark.G != 136 || dark.B != 99 {
		t.Errorf("dark square pixel = %v", dark)
	}
}

func TestExportSVGBadPathLeavesNothing(t *testing.T) {
	bv := New(nil, staticConfig())
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "board.svg")
	if err := bv.ExportSVG(path, AllLayers); err == nil {
		t.Fatalf("export into a missing directory succeeded")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("left files behind: %v", entries)
	}
}

func TestExportPNG(t *testing.T) {
	bv := New(nil, staticConfig())
	bv.DrawArrow(6, 4, 4, 4, red, 3, false)
	path := filepath.Join(t.TempDir(), "board.png")
	if err := bv.ExportPNG(path, AllLayers, RasterOptions{}); err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 480 {
		t.Errorf("bounds = %v", b)
	}
	r, g, b, _ := img.At(30, 150).RGBA()
	if r>>8 != 240 || g>>8 != 217 || b>>8 != 181 {
		t.Errorf("light square pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestRenderOrder(t *testing.T) {
	bv, r := newStaticView(t)
	bv.HighlightSquare(chess.E2, red, false)
	bv.DrawCircle(0, 0, red, 10, 2, false)
	bv.DrawArrow(6, 4, 4, 4, red, 3, false)
	hooked := false
	bv.drawHook = func(v *BoardView) {
		hooked = true
		// the hook runs after every stored layer
		if n := r.count("line"); n != 3 {
			t.Errorf("hook ran before arrows: %d lines", n)
		}
	}
	bv.Redraw()
	if !hooked {
		t.Fatalf("draw hook not called")
	}

	idx := func(op string) int {
		for i, c := range r.calls {
			if c.op == op {
				return i
			}
		}
		return -1
	}
	if !(idx("fill") < idx("rect") && idx("rect") < idx("text") && idx("text") < idx("oval") && idx("oval") < idx("line")) {
		t.Errorf("layer order wrong: fill=%d rect=%d text=%d oval=%d line=%d",
			idx("fill"), idx("rect"), idx("text"), idx("oval"), idx("line"))
	}
	// 32 pieces + 16 coordinate labels
	if n := r.count("text"); n != 48 {
		t.Errorf("texts = %d, want 48", n)
	}
}

func TestRenderFlippedOverlay(t *testing.T) {
	bv, r := newStaticView(t)
	bv.HighlightSquare(chess.A1, red, false)
	bv.FlipBoard()
	for _, c := range r.calls {
		if c.op == "rect" {
			if c.x != 420 || c.y != 0 {
				t.Errorf("a1 highlight drawn at %v,%v when flipped, want 420,0", c.x, c.y)
			}
			return
		}
	}
	t.Fatalf("highlight not drawn")
}

func TestGlyph(t *testing.T) {
	wq := chess.NewPiece(chess.Queen, chess.White)
	bn := chess.NewPiece(chess.Knight, chess.Black)
	if Glyph(wq, PieceStyleUnicode) != "♕" || Glyph(bn, PieceStyleUnicode) != "♞" {
		t.Errorf("unicode glyphs wrong")
	}
	if Glyph(wq, PieceStyleLetters) != "Q" || Glyph(bn, PieceStyleLetters) != "n" {
		t.Errorf("letter glyphs wrong")
	}
	if Glyph(chess.NoPiece, PieceStyleUnicode) != "" {
		t.Errorf("empty square has a glyph")
	}
}
