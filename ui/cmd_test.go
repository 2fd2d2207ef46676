package ui

import (
	"bytes"
	"chessview/src/board"
	"chessview/ui/gui/gbase/gconf"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestExportFormat(t *testing.T) {
	cases := []struct {
		o    exportOptions
		want string
		ok   bool
	}{
		{exportOptions{Out: "-"}, "svg", true},
		{exportOptions{Out: "b.PNG"}, "png", true},
		{exportOptions{Out: "b.svg", Format: "png"}, "png", true},
		{exportOptions{Out: "b.gif"}, "", false},
		{exportOptions{Out: "board"}, "", false},
	}
	for _, tc := range cases {
		got, err := exportFormat(tc.o)
		if (err == nil) != tc.ok || got != tc.want {
			t.Errorf("exportFormat(%+v) = %q, %v", tc.o, got, err)
		}
	}
}

func TestExportSVGToStdout(t *testing.T) {
	var out bytes.Buffer
	o := exportOptions{
		Out:        "-",
		Highlights: []string{"e4"},
		Circles:    []string{"d5"},
		Arrows:     []string{"g1f3"},
		Layers:     board.Layers{Highlights: true, Arrows: true},
	}
	if err := exportBoard(o, &out, false); err != nil {
		t.Fatalf("export: %v", err)
	}
	svg := out.String()
	if !strings.Contains(svg, "<svg") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Fatalf("not an svg: %.80s", svg)
	}
	if strings.Contains(svg, "<circle") || strings.Contains(svg, "<ellipse") {
		t.Errorf("circles exported although the layer is off")
	}
	// shaft and two heads
	if n := strings.Count(svg, "<line"); n != 3 {
		t.Errorf("lines = %d, want 3", n)
	}
}

func TestExportRefusesTerminal(t *testing.T) {
	var out bytes.Buffer
	err := exportBoard(exportOptions{Out: "-", Layers: board.AllLayers}, &out, true)
	if !errors.Is(err, errOutIsTerminal) || out.Len() != 0 {
		t.Fatalf("err = %v, wrote %d bytes", err, out.Len())
	}
}

func TestExportBadInput(t *testing.T) {
	var out bytes.Buffer
	for _, o := range []exportOptions{
		{Out: "-", FEN: "nonsense"},
		{Out: "-", Highlights: []string{"z9"}},
		{Out: "-", Arrows: []string{"e2"}},
	} {
		if err := exportBoard(o, &out, false); err == nil {
			t.Errorf("%+v accepted", o)
		}
	}
}

func TestExportPNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.png")
	o := exportOptions{Out: path, Size: 240, Flip: true, Layers: board.AllLayers}
	if err := exportBoard(o, nil, true); err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 240 {
		t.Errorf("bounds = %v", b)
	}
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	l := configLogger(&buf, &gconf.Config{LogLevel: "warn"}, false, false)
	if l.Level() != zapcore.WarnLevel {
		t.Fatalf("level = %v, want warn", l.Level())
	}
	l.Infof("skipped")
	l.Warnf("kept %d", 1)
	if err := l.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if strings.Contains(buf.String(), "skipped") || !strings.Contains(buf.String(), "kept 1") {
		t.Errorf("records = %q", buf.String())
	}
}
