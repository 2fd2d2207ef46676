package gconf

import (
	"chessview/src/board"
	"chessview/ui/gui/gbase"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v := c.ViewConfig()
	d := board.DefaultConfig()
	if v.BoardSize != d.BoardSize || v.LightSquare != d.LightSquare || v.DarkSquare != d.DarkSquare {
		t.Errorf("defaults differ from the widget defaults: %+v", v)
	}
	if v.AnimationDuration != 200*time.Millisecond || v.AnimationFPS != 60 {
		t.Errorf("animation defaults = %v @ %d", v.AnimationDuration, v.AnimationFPS)
	}
	if !v.AllowInput || !v.AllowDragging || !v.AllowDrawing || !v.ShowLegal {
		t.Errorf("enable flags off by default")
	}
}

func TestLoadJSONPartialAndCorrect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.json")
	data := `{"theme": "purple", "board_size": 640, "arrow_color": "not a color",
	"dark_square": "#112233", "animation_fps": -4, "piece_style": "letters", "flipped": true}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Theme != "light" {
		t.Errorf("theme = %q, want corrected to light", c.Theme)
	}
	if c.AnimationFPS != 60 {
		t.Errorf("fps = %d, want corrected to 60", c.AnimationFPS)
	}
	if !c.ShowLegal {
		t.Errorf("absent show_legal should keep its default")
	}
	v := c.ViewConfig()
	if v.BoardSize != 640 || !v.Flipped || v.PieceStyle != board.PieceStyleLetters {
		t.Errorf("view config = %+v", v)
	}
	if v.DarkSquare != (color.RGBA{0x11, 0x22, 0x33, 0xff}) {
		t.Errorf("dark square = %v", v.DarkSquare)
	}
	if v.ArrowColor != board.DefaultConfig().ArrowColor {
		t.Errorf("bad arrow color should fall back, got %v", v.ArrowColor)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.yaml")
	data := "theme: dark\nboard_size: 400\nshow_coordinates: false\nanimation_duration_ms: 350\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v := c.ViewConfig()
	if v.LightSquare != gbase.DarkPalette.LightSquare {
		t.Errorf("dark theme squares not applied: %v", v.LightSquare)
	}
	if v.ShowCoordinates || v.BoardSize != 400 || v.AnimationDuration != 350*time.Millisecond {
		t.Errorf("view config = %+v", v)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("broken JSON accepted")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"c.json", "c.yml"} {
		path := filepath.Join(t.TempDir(), name)
		c := Default()
		c.Theme = "dark"
		c.LegalRadius = 9
		if err := c.Save(path); err != nil {
			t.Fatalf("%s save: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s load: %v", name, err)
		}
		if got.Theme != "dark" || got.LegalRadius != 9 {
			t.Errorf("%s: round trip lost fields: %+v", name, got)
		}
	}
}
