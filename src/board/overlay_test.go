package board

import (
	"image/color"
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

func TestToggleSet(t *testing.T) {
	var s ToggleSet[Circle]
	c := Circle{Row: 1, Col: 2, Color: red, Radius: 5, Width: 2}

	s.Toggle(c, false)
	if s.Len() != 1 || !s.Contains(c) {
		t.Fatalf("first toggle should insert, len=%d", s.Len())
	}
	s.Toggle(c, true)
	if s.Len() != 1 {
		t.Fatalf("keep toggle of a present entry must not change the set, len=%d", s.Len())
	}
	s.Toggle(c, false)
	if s.Len() != 0 {
		t.Fatalf("second toggle should remove, len=%d", s.Len())
	}

	// entries differing in any field are distinct
	other := c
	other.Width = 3
	s.Toggle(c, false)
	s.Toggle(other, false)
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if items := s.Items(); items[0] != c || items[1] != other {
		t.Errorf("insertion order lost: %v", items)
	}
}

func TestClearSelectedLayers(t *testing.T) {
	var o Overlays
	o.Highlights.Toggle(Highlight{Row: 0, Col: 0, Color: red}, false)
	o.Circles.Toggle(Circle{Row: 1, Col: 1, Color: red, Radius: 3, Width: 1}, false)
	o.Arrows.Toggle(Arrow{FromRow: 6, FromCol: 4, ToRow: 4, ToCol: 4, Color: red, Width: 3}, false)

	o.Clear(Layers{Circles: true})
	if o.Circles.Len() != 0 {
		t.Errorf("circles not cleared")
	}
	if o.Highlights.Len() != 1 || o.Arrows.Len() != 1 {
		t.Errorf("unselected layers changed: highlights=%d arrows=%d", o.Highlights.Len(), o.Arrows.Len())
	}

	o.Clear(AllLayers)
	if o.Highlights.Len()+o.Circles.Len()+o.Arrows.Len() != 0 {
		t.Errorf("AllLayers left entries behind")
	}
}
