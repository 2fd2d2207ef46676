package board

import "image/color"

type Highlight struct {
	Row, Col int
	Color    color.RGBA
}

type Circle struct {
	Row, Col int
	Color    color.RGBA
	Radius   int
	Width    int
}

type Arrow struct {
	FromRow, FromCol int
	ToRow, ToCol     int
	Color            color.RGBA
	Width            int
}

// ToggleSet keeps entries in insertion order and never holds two equal
// entries.
type ToggleSet[T comparable] struct {
	items []T
}

// Toggle appends entry when absent. A present entry is removed unless
// keep is set, in which case nothing changes.
func (s *ToggleSet[T]) Toggle(entry T, keep bool) {
	for i, it := range s.items {
		if it == entry {
			if !keep {
				s.items = append(s.items[:i], s.items[i+1:]...)
			}
			return
		}
	}
	s.items = append(s.items, entry)
}

func (s *ToggleSet[T]) Contains(entry T) bool {
	for _, it := range s.items {
		if it == entry {
			return true
		}
	}
	return false
}

func (s *ToggleSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ToggleSet[T]) Len() int {
	return len(s.items)
}

func (s *ToggleSet[T]) Clear() {
	s.items = nil
}

type Overlays struct {
	Highlights ToggleSet[Highlight]
	Circles    ToggleSet[Circle]
	Arrows     ToggleSet[Arrow]
}

// Layers selects overlay kinds for clearing and export.
type Layers struct {
	Highlights bool
	Circles    bool
	Arrows     bool
}

var AllLayers = Layers{Highlights: true, Circles: true, Arrows: true}

func (o *Overlays) Clear(l Layers) {
	if l.Highlights {
		o.Highlights.Clear()
	}
	if l.Circles {
		o.Circles.Clear()
	}
	if l.Arrows {
		o.Arrows.Clear()
	}
}
