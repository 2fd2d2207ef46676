package ghelper

import (
	"chessview/src/board"
	"chessview/src/logx"
	"chessview/ui/gui/gbase"
	"chessview/ui/gui/gbase/gconf"
	"chessview/ui/gui/ghelper/gfont"
)

// ---- GUI Context ----

type GUIContext struct {
	View     *board.BoardView
	Timers   *board.TimerQueue
	Faces    *gfont.Faces
	Config   *gconf.Config
	ConfPath string
	Theme    gbase.Palette
	Logx     logx.Logger
}

func NewGUIContext(v *board.BoardView, q *board.TimerQueue, f *gfont.Faces, c *gconf.Config, path string, l logx.Logger) *GUIContext {
	return &GUIContext{
		View:     v,
		Timers:   q,
		Faces:    f,
		Config:   c,
		ConfPath: path,
		Theme:    gbase.PaletteFromString(c.Theme),
		Logx:     l,
	}
}

// BoardArea reports whether the window point lies on the board.
func (ctx *GUIContext) BoardArea(x, y int) bool {
	n := ctx.View.SquareSize() * 8
	return PointInRect(x, y, 0, 0, n, n)
}

// SyncConfig copies the toggles changed at runtime back into the file config.
func (ctx *GUIContext) SyncConfig() {
	ctx.Config.Flipped = ctx.View.Flipped()
	ro := ctx.View.Readonly()
	ctx.Config.AllowInput = !ro
	ctx.Config.AllowDragging = !ro
	ctx.Config.AllowDrawing = !ro
	ctx.Config.Animation = ctx.View.Config().Animation
}
