package gui

import (
	"chessview/src/board"
	"chessview/src/logx"
	"chessview/src/rules"
	"chessview/ui/gui/gbase"
	"chessview/ui/gui/gbase/gconf"
	"chessview/ui/gui/ghelper"
	"chessview/ui/gui/ghelper/gclipboard"
	"chessview/ui/gui/ghelper/gdialog"
	"chessview/ui/gui/ghelper/gfont"
	"chessview/ui/gui/gsurface"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/corentings/chess/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	toastHold  = 1.5
	statusFont = 14
)

type GUIProcessing struct {
	ctx     *ghelper.GUIContext
	surface *gsurface.Surface

	// results of dialogs running off the game loop
	results chan func()

	toast      gbase.Toast
	toastImg   *ebiten.Image
	toastText  string
	lastUpdate time.Time

	buttons [2]pointerState
	ready   bool
}

type pointerState struct {
	btn     ebiten.MouseButton
	target  board.Button
	pressed bool
	x, y    int
}

func NewGUI(conf *gconf.Config, confPath, fen string, l logx.Logger) (*GUIProcessing, error) {
	faces, err := gfont.LoadFaces(conf.FontPath)
	if err != nil {
		return nil, err
	}
	cfg := conf.ViewConfig()
	if !faces.Symbols {
		l.Warnf("font %q has no chess glyphs, drawing letters", conf.FontPath)
		cfg.PieceStyle = board.PieceStyleLetters
	}

	pos := rules.NewPosition()
	if fen != "" {
		if pos, err = rules.NewPositionFromFEN(fen); err != nil {
			return nil, err
		}
	}

	timers := board.NewTimerQueue(time.Now)
	view := board.New(nil, cfg,
		board.WithPosition(pos),
		board.WithLogger(l),
		board.WithMotion(board.NewAnimatedMotion(timers, cfg.AnimationFPS, cfg.AnimationDuration)),
	)

	gp := &GUIProcessing{
		ctx:     ghelper.NewGUIContext(view, timers, faces, conf, confPath, l),
		results: make(chan func(), 4),
		buttons: [2]pointerState{
			{btn: ebiten.MouseButtonLeft, target: board.ButtonPrimary},
			{btn: ebiten.MouseButtonRight, target: board.ButtonSecondary},
		},
	}
	view.OnMove(func(m rules.Move, bv *board.BoardView) {
		l.Infof("move %s, fen %s", m.UCI(), bv.FEN())
	})
	return gp, nil
}

func (gp *GUIProcessing) windowSize() (int, int) {
	n := gp.ctx.View.SquareSize() * 8
	return n, n + gbase.StatusBarH
}

func (gp *GUIProcessing) Run() error {
	w, h := gp.windowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("ChessView")
	err := ebiten.RunGame(gp)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	now := time.Now()
	if !gp.ready {
		w, _ := gp.windowSize()
		gp.surface = gsurface.New(w, gp.ctx.Faces)
		gp.ctx.View.SetSurface(gp.surface)
		gp.ready = true
		gp.lastUpdate = now
	}

	gp.ctx.Timers.RunDue(now)

drain:
	for {
		select {
		case fn := <-gp.results:
			fn()
		default:
			break drain
		}
	}

	gp.handlePointer()
	if err := gp.handleKeys(); err != nil {
		return err
	}

	gp.toast.Update(now.Sub(gp.lastUpdate).Seconds())
	gp.lastUpdate = now
	return nil
}

func (gp *GUIProcessing) handlePointer() {
	x, y := ebiten.CursorPosition()
	if gp.ctx.BoardArea(x, y) {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	view := gp.ctx.View
	for i := range gp.buttons {
		b := &gp.buttons[i]
		switch {
		case inpututil.IsMouseButtonJustPressed(b.btn):
			b.pressed = true
			b.x, b.y = x, y
			view.PointerDown(b.target, x, y)
		case inpututil.IsMouseButtonJustReleased(b.btn):
			if b.pressed {
				b.pressed = false
				view.PointerUp(b.target, x, y)
			}
		case b.pressed && (b.x != x || b.y != y):
			b.x, b.y = x, y
			view.PointerMove(b.target, x, y)
		}
	}
}

func (gp *GUIProcessing) handleKeys() error {
	view := gp.ctx.View
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				return true
			}
		}
		return false
	}

	switch {
	case pressed(ebiten.KeyEscape):
		return ebiten.Termination
	case pressed(ebiten.KeyF):
		view.FlipBoard()
	case pressed(ebiten.KeyU, ebiten.KeyBackspace):
		if err := view.Pop(); err != nil {
			gp.notice("nothing to undo")
		}
	case pressed(ebiten.KeyR):
		view.SetReadonly(!view.Readonly())
		gp.notice(onOff("readonly", view.Readonly()))
	case pressed(ebiten.KeyA):
		view.SetAnimation(!view.Config().Animation)
		gp.notice(onOff("animation", view.Config().Animation))
	case pressed(ebiten.KeyC):
		if err := gclipboard.WriteFEN(view.FEN()); err != nil {
			gp.ctx.Logx.Errorf("error copy fen: %v", err)
			gp.notice("copy failed")
		} else {
			gp.notice("FEN copied")
		}
	case pressed(ebiten.KeyV):
		fen, err := gclipboard.ReadFEN()
		if err == nil {
			err = view.SetFEN(fen)
		}
		gp.loaded("clipboard", err)
	case pressed(ebiten.KeyO):
		go gp.openPosition()
	case pressed(ebiten.KeyS):
		go gp.saveImage()
	case pressed(ebiten.KeyW):
		gp.ctx.SyncConfig()
		if err := gp.ctx.Config.Save(gp.ctx.ConfPath); err != nil {
			gp.ctx.Logx.Errorf("error save config: %v", err)
			gp.notice("config not saved")
		} else {
			gp.notice("config saved")
		}
	}
	return nil
}

func onOff(name string, v bool) string {
	if v {
		return name + " on"
	}
	return name + " off"
}

func (gp *GUIProcessing) loaded(from string, err error) {
	if err != nil {
		gp.ctx.Logx.Warnf("error load position from %s: %v", from, err)
		gp.notice("invalid position")
		return
	}
	gp.notice("position loaded")
}

// openPosition and saveImage block on native dialogs; the view is only
// touched from the game loop through results.
func (gp *GUIProcessing) openPosition() {
	res, err := gdialog.OpenFile("Open position")
	if gdialog.IsCancelled(err) {
		return
	}
	gp.results <- func() {
		if err == nil {
			err = gp.ctx.View.SetFEN(gclipboard.ExtractFEN(string(res.Data)))
		}
		gp.loaded(res.Name, err)
	}
}

func (gp *GUIProcessing) saveImage() {
	path, err := gdialog.SaveImage("Save board")
	if gdialog.IsCancelled(err) {
		return
	}
	gp.results <- func() {
		if err == nil {
			err = gp.export(path)
		}
		if err != nil {
			gp.ctx.Logx.Errorf("error save image: %v", err)
			gp.notice("save failed")
			return
		}
		gp.notice("saved " + filepath.Base(path))
	}
}

func (gp *GUIProcessing) export(path string) error {
	view := gp.ctx.View
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return view.ExportPNG(path, board.AllLayers, board.RasterOptions{FontPath: gp.ctx.Faces.Path})
	}
	return view.ExportSVG(path, board.AllLayers)
}

func (gp *GUIProcessing) notice(s string) {
	gp.toast.Show(s, toastHold)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	theme := gp.ctx.Theme
	screen.Fill(theme.Bg)
	if gp.surface != nil {
		screen.DrawImage(gp.surface.Image(), &ebiten.DrawImageOptions{})
	}

	w, h := gp.windowSize()
	top := h - gbase.StatusBarH
	vector.DrawFilledRect(screen, 0, float32(top), float32(w), float32(gbase.StatusBarH), theme.Bg, false)

	face := gp.ctx.Faces.Face(statusFont)
	baseline := top + (gbase.StatusBarH+face.Metrics().Ascent.Ceil())/2 - 1
	text.Draw(screen, gp.status(), face, 8, baseline, theme.StatusText)

	if gp.toast.Visible() {
		gp.drawToast(screen, w, top)
	}
}

func (gp *GUIProcessing) status() string {
	view := gp.ctx.View
	turn := "white"
	if view.Turn() == chess.Black {
		turn = "black"
	}
	s := fmt.Sprintf("%s to move, %d plies", turn, len(view.History()))
	if res, how := view.Outcome(); res != "*" {
		s = fmt.Sprintf("%s %s, %d plies", strings.ToLower(how), res, len(view.History()))
	}
	if view.Readonly() {
		s += ", readonly"
	}
	return s
}

func (gp *GUIProcessing) drawToast(screen *ebiten.Image, w, top int) {
	const (
		pad = 10
		h   = 32
	)
	face := gp.ctx.Faces.Face(statusFont)
	tw := text.BoundString(face, gp.toast.Text).Dx()
	if gp.toastImg == nil || gp.toastText != gp.toast.Text {
		gp.toastImg = ghelper.RenderRoundedRect(tw+2*pad, h, 8, gp.ctx.Theme.ToastFill, gp.ctx.Theme.ToastStroke, 1.5)
		gp.toastText = gp.toast.Text
	}

	x := (w - tw - 2*pad) / 2
	y := top - h - pad
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleAlpha(float32(gp.toast.Alpha))
	screen.DrawImage(gp.toastImg, op)

	c := gp.ctx.Theme.StatusText
	c.A = uint8(float64(c.A) * gp.toast.Alpha)
	textColor := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	text.Draw(screen, gp.toast.Text, face, x+pad, y+(h+face.Metrics().Ascent.Ceil())/2-1, textColor)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.windowSize()
}
