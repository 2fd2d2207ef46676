package board

import (
	"chessview/src/logx"
	"chessview/src/rules"
	"image/color"

	"github.com/corentings/chess/v2"
	"github.com/google/uuid"
)

// MoveFunc observes committed moves.
type MoveFunc func(m rules.Move, bv *BoardView)

// DrawFunc is called at the end of every redraw, before transient sprites.
type DrawFunc func(bv *BoardView)

type CallbackID string

type moveCallback struct {
	id CallbackID
	fn MoveFunc
}

type dragState struct {
	piece      chess.Piece
	offX, offY int
	x, y       int // last pointer position
}

type strokeState struct {
	startX, startY int
	endX, endY     int
}

type pendingPromotion struct {
	from, to chess.Square
}

// BoardView is an interactive chess board: it renders a rules.Position to a
// Surface, turns pointer events into moves and annotations and animates
// committed moves. All methods must be called from one goroutine.
type BoardView struct {
	id         string
	cfg        Config
	squareSize int

	pos     *rules.Position
	surface Surface
	logger  logx.Logger
	motion  MotionPolicy

	overlays Overlays

	selected chess.Square
	pending  *pendingPromotion
	drag     *dragState
	stroke   *strokeState

	callbacks []moveCallback
	drawHook  DrawFunc
}

type Option func(*BoardView)

func WithPosition(p *rules.Position) Option {
	return func(bv *BoardView) { bv.pos = p }
}

func WithLogger(l logx.Logger) Option {
	return func(bv *BoardView) { bv.logger = l }
}

// WithMotion overrides the motion policy chosen from the config.
func WithMotion(m MotionPolicy) Option {
	return func(bv *BoardView) { bv.motion = m }
}

// WithScheduler enables animated moves driven by s when the config asks
// for animation.
func WithScheduler(s Scheduler) Option {
	return func(bv *BoardView) {
		if bv.motion == nil && bv.cfg.Animation {
			bv.motion = NewAnimatedMotion(s, bv.cfg.AnimationFPS, bv.cfg.AnimationDuration)
		}
	}
}

func WithMoveCallback(fn MoveFunc) Option {
	return func(bv *BoardView) { bv.OnMove(fn) }
}

func WithDrawHook(fn DrawFunc) Option {
	return func(bv *BoardView) { bv.drawHook = fn }
}

// New builds a view and paints it once. surface may be nil for a headless
// view (exports and tests still work).
func New(surface Surface, cfg Config, opts ...Option) *BoardView {
	cfg.normalize()
	bv := &BoardView{
		id:         uuid.NewString(),
		cfg:        cfg,
		squareSize: cfg.BoardSize / 8,
		surface:    surface,
		selected:   chess.NoSquare,
	}
	for _, opt := range opts {
		opt(bv)
	}
	if bv.pos == nil {
		bv.pos = rules.NewPosition()
	}
	if bv.logger == nil {
		bv.logger = logx.Nop()
	}
	if bv.motion == nil {
		bv.motion = ImmediateMotion{}
	}
	bv.logger.Debugf("board view %s: size %d, flipped %v", bv.id, cfg.BoardSize, cfg.Flipped)
	bv.Redraw()
	return bv
}

func (bv *BoardView) ID() string {
	return bv.id
}

func (bv *BoardView) Config() Config {
	return bv.cfg
}

func (bv *BoardView) Surface() Surface {
	return bv.surface
}

// SetSurface swaps the drawing target and repaints.
func (bv *BoardView) SetSurface(s Surface) {
	bv.surface = s
	bv.Redraw()
}

func (bv *BoardView) Redraw() {
	if bv.surface == nil {
		return
	}
	bv.render(bv.surface, renderLive)
}

// OnMove registers an observer called after each committed move.
func (bv *BoardView) OnMove(fn MoveFunc) CallbackID {
	id := CallbackID(uuid.NewString())
	bv.callbacks = append(bv.callbacks, moveCallback{id: id, fn: fn})
	return id
}

func (bv *BoardView) RemoveCallback(id CallbackID) bool {
	for i, cb := range bv.callbacks {
		if cb.id == id {
			bv.callbacks = append(bv.callbacks[:i], bv.callbacks[i+1:]...)
			return true
		}
	}
	return false
}

// read accessors over the owned position

func (bv *BoardView) FEN() string {
	return bv.pos.FEN()
}

func (bv *BoardView) PieceAt(sq chess.Square) chess.Piece {
	return bv.pos.PieceAt(sq)
}

func (bv *BoardView) Turn() chess.Color {
	return bv.pos.Turn()
}

func (bv *BoardView) LegalMoves() []rules.Move {
	return bv.pos.LegalMoves()
}

func (bv *BoardView) History() []string {
	return bv.pos.History()
}

// Clone returns a detached copy of the position.
func (bv *BoardView) Clone() *rules.Position {
	return bv.pos.Copy()
}

// Outcome reports the game result, see rules.Position.Outcome.
func (bv *BoardView) Outcome() (string, string) {
	return bv.pos.Outcome()
}

func (bv *BoardView) Selected() chess.Square {
	return bv.selected
}

func (bv *BoardView) PromotionPending() bool {
	return bv.pending != nil
}

func (bv *BoardView) Flipped() bool {
	return bv.cfg.Flipped
}

func (bv *BoardView) Animating() bool {
	_, ok := bv.motion.Sprite()
	return ok
}

// Overlays returns copies of the stored annotations.
func (bv *BoardView) Overlays() ([]Highlight, []Circle, []Arrow) {
	return bv.overlays.Highlights.Items(), bv.overlays.Circles.Items(), bv.overlays.Arrows.Items()
}

// mutations

func (bv *BoardView) FlipBoard() {
	bv.settle()
	bv.cfg.Flipped = !bv.cfg.Flipped
	bv.Redraw()
}

// Pop undoes the last move.
func (bv *BoardView) Pop() error {
	bv.settle()
	bv.overlays.Clear(AllLayers)
	bv.pending = nil
	bv.drag = nil
	bv.stroke = nil
	if err := bv.pos.Pop(); err != nil {
		bv.Redraw()
		return err
	}
	bv.selected = chess.NoSquare
	bv.Redraw()
	return nil
}

func (bv *BoardView) SetFEN(fen string) error {
	bv.settle()
	if err := bv.pos.SetFEN(fen); err != nil {
		return err
	}
	bv.overlays.Clear(AllLayers)
	bv.selected = chess.NoSquare
	bv.pending = nil
	bv.drag = nil
	bv.stroke = nil
	bv.Redraw()
	return nil
}

// SetReadonly disables input, dragging and drawing together.
func (bv *BoardView) SetReadonly(readonly bool) {
	bv.settle()
	bv.cfg.AllowInput = !readonly
	bv.cfg.AllowDragging = !readonly
	bv.cfg.AllowDrawing = !readonly
	bv.drag = nil
	bv.pending = nil
	bv.Redraw()
}

func (bv *BoardView) Readonly() bool {
	return !bv.cfg.AllowInput && !bv.cfg.AllowDragging && !bv.cfg.AllowDrawing
}

func (bv *BoardView) SetAnimation(enabled bool) {
	bv.settle()
	bv.cfg.Animation = enabled
}

func (bv *BoardView) ClearBoardDraw(l Layers) {
	bv.overlays.Clear(l)
}

// HighlightSquare toggles an outline on sq; with keep an existing entry
// stays in place.
func (bv *BoardView) HighlightSquare(sq chess.Square, c color.RGBA, keep bool) {
	if !validSquare(sq) {
		return
	}
	row, col := RowColOf(sq)
	bv.overlays.Highlights.Toggle(Highlight{Row: row, Col: col, Color: c}, keep)
}

func (bv *BoardView) DrawCircle(row, col int, c color.RGBA, radius, width int, keep bool) {
	bv.overlays.Circles.Toggle(Circle{Row: row, Col: col, Color: c, Radius: radius, Width: width}, keep)
}

func (bv *BoardView) DrawArrow(fromRow, fromCol, toRow, toCol int, c color.RGBA, width int, keep bool) {
	bv.overlays.Arrows.Toggle(Arrow{
		FromRow: fromRow, FromCol: fromCol,
		ToRow: toRow, ToCol: toCol,
		Color: c, Width: width,
	}, keep)
}
