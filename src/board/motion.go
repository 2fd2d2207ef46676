package board

import (
	"chessview/src/rules"
	"math"
	"time"

	"github.com/corentings/chess/v2"
)

// MotionRequest hands a legal move to a MotionPolicy. Commit must be
// called exactly once, either right away or when the animation ends.
type MotionRequest struct {
	Move   rules.Move
	Piece  chess.Piece
	Commit func()
	Redraw func()
}

// Sprite describes the piece in flight.
type Sprite struct {
	From, To chess.Square
	Piece    chess.Piece
	Frame    int
	Frames   int
}

// Progress is the eased fraction of the path covered, in [0, 1].
func (s Sprite) Progress() float64 {
	t := 1.0
	if s.Frames > 1 {
		t = float64(s.Frame) / float64(s.Frames-1)
	}
	t = math.Max(0, math.Min(1, t))
	return 1 - (1-t)*(1-t)
}

type MotionPolicy interface {
	Play(req MotionRequest)
	// Settle finishes any move in flight at once. Calling it with nothing
	// in flight does nothing.
	Settle()
	Sprite() (Sprite, bool)
}

type ImmediateMotion struct{}

func (ImmediateMotion) Play(req MotionRequest) {
	req.Commit()
}

func (ImmediateMotion) Settle() {}

func (ImmediateMotion) Sprite() (Sprite, bool) {
	return Sprite{}, false
}

type animation struct {
	sprite Sprite
	commit func()
	redraw func()
}

// AnimatedMotion slides the moving piece over a fixed number of frames and
// commits the move on the last one. A new move preempts the running one.
type AnimatedMotion struct {
	sched    Scheduler
	frames   int
	interval time.Duration

	active   *animation
	timer    TimerID
	hasTimer bool
}

func NewAnimatedMotion(s Scheduler, fps int, duration time.Duration) *AnimatedMotion {
	if fps < 1 {
		fps = 1
	}
	if duration < 0 {
		duration = 0
	}
	frames := int(math.Round(duration.Seconds() * float64(fps)))
	if frames < 1 {
		frames = 1
	}
	return &AnimatedMotion{
		sched:    s,
		frames:   frames,
		interval: time.Duration(1000/fps) * time.Millisecond,
	}
}

func (a *AnimatedMotion) Frames() int {
	return a.frames
}

func (a *AnimatedMotion) Play(req MotionRequest) {
	a.Settle()
	if req.Piece == chess.NoPiece {
		req.Commit()
		return
	}
	a.active = &animation{
		sprite: Sprite{From: req.Move.From, To: req.Move.To, Piece: req.Piece, Frames: a.frames},
		commit: req.Commit,
		redraw: req.Redraw,
	}
	a.schedule()
}

func (a *AnimatedMotion) schedule() {
	a.timer = a.sched.AfterFunc(a.interval, a.tick)
	a.hasTimer = true
}

func (a *AnimatedMotion) tick() {
	a.hasTimer = false
	if a.active == nil {
		return
	}
	a.active.sprite.Frame++
	if a.active.sprite.Frame >= a.active.sprite.Frames {
		a.finish()
		return
	}
	if a.active.redraw != nil {
		a.active.redraw()
	}
	a.schedule()
}

func (a *AnimatedMotion) Settle() {
	if a.hasTimer {
		a.sched.Cancel(a.timer)
		a.hasTimer = false
	}
	a.finish()
}

func (a *AnimatedMotion) finish() {
	if a.active == nil {
		return
	}
	done := a.active
	a.active = nil
	done.commit()
}

func (a *AnimatedMotion) Sprite() (Sprite, bool) {
	if a.active == nil {
		return Sprite{}, false
	}
	return a.active.sprite, true
}
