package board

import "time"

type TimerID uint64

// Scheduler runs callbacks later on the caller's goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerID
	// Cancel is a no-op for unknown or already fired timers.
	Cancel(id TimerID)
}

type timer struct {
	id  TimerID
	due time.Time
	fn  func()
}

// TimerQueue is a cooperative Scheduler. Nothing runs until the owner calls
// RunDue, normally once per frame from the UI loop.
type TimerQueue struct {
	now    func() time.Time
	nextID TimerID
	timers []timer
}

func NewTimerQueue(now func() time.Time) *TimerQueue {
	if now == nil {
		now = time.Now
	}
	return &TimerQueue{now: now}
}

func (q *TimerQueue) AfterFunc(d time.Duration, fn func()) TimerID {
	q.nextID++
	q.timers = append(q.timers, timer{id: q.nextID, due: q.now().Add(d), fn: fn})
	return q.nextID
}

func (q *TimerQueue) Cancel(id TimerID) {
	for i, t := range q.timers {
		if t.id == id {
			q.timers = append(q.timers[:i], q.timers[i+1:]...)
			return
		}
	}
}

func (q *TimerQueue) Pending() int {
	return len(q.timers)
}

// RunDue fires every timer due at now in due order and returns how many
// ran. Timers scheduled by callbacks wait for the next call.
func (q *TimerQueue) RunDue(now time.Time) int {
	last := q.nextID
	ran := 0
	for {
		idx := -1
		for i, t := range q.timers {
			if t.id > last || t.due.After(now) {
				continue
			}
			if idx < 0 || t.due.Before(q.timers[idx].due) {
				idx = i
			}
		}
		if idx < 0 {
			return ran
		}
		t := q.timers[idx]
		q.timers = append(q.timers[:idx], q.timers[idx+1:]...)
		t.fn()
		ran++
	}
}
