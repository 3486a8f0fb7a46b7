package gestures

import (
	"time"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/graphics"
)

// DefaultLongPressDuration is used when Duration is zero.
const DefaultLongPressDuration = 500 * time.Millisecond

// LongPressGestureRecognizer claims a pointer that stays within TouchSlop
// for Duration. Once the deadline passes it accepts in the arena, which
// rejects every competing recognizer, and then calls OnLongPress.
type LongPressGestureRecognizer struct {
	Arena *GestureArena

	// Duration is how long the pointer must be held.
	Duration time.Duration

	// OnLongPress fires once the deadline passes. May be nil.
	OnLongPress func(position graphics.Offset)

	// OnCancel fires when the press is abandoned before the deadline.
	OnCancel func()

	pointerID int64
	entry     *ArenaEntry
	initial   graphics.Offset
	deadline  *animation.Timer
	tracking  bool
	fired     bool
	disposed  bool
}

// NewLongPressGestureRecognizer creates a recognizer bound to arena.
func NewLongPressGestureRecognizer(arena *GestureArena, duration time.Duration) *LongPressGestureRecognizer {
	return &LongPressGestureRecognizer{Arena: arena, Duration: duration}
}

// AddPointer starts tracking a pointer from its down event. A recognizer
// tracks one pointer at a time; a new pointer replaces the previous one.
func (r *LongPressGestureRecognizer) AddPointer(event PointerEvent) {
	if r.disposed {
		return
	}
	if r.tracking {
		r.stop(true)
	}
	arena := r.Arena
	if arena == nil {
		arena = DefaultArena
	}
	r.pointerID = event.PointerID
	r.initial = event.Position
	r.tracking = true
	r.fired = false
	r.entry = arena.Add(event.PointerID, r)

	duration := r.Duration
	if duration <= 0 {
		duration = DefaultLongPressDuration
	}
	r.deadline = animation.AfterFunc(duration, r.didExceedDeadline)
}

// HandleEvent processes move, up and cancel events for the tracked pointer.
func (r *LongPressGestureRecognizer) HandleEvent(event PointerEvent) {
	if r.disposed || !r.tracking || event.PointerID != r.pointerID {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		if !r.fired && event.Position.Sub(r.initial).Distance() > TouchSlop {
			r.stop(true)
		}
	case PointerPhaseUp:
		r.stop(!r.fired)
	case PointerPhaseCancel:
		r.stop(true)
	}
}

// IsTracking reports whether a pointer is currently being watched.
func (r *LongPressGestureRecognizer) IsTracking() bool {
	return r.tracking
}

func (r *LongPressGestureRecognizer) didExceedDeadline() {
	if r.disposed || !r.tracking {
		return
	}
	r.deadline = nil
	r.fired = true
	r.entry.Resolve(GestureAccepted)
	if r.OnLongPress != nil {
		r.OnLongPress(r.initial)
	}
}

func (r *LongPressGestureRecognizer) stop(reject bool) {
	if r.deadline != nil {
		r.deadline.Cancel()
		r.deadline = nil
	}
	wasTracking := r.tracking
	r.tracking = false
	if reject && wasTracking {
		if r.entry != nil {
			r.entry.Resolve(GestureRejected)
		}
		if r.OnCancel != nil {
			r.OnCancel()
		}
	}
	r.entry = nil
}

// AcceptGesture is called by the arena when this recognizer wins.
func (r *LongPressGestureRecognizer) AcceptGesture(pointerID int64) {}

// RejectGesture is called by the arena when another recognizer wins.
func (r *LongPressGestureRecognizer) RejectGesture(pointerID int64) {
	if pointerID != r.pointerID || !r.tracking {
		return
	}
	if r.deadline != nil {
		r.deadline.Cancel()
		r.deadline = nil
	}
	r.tracking = false
	r.entry = nil
}

// Dispose cancels any pending deadline. The recognizer ignores all input
// afterwards.
func (r *LongPressGestureRecognizer) Dispose() {
	if r.disposed {
		return
	}
	r.stop(true)
	r.disposed = true
}
