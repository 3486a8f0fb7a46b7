package core

import "sync"

// State is the mutable half of a stateful component. Build is called on
// every rebuild; Dispose exactly once when the owning element unmounts.
type State interface {
	InitState()
	Build()
	Dispose()
	state() *StateBase
}

type stateBase interface {
	state() *StateBase
}

func (s *StateBase) state() *StateBase { return s }

// StateBase provides liveness tracking, rebuild scheduling and disposers.
// Embed it in a state struct.
//
// Example:
//
//	type menuState struct {
//	    core.StateBase
//	    fade *animation.AnimationController
//	}
//
//	func (s *menuState) InitState() {
//	    s.fade = core.UseController(s, func() *animation.AnimationController {
//	        return animation.NewAnimationController(250 * time.Millisecond)
//	    })
//	}
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	disposed  bool
	mu        sync.Mutex
}

// Element returns the element associated with this state.
// Returns nil if the state has not been mounted.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// Mounted reports whether the state is attached to a live element.
func (s *StateBase) Mounted() bool {
	return s.element != nil && !s.IsDisposed()
}

// SetState executes the given function and schedules a rebuild.
// Safe to call even after disposal (becomes a no-op).
//
// SetState is NOT thread-safe. It must only be called from the UI thread.
func (s *StateBase) SetState(fn func()) {
	if s.IsDisposed() {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// IfAlive runs fn only if the state has not been disposed. Callbacks
// captured before disposal (timers, post-frame tasks, listeners) go
// through it so they never touch torn-down state.
func (s *StateBase) IfAlive(fn func()) {
	if s.IsDisposed() {
		return
	}
	fn()
}

// OnDispose registers a cleanup function to be called when the state is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cleanup()
		return func() {}
	}
	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// RunDisposers executes all registered disposers in reverse order.
// This is called automatically by Dispose().
func (s *StateBase) RunDisposers() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	disposers := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// Dispose cleans up resources. Override it for custom cleanup, but always
// call s.StateBase.Dispose() in the override.
func (s *StateBase) Dispose() {
	s.RunDisposers()
}

// InitState is a no-op default implementation.
func (s *StateBase) InitState() {}

// Build is a no-op default implementation.
func (s *StateBase) Build() {}

// IsDisposed returns true if this state has been disposed.
func (s *StateBase) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
