package core

import (
	"testing"

	"github.com/go-drift/piemenu/pkg/errors"
)

type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

type countingState struct {
	StateBase
	inits    int
	builds   int
	disposes int
	onBuild  func()
}

func (s *countingState) InitState() { s.inits++ }

func (s *countingState) Build() {
	s.builds++
	if s.onBuild != nil {
		s.onBuild()
	}
}

func (s *countingState) Dispose() {
	s.disposes++
	s.StateBase.Dispose()
}

func TestUseController(t *testing.T) {
	base := &StateBase{}

	controller := UseController(base, func() *mockDisposable {
		return &mockDisposable{}
	})
	if controller.disposed {
		t.Error("Controller should not be disposed initially")
	}

	base.Dispose()
	if !controller.disposed {
		t.Error("Controller should be disposed when StateBase is disposed")
	}
}

func TestUseListenable(t *testing.T) {
	base := &StateBase{}
	notifier := NewNotifier()

	UseListenable(base, notifier)
	if notifier.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", notifier.ListenerCount())
	}

	base.Dispose()
	if notifier.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", notifier.ListenerCount())
	}
}

func TestUseObservableRebuilds(t *testing.T) {
	owner := NewBuildOwner()
	state := &countingState{}
	obs := NewObservable(0)
	Mount(owner, state)
	UseObservable(state, obs)
	owner.FlushBuild()

	obs.Set(1)
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("builds = %d, want 2", state.builds)
	}
}

func TestDisposersRunInReverseOrder(t *testing.T) {
	base := &StateBase{}
	var order []int
	base.OnDispose(func() { order = append(order, 1) })
	unregister := base.OnDispose(func() { order = append(order, 2) })
	base.OnDispose(func() { order = append(order, 3) })
	unregister()

	base.Dispose()
	base.Dispose()
	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("order = %v, want [3 1]", order)
	}
}

func TestOnDisposeAfterDisposeRunsImmediately(t *testing.T) {
	base := &StateBase{}
	base.Dispose()
	ran := false
	base.OnDispose(func() { ran = true })
	if !ran {
		t.Error("cleanup registered after dispose should run immediately")
	}
}

func TestIfAliveAndSetStateAfterDispose(t *testing.T) {
	owner := NewBuildOwner()
	state := &countingState{}
	el := Mount(owner, state)
	owner.FlushBuild()
	el.Unmount()

	called := false
	state.IfAlive(func() { called = true })
	state.SetState(func() { called = true })
	if called {
		t.Error("callbacks must not run after dispose")
	}
	if owner.NeedsWork() {
		t.Error("disposed state should not schedule builds")
	}
	if state.disposes != 1 {
		t.Errorf("disposes = %d, want 1", state.disposes)
	}
}

func TestMountLifecycle(t *testing.T) {
	owner := NewBuildOwner()
	state := &countingState{}
	el := Mount(owner, state)
	if state.inits != 1 {
		t.Errorf("inits = %d, want 1", state.inits)
	}
	if !state.Mounted() || state.Element() != el {
		t.Error("state should be mounted on its element")
	}

	owner.FlushBuild()
	state.SetState(nil)
	state.SetState(nil)
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("builds = %d, want 2 (rebuilds coalesce)", state.builds)
	}
}

func TestFlushBuildHandlesNestedScheduling(t *testing.T) {
	owner := NewBuildOwner()
	a := &countingState{}
	b := &countingState{}
	Mount(owner, a)
	Mount(owner, b)
	owner.FlushBuild()

	a.onBuild = func() { b.SetState(nil) }
	a.SetState(nil)
	owner.FlushBuild()
	if b.builds != 2 {
		t.Errorf("b.builds = %d, want 2", b.builds)
	}
}

func TestBuildPanicIsRecovered(t *testing.T) {
	prev := errors.DefaultHandler
	var got *errors.PanicError
	errors.SetHandler(&recordingHandler{onPanic: func(e *errors.PanicError) { got = e }})
	defer errors.SetHandler(prev)

	owner := NewBuildOwner()
	state := &countingState{onBuild: func() { panic("bad build") }}
	Mount(owner, state)
	owner.FlushBuild()

	if got == nil || got.Value != "bad build" {
		t.Fatalf("panic not reported: %+v", got)
	}
}

func TestPostFrameCallbacks(t *testing.T) {
	owner := NewBuildOwner()
	var order []string
	owner.AddPostFrameCallback(func() {
		order = append(order, "first")
		owner.AddPostFrameCallback(func() { order = append(order, "next frame") })
	})
	owner.FlushPostFrameCallbacks()
	if len(order) != 1 {
		t.Fatalf("order = %v, callbacks queued during flush must wait", order)
	}
	if !owner.NeedsWork() {
		t.Error("queued post-frame callback should count as pending work")
	}
	owner.FlushPostFrameCallbacks()
	if len(order) != 2 || order[1] != "next frame" {
		t.Errorf("order = %v", order)
	}
}

func TestAssert(t *testing.T) {
	defer SetDebugMode(true)

	SetDebugMode(false)
	Assert(false, "test.assert", "ignored in release")

	SetDebugMode(true)
	defer func() {
		r := recover()
		pe, ok := r.(*errors.PieError)
		if !ok {
			t.Fatalf("recovered %T, want *errors.PieError", r)
		}
		if pe.Kind != errors.KindPrecondition || pe.Op != "test.assert" {
			t.Errorf("unexpected error %+v", pe)
		}
	}()
	Assert(false, "test.assert", "value %d", 3)
}

func TestNewKeyUnique(t *testing.T) {
	seen := map[Key]bool{}
	for i := 0; i < 100; i++ {
		k := NewKey()
		if k.IsZero() || seen[k] {
			t.Fatalf("duplicate or zero key %v", k)
		}
		seen[k] = true
	}
	var none Key
	if none.String() != "Key(none)" {
		t.Errorf("zero key String() = %q", none.String())
	}
}

func TestObservableWithEquality(t *testing.T) {
	obs := NewObservableWithEquality(1, func(a, b int) bool { return a == b })
	calls := 0
	unsub := obs.AddListener(func(int) { calls++ })
	obs.Set(1)
	obs.Set(2)
	unsub()
	obs.Set(3)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if obs.Value() != 3 {
		t.Errorf("Value = %d, want 3", obs.Value())
	}
}

type recordingHandler struct {
	onPanic func(*errors.PanicError)
}

func (h *recordingHandler) HandleError(*errors.PieError) {}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
