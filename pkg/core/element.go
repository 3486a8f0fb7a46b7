package core

import "github.com/go-drift/piemenu/pkg/errors"

// StatefulElement binds a State to a BuildOwner and drives its lifecycle.
type StatefulElement struct {
	state   State
	owner   *BuildOwner
	dirty   bool
	mounted bool
}

// Mount attaches state to owner, runs InitState and schedules the first build.
func Mount(owner *BuildOwner, state State) *StatefulElement {
	e := &StatefulElement{state: state, owner: owner, mounted: true}
	state.state().element = e
	state.InitState()
	e.MarkNeedsBuild()
	return e
}

// State returns the element's state.
func (e *StatefulElement) State() State {
	return e.state
}

// Owner returns the BuildOwner the element was mounted with.
func (e *StatefulElement) Owner() *BuildOwner {
	return e.owner
}

// MarkNeedsBuild schedules a rebuild on the next FlushBuild.
func (e *StatefulElement) MarkNeedsBuild() {
	if e.dirty || !e.mounted {
		return
	}
	e.dirty = true
	if e.owner != nil {
		e.owner.ScheduleBuild(e)
	}
}

// RebuildIfNeeded calls Build when the element is dirty. A panicking
// Build is reported and leaves the previous frame's output in place.
func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	defer errors.Recover("core.StatefulElement.Build")
	e.state.Build()
}

// Unmount disposes the state. Further rebuilds are ignored.
func (e *StatefulElement) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.dirty = false
	e.state.Dispose()
}

// IsMounted reports whether Unmount has not been called yet.
func (e *StatefulElement) IsMounted() bool {
	return e.mounted
}
