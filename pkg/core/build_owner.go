package core

import "sync"

// BuildOwner tracks elements that need rebuilding and callbacks deferred
// until the end of the current frame.
type BuildOwner struct {
	dirty     []*StatefulElement
	dirtySet  map[*StatefulElement]bool
	postFrame []func()
	mu        sync.Mutex

	// OnNeedsFrame is called when new work is scheduled, signalling the host
	// that a frame should be rendered.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{}
}

// ScheduleBuild marks an element as needing rebuild.
func (b *BuildOwner) ScheduleBuild(element *StatefulElement) {
	added := func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.dirtySet[element] {
			return false
		}
		if b.dirtySet == nil {
			b.dirtySet = make(map[*StatefulElement]bool)
		}
		b.dirtySet[element] = true
		b.dirty = append(b.dirty, element)
		return true
	}()

	if added && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// AddPostFrameCallback queues fn to run after the current frame's layout
// and paint. Callbacks added while flushing run on the next frame.
func (b *BuildOwner) AddPostFrameCallback(fn func()) {
	b.mu.Lock()
	b.postFrame = append(b.postFrame, fn)
	b.mu.Unlock()
	if b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// NeedsWork returns true if there are dirty elements or pending callbacks.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.dirty) > 0 || len(b.postFrame) > 0
}

// FlushBuild rebuilds all dirty elements in scheduling order. Elements
// dirtied during the flush are rebuilt in the same call.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			return
		}
		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if !element.IsMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}

// FlushPostFrameCallbacks runs the callbacks queued before this call.
func (b *BuildOwner) FlushPostFrameCallbacks() {
	b.mu.Lock()
	callbacks := b.postFrame
	b.postFrame = nil
	b.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
