// Package core provides the state lifecycle pie menus are built on.
//
// A State is mounted on a BuildOwner, which rebuilds dirty states in
// FlushBuild and runs post-frame callbacks in FlushPostFrameCallbacks.
// Embed StateBase to get SetState, IfAlive and dispose bookkeeping:
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
//
// Observable holds a value shared between states and notifies listeners
// when it changes.
package core
