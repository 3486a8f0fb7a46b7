package core

// UseController creates a controller and registers it for automatic disposal.
// The controller will be disposed when the state is disposed.
//
// Example:
//
//	func (s *menuState) InitState() {
//	    s.bounce = core.UseController(s, func() *animation.AnimationController {
//	        return animation.NewAnimationController(75 * time.Millisecond)
//	    })
//	}
func UseController[C Disposable](s stateBase, create func() C) C {
	base := s.state()
	controller := create()
	base.OnDispose(func() {
		controller.Dispose()
	})
	return controller
}

// UseListenable subscribes to a listenable and triggers rebuilds.
// The subscription is automatically cleaned up when the state is disposed.
func UseListenable(s stateBase, listenable Listenable) {
	base := s.state()
	unsub := listenable.AddListener(func() {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// UseObservable subscribes to an observable and triggers rebuilds when it
// changes. Call it once in InitState, not in Build.
func UseObservable[T any](s stateBase, obs *Observable[T]) {
	base := s.state()
	unsub := obs.AddListener(func(T) {
		base.SetState(nil)
	})
	base.OnDispose(unsub)
}

// UseSubscription registers an unsubscribe function obtained elsewhere so
// it runs on dispose.
func UseSubscription(s stateBase, unsubscribe func()) {
	s.state().OnDispose(unsubscribe)
}
