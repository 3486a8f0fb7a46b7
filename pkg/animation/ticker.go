// Package animation provides the timing primitives pie menus are built on.
//
// # Core Components
//
//   - [AnimationController]: drives a value between 0.0 and 1.0 with a
//     configurable duration and easing curve per direction.
//
//   - [Ticker]: the per-frame callback behind every controller.
//
//   - [Timer]: a cancelable single-shot task fired from the frame loop.
//
//   - [Stopwatch]: measures elapsed time on the animation clock.
//
//   - Curves: [LinearCurve], [EaseOut] and friends, plus [CurveByName] for
//     curves named in configuration files.
//
// # Frame Loop
//
// Nothing here spawns goroutines. The host calls [StepTickers] once per
// frame; it advances every active ticker, then fires every due timer.
// Timers fire after tickers so a controller that completes in the same frame
// a timer comes due reaches its target before the timer reacts.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers, then fires due timers.
// This should be called once per frame from the host.
func StepTickers() {
	tickerMu.Lock()
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(Now().Sub(ticker.start))
		}
	}

	stepTimers()
}

// HasActiveTickers returns true if any tickers or timers are pending.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0 || len(pendingTimers) > 0
}

// ResetTickers drops every active ticker and pending timer. Test harnesses
// call it between cases so state does not leak across tests.
func ResetTickers() {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	for t := range activeTickers {
		t.isActive = false
	}
	activeTickers = make(map[*Ticker]struct{})
	for t := range pendingTimers {
		t.pending = false
	}
	pendingTimers = make(map[*Timer]struct{})
}
