package animation

import "time"

// Stopwatch measures elapsed time on the animation clock.
// The zero value is a stopped stopwatch with nothing recorded.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// Start begins measuring. Has no effect if already running.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.start = Now()
	s.running = true
}

// Stop freezes the elapsed time.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed += Now().Sub(s.start)
	s.running = false
}

// Reset clears the elapsed time. A running stopwatch keeps running from zero.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	if s.running {
		s.start = Now()
	}
}

// IsRunning reports whether the stopwatch is measuring.
func (s *Stopwatch) IsRunning() bool {
	return s.running
}

// Elapsed returns the total measured time.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + Now().Sub(s.start)
	}
	return s.elapsed
}
