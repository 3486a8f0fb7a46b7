package gestures

import "sync"

// ArenaMember is a participant competing for a pointer.
type ArenaMember interface {
	AcceptGesture(pointerID int64)
	RejectGesture(pointerID int64)
}

// GestureDisposition is a member's verdict on its own claim.
type GestureDisposition int

const (
	GestureAccepted GestureDisposition = iota
	GestureRejected
)

type arenaState struct {
	members  []ArenaMember
	open     bool
	resolved bool
	// eager is set when a member accepts while the arena is still open.
	eager ArenaMember
}

// GestureArena decides which recognizer owns each pointer.
//
// The arena for a pointer stays open while the down event is dispatched,
// then the host closes it. A lone member wins on close. Otherwise the first
// member to accept wins, and on pointer up the host sweeps the arena so the
// first remaining member wins by default.
type GestureArena struct {
	mu     sync.Mutex
	arenas map[int64]*arenaState
}

// NewGestureArena creates an empty arena manager.
func NewGestureArena() *GestureArena {
	return &GestureArena{arenas: make(map[int64]*arenaState)}
}

// DefaultArena is shared by hosts that only need one.
var DefaultArena = NewGestureArena()

// ArenaEntry lets a member resolve its claim on one pointer.
type ArenaEntry struct {
	arena     *GestureArena
	pointerID int64
	member    ArenaMember
}

// Resolve accepts or rejects the member's claim.
func (e *ArenaEntry) Resolve(disposition GestureDisposition) {
	e.arena.resolve(e.pointerID, e.member, disposition)
}

// Add registers member for pointerID.
func (a *GestureArena) Add(pointerID int64, member ArenaMember) *ArenaEntry {
	a.mu.Lock()
	state, ok := a.arenas[pointerID]
	if !ok {
		state = &arenaState{open: true}
		a.arenas[pointerID] = state
	}
	state.members = append(state.members, member)
	a.mu.Unlock()
	return &ArenaEntry{arena: a, pointerID: pointerID, member: member}
}

// Close stops new members joining and resolves trivially decided arenas.
func (a *GestureArena) Close(pointerID int64) {
	a.mu.Lock()
	state, ok := a.arenas[pointerID]
	if !ok {
		a.mu.Unlock()
		return
	}
	state.open = false
	a.mu.Unlock()
	a.tryResolve(pointerID, state)
}

// Sweep forces resolution on pointer up: the first member wins.
func (a *GestureArena) Sweep(pointerID int64) {
	a.mu.Lock()
	state, ok := a.arenas[pointerID]
	if !ok {
		a.mu.Unlock()
		return
	}
	delete(a.arenas, pointerID)
	a.mu.Unlock()

	if state.resolved || len(state.members) == 0 {
		return
	}
	state.resolved = true
	state.members[0].AcceptGesture(pointerID)
	for _, m := range state.members[1:] {
		m.RejectGesture(pointerID)
	}
}

// MemberCount returns how many members are still competing for pointerID.
func (a *GestureArena) MemberCount(pointerID int64) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if state, ok := a.arenas[pointerID]; ok {
		return len(state.members)
	}
	return 0
}

func (a *GestureArena) resolve(pointerID int64, member ArenaMember, disposition GestureDisposition) {
	a.mu.Lock()
	state, ok := a.arenas[pointerID]
	if !ok || state.resolved {
		a.mu.Unlock()
		return
	}
	if disposition == GestureRejected {
		state.members = removeMember(state.members, member)
		a.mu.Unlock()
		member.RejectGesture(pointerID)
		if !state.open {
			a.tryResolve(pointerID, state)
		}
		return
	}
	if state.open {
		if state.eager == nil {
			state.eager = member
		}
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	a.resolveInFavorOf(pointerID, state, member)
}

func (a *GestureArena) tryResolve(pointerID int64, state *arenaState) {
	a.mu.Lock()
	if state.resolved {
		a.mu.Unlock()
		return
	}
	switch {
	case len(state.members) == 0:
		delete(a.arenas, pointerID)
		a.mu.Unlock()
	case len(state.members) == 1:
		winner := state.members[0]
		a.mu.Unlock()
		a.resolveInFavorOf(pointerID, state, winner)
	case state.eager != nil:
		winner := state.eager
		a.mu.Unlock()
		a.resolveInFavorOf(pointerID, state, winner)
	default:
		a.mu.Unlock()
	}
}

func (a *GestureArena) resolveInFavorOf(pointerID int64, state *arenaState, winner ArenaMember) {
	a.mu.Lock()
	if state.resolved {
		a.mu.Unlock()
		return
	}
	state.resolved = true
	losers := removeMember(append([]ArenaMember(nil), state.members...), winner)
	a.mu.Unlock()

	for _, m := range losers {
		m.RejectGesture(pointerID)
	}
	winner.AcceptGesture(pointerID)
}

func removeMember(members []ArenaMember, member ArenaMember) []ArenaMember {
	out := members[:0]
	for _, m := range members {
		if m != member {
			out = append(out, m)
		}
	}
	return out
}
