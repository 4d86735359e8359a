package reader

import (
	"sync"

	"github.com/mwhite7112/webreader/internal/lookup"
)

// State is the popover state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateResult
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateResult:
		return "shown-result"
	case StateError:
		return "shown-error"
	default:
		return "idle"
	}
}

// Point is the screen anchor the popover is positioned at.
type Point struct {
	X, Y float64
}

// Popover is a snapshot of the view.
type Popover struct {
	State    State
	Word     string
	Sentence string
	Anchor   Point
	Result   lookup.Result
	Error    string
}

// View is the popover state machine. Every Open bumps a sequence number;
// Resolve and Fail only apply to the sequence that is still loading.
type View struct {
	mu  sync.Mutex
	cur Popover
	seq uint64
}

func NewView() *View {
	return &View{}
}

// Open starts loading word. It is refused with ErrBusy while a previous
// lookup is still loading.
func (v *View) Open(word, sentence string, anchor Point) (uint64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cur.State == StateLoading {
		return 0, ErrBusy
	}
	v.seq++
	v.cur = Popover{State: StateLoading, Word: word, Sentence: sentence, Anchor: anchor}
	return v.seq, nil
}

// Resolve shows res. It reports false when seq is stale.
func (v *View) Resolve(seq uint64, res lookup.Result) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.current(seq) {
		return false
	}
	v.cur.State = StateResult
	v.cur.Result = res
	return true
}

// Fail shows msg. It reports false when seq is stale.
func (v *View) Fail(seq uint64, msg string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.current(seq) {
		return false
	}
	v.cur.State = StateError
	v.cur.Error = msg
	return true
}

// Close returns to idle from any state and invalidates any pending lookup.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	v.cur = Popover{}
}

func (v *View) Snapshot() Popover {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.cur
}

func (v *View) current(seq uint64) bool {
	return seq == v.seq && v.cur.State == StateLoading
}
