package vote

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/reportrhq/reportr-go/internal/model"
)

const (
	callTimeout = 30 * time.Second
	queueDepth  = 16
)

// Reconciler serializes vote actions per report, applies them
// optimistically, and rolls the display back when the backend rejects
// the newest action. Resolutions superseded by a newer action are
// discarded; the newer action's own resolution reconciles state.
type Reconciler struct {
	backend Backend
	session Session
	notify  Notifier
	nav     Navigator

	mu      sync.Mutex
	entries map[int]*entry
}

// entry is the per-report state: the displayed (state, tally) pair, the
// sequence number of the newest issued action, and the FIFO queue its
// worker drains. Two calls for one report are never in flight together.
type entry struct {
	state   model.VoteState
	tally   model.Tally
	seq     uint64
	pending int
	queue   chan action
	done    chan struct{}
}

type action struct {
	seq       uint64
	run       func(ctx context.Context) error
	prevState model.VoteState
	prevTally model.Tally
	success   string
}

// New creates a reconciler over the given collaborators.
func New(backend Backend, session Session, notify Notifier, nav Navigator) *Reconciler {
	return &Reconciler{
		backend: backend,
		session: session,
		notify:  notify,
		nav:     nav,
		entries: make(map[int]*entry),
	}
}

// Track registers a visible report with its last known state and tally.
// Tracking an already-tracked report leaves it untouched.
func (r *Reconciler) Track(reportID int, state model.VoteState, tally model.Tally) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[reportID]; ok {
		return
	}
	e := &entry{
		state: state,
		tally: tally,
		queue: make(chan action, queueDepth),
		done:  make(chan struct{}),
	}
	r.entries[reportID] = e
	go r.worker(reportID, e)
}

// Forget drops a report that left the screen. Resolutions still in
// flight for it are discarded when they arrive.
func (r *Reconciler) Forget(reportID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[reportID]; ok {
		close(e.done)
		delete(r.entries, reportID)
	}
}

// Close forgets every tracked report.
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		close(e.done)
		delete(r.entries, id)
	}
}

// Snapshot returns the currently displayed (state, tally) for a report.
func (r *Reconciler) Snapshot(reportID int) (model.VoteState, model.Tally, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[reportID]
	if !ok {
		return model.VoteStateUnknown, model.Tally{}, false
	}
	return e.state, e.tally, true
}

// Refresh fetches the authoritative (state, tally) for a tracked report.
// The result is dropped if the user acted on the report while the fetch
// was in flight.
func (r *Reconciler) Refresh(ctx context.Context, reportID int) error {
	r.mu.Lock()
	e, ok := r.entries[reportID]
	if !ok {
		r.mu.Unlock()
		return ErrNotTracked
	}
	seq := e.seq
	r.mu.Unlock()

	state, tally, err := r.backend.GetVote(ctx, reportID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.entries[reportID]; ok && cur == e && e.seq == seq && e.pending == 0 {
		e.state = state
		e.tally = tally
	}
	return nil
}

// SetSettled applies a server-pushed authoritative tally, unless an
// optimistic action is still unresolved for the report.
func (r *Reconciler) SetSettled(reportID int, tally model.Tally) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[reportID]; ok && e.pending == 0 {
		e.tally = tally
	}
}

// Vote applies the requested vote to a tracked report. The displayed
// state mutates before this returns; the backend call settles on the
// report's worker. An unauthenticated user is refused before anything
// is touched.
func (r *Reconciler) Vote(reportID int, requested model.VoteType) error {
	if !r.session.Authenticated() {
		r.nav.RedirectToSignIn()
		return ErrNotAuthenticated
	}

	r.mu.Lock()
	e, ok := r.entries[reportID]
	if !ok {
		r.mu.Unlock()
		return ErrNotTracked
	}

	prevState, prevTally := e.state, e.tally

	// A state never fetched votes like no standing vote.
	current := prevState
	if current == model.VoteStateUnknown {
		current = model.VoteStateNone
	}

	var run func(ctx context.Context) error
	var success string

	switch {
	case current.Matches(requested):
		// Retraction: re-clicking the standing vote withdraws it.
		e.state = model.VoteStateNone
		e.tally = e.tally.Remove(requested)
		run = func(ctx context.Context) error { return r.backend.RemoveVote(ctx, reportID) }
		success = "Vote removed"

	case current == model.VoteStateNone:
		// Fresh vote.
		e.state = requested.State()
		e.tally = e.tally.Add(requested)
		run = func(ctx context.Context) error { return r.backend.CastVote(ctx, reportID, requested) }
		success = "Vote recorded"

	default:
		// Flip: one overwrite call, both tally fields adjusted.
		var previous model.VoteType
		if current == model.VoteStateUp {
			previous = model.VoteUp
		} else {
			previous = model.VoteDown
		}
		e.state = requested.State()
		e.tally = e.tally.Remove(previous).Add(requested)
		run = func(ctx context.Context) error { return r.backend.CastVote(ctx, reportID, requested) }
		success = "Vote updated"
	}

	e.seq++
	e.pending++
	a := action{
		seq:       e.seq,
		run:       run,
		prevState: prevState,
		prevTally: prevTally,
		success:   success,
	}

	select {
	case e.queue <- a:
		r.mu.Unlock()
		return nil
	default:
		// Saturated queue: undo the optimistic mutation and ignore the
		// action rather than interleave calls.
		e.state = prevState
		e.tally = prevTally
		e.seq--
		e.pending--
		r.mu.Unlock()
		return ErrBusy
	}
}

func (r *Reconciler) worker(reportID int, e *entry) {
	for {
		select {
		case <-e.done:
			return
		case a := <-e.queue:
			ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
			err := a.run(ctx)
			cancel()
			r.resolve(reportID, e, a, err)
		}
	}
}

// resolve settles one action. A resolution that is no longer the newest
// issued action is discarded, rollback included.
func (r *Reconciler) resolve(reportID int, e *entry, a action, callErr error) {
	r.mu.Lock()

	if cur, ok := r.entries[reportID]; !ok || cur != e {
		r.mu.Unlock()
		return
	}
	e.pending--

	if a.seq != e.seq {
		r.mu.Unlock()
		if callErr != nil {
			log.Printf("discarding stale vote failure for report %d (seq %d < %d): %v",
				reportID, a.seq, e.seq, callErr)
		}
		return
	}

	if callErr != nil {
		e.state = a.prevState
		e.tally = a.prevTally
		r.mu.Unlock()
		log.Printf("vote on report %d failed, rolled back: %v", reportID, callErr)
		if r.notify != nil {
			r.notify.Error("Could not save your vote. Please try again.")
		}
		return
	}

	r.mu.Unlock()
	if r.notify != nil {
		r.notify.Success(a.success)
	}
}
