// Package vote keeps the locally displayed vote state and tally for each
// visible report consistent with server truth, while applying the user's
// action to the UI before the network round-trip completes.
package vote

import (
	"context"

	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
)

// Backend is the slice of the REST surface the reconciler drives.
// Casting over an existing vote overwrites it server-side.
type Backend interface {
	GetVote(ctx context.Context, reportID int) (model.VoteState, model.Tally, error)
	CastVote(ctx context.Context, reportID int, voteType model.VoteType) error
	RemoveVote(ctx context.Context, reportID int) error
}

// Session answers whether a user is signed in.
type Session interface {
	Authenticated() bool
}

// Notifier surfaces the outcome of a settled action to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator sends an unauthenticated user to the sign-in flow.
type Navigator interface {
	RedirectToSignIn()
}

var (
	// ErrNotAuthenticated means the action was refused outright: no
	// network call, no state change, sign-in redirect signaled.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotTracked means the report is not currently visible.
	ErrNotTracked = errors.New("report not tracked")

	// ErrBusy means the per-report action queue is saturated and the
	// action was ignored rather than interleaved.
	ErrBusy = errors.New("too many pending vote actions")
)
