package model

import (
	"strings"

	"github.com/pkg/errors"
)

// VoteType is a vote the user can request: upvote or downvote.
// The backend spells these lowercase on the wire.
type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// VoteState is the user's settled disposition toward a report. External
// vote strings arrive in mixed case and assorted spellings; everything is
// normalized into this closed set at the boundary and compared nowhere else.
type VoteState string

const (
	// VoteStateUnknown means the state was never fetched for this report.
	VoteStateUnknown VoteState = ""
	VoteStateNone    VoteState = "none"
	VoteStateUp      VoteState = "upvote"
	VoteStateDown    VoteState = "downvote"
)

var ErrInvalidVoteType = errors.New("invalid vote type")

// ParseVoteType normalizes an external vote-type string.
func ParseVoteType(s string) (VoteType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upvote", "up":
		return VoteUp, nil
	case "downvote", "down":
		return VoteDown, nil
	default:
		return "", errors.Wrapf(ErrInvalidVoteType, "%q", s)
	}
}

// ParseVoteState normalizes an external vote-state string. An empty or
// "none" value means the user has no standing vote.
func ParseVoteState(s string) (VoteState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "novote":
		return VoteStateNone, nil
	case "upvote", "upvoted", "up":
		return VoteStateUp, nil
	case "downvote", "downvoted", "down":
		return VoteStateDown, nil
	default:
		return VoteStateUnknown, errors.Wrapf(ErrInvalidVoteType, "%q", s)
	}
}

// State converts a requested vote type into the state it produces.
func (v VoteType) State() VoteState {
	if v == VoteDown {
		return VoteStateDown
	}
	return VoteStateUp
}

// Matches reports whether the state is the settled form of the given type.
func (s VoteState) Matches(v VoteType) bool {
	return s == v.State()
}

// Tally is the displayed upvote/downvote pair for a report.
type Tally struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// Add returns the tally with one more vote of the given type.
func (t Tally) Add(v VoteType) Tally {
	if v == VoteDown {
		t.Downvotes++
	} else {
		t.Upvotes++
	}
	return t
}

// Remove returns the tally with one vote of the given type taken away.
// Counts never go below zero.
func (t Tally) Remove(v VoteType) Tally {
	if v == VoteDown {
		if t.Downvotes > 0 {
			t.Downvotes--
		}
	} else if t.Upvotes > 0 {
		t.Upvotes--
	}
	return t
}

// VoteStatus is what the vote endpoint returns: the public counts plus,
// for authenticated callers, their own standing vote.
type VoteStatus struct {
	Tally
	UserVote string `json:"userVote,omitempty"`
}
