package rest

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/reportrhq/reportr-go/internal/model"
)

type castVoteRequest struct {
	VoteType model.VoteType `json:"voteType"`
}

// GetVote fetches the tally for a report, plus the caller's own standing
// vote when the request carries a token. The user-vote string off the
// wire is normalized before anything downstream sees it.
func (c *Client) GetVote(ctx context.Context, reportID int) (model.VoteState, model.Tally, error) {
	var status model.VoteStatus
	path := fmt.Sprintf("/api/vote/%d", reportID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &status); err != nil {
		return model.VoteStateUnknown, model.Tally{}, err
	}

	state, err := model.ParseVoteState(status.UserVote)
	if err != nil {
		// A vote string we don't recognize is the server's bug, not a
		// reason to fail the whole fetch. Treat it as no standing vote.
		log.Printf("unrecognized user vote %q for report %d: %v", status.UserVote, reportID, err)
		state = model.VoteStateNone
	}
	return state, status.Tally, nil
}

// CastVote casts or overwrites the user's vote on a report. Re-voting
// with a different type replaces the existing vote server-side.
func (c *Client) CastVote(ctx context.Context, reportID int, voteType model.VoteType) error {
	path := fmt.Sprintf("/api/vote/%d", reportID)
	return c.do(ctx, http.MethodPost, path, nil, castVoteRequest{VoteType: voteType}, nil)
}

// RemoveVote deletes the user's standing vote on a report.
func (c *Client) RemoveVote(ctx context.Context, reportID int) error {
	path := fmt.Sprintf("/api/vote/%d", reportID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
