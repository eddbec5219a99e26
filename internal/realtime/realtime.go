// Package realtime subscribes to the backend's websocket feed of report
// and vote updates. Tallies arriving here are authoritative and are fed
// into the reconciler as settled truth.
package realtime

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
)

// Message types on the feed.
const (
	MsgTypeSubscribe    = "subscribe"
	MsgTypeReportUpdate = "report_update"
	MsgTypeVoteUpdate   = "vote_update"
)

// Event is one decoded update frame.
type Event struct {
	Type     string
	ReportID int
	Tally    model.Tally
}

// frame is the wire shape of feed messages, both directions.
type frame struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id,omitempty"`
	ReportID  int    `json:"report_id,omitempty"`
	Upvotes   int    `json:"upvotes,omitempty"`
	Downvotes int    `json:"downvotes,omitempty"`
}

// Feed is an open subscription. Events() delivers updates until the
// connection drops or Close is called; reconnecting is the caller's
// concern.
type Feed struct {
	conn      *websocket.Conn
	events    chan Event
	closeOnce sync.Once
}

// Dial opens the feed and sends the subscribe message.
func Dial(ctx context.Context, wsURL, userID string) (*Feed, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", wsURL)
	}

	sub := frame{Type: MsgTypeSubscribe, UserID: userID}
	if err := conn.WriteJSON(sub); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to subscribe")
	}

	return &Feed{
		conn:   conn,
		events: make(chan Event),
	}, nil
}

// Events returns the update channel. It is closed when Listen returns.
func (f *Feed) Events() <-chan Event {
	return f.events
}

// Listen reads frames until the connection closes. Frames that don't
// decode are logged and skipped.
func (f *Feed) Listen() error {
	defer close(f.events)

	for {
		_, raw, err := f.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return errors.Wrap(err, "feed read failed")
		}

		var fr frame
		if err := json.Unmarshal(raw, &fr); err != nil {
			log.Printf("skipping malformed feed frame: %v", err)
			continue
		}

		switch fr.Type {
		case MsgTypeVoteUpdate, MsgTypeReportUpdate:
			f.events <- Event{
				Type:     fr.Type,
				ReportID: fr.ReportID,
				Tally:    model.Tally{Upvotes: fr.Upvotes, Downvotes: fr.Downvotes},
			}
		default:
			// other message types are none of our business
		}
	}
}

// Close shuts the feed down. Safe to call more than once.
func (f *Feed) Close() error {
	var err error
	f.closeOnce.Do(func() {
		_ = f.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		err = f.conn.Close()
	})
	return err
}
