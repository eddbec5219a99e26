package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
	"github.com/reportrhq/reportr-go/util/values"
)

type staticTokens struct {
	token    string
	deviceID string
}

func (s staticTokens) Token() string    { return s.token }
func (s staticTokens) DeviceID() string { return s.deviceID }

func newTestClient(t *testing.T, handler http.Handler, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, tokens)
}

func TestGetVoteNormalizesMixedCase(t *testing.T) {
	mux := chi.NewRouter()
	mux.Get("/api/vote/{reportID}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "reportID") != "42" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"upvotes":   5,
			"downvotes": 2,
			"userVote":  "UpVote",
		})
	})

	c := newTestClient(t, mux, staticTokens{token: "tok"})

	state, tally, err := c.GetVote(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetVote returned error: %v", err)
	}
	if state != model.VoteStateUp {
		t.Errorf("state = %q; want %q", state, model.VoteStateUp)
	}
	if tally != (model.Tally{Upvotes: 5, Downvotes: 2}) {
		t.Errorf("tally = %+v", tally)
	}
}

func TestGetVoteUnrecognizedUserVoteFallsBackToNone(t *testing.T) {
	mux := chi.NewRouter()
	mux.Get("/api/vote/{reportID}", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"upvotes":   1,
			"downvotes": 0,
			"userVote":  "sideways",
		})
	})

	c := newTestClient(t, mux, nil)

	state, tally, err := c.GetVote(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetVote returned error: %v", err)
	}
	if state != model.VoteStateNone {
		t.Errorf("state = %q; want none", state)
	}
	if tally.Upvotes != 1 {
		t.Errorf("tally = %+v", tally)
	}
}

func TestCastVoteSendsLowercaseType(t *testing.T) {
	var got map[string]string

	mux := chi.NewRouter()
	mux.Post("/api/vote/{reportID}", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Vote upvoted successfully"})
	})

	c := newTestClient(t, mux, staticTokens{token: "tok"})

	if err := c.CastVote(context.Background(), 7, model.VoteUp); err != nil {
		t.Fatalf("CastVote returned error: %v", err)
	}
	if got["voteType"] != "upvote" {
		t.Errorf("voteType on the wire = %q; want upvote", got["voteType"])
	}
}

func TestRequestHeaders(t *testing.T) {
	var auth, requestID, source, device string

	mux := chi.NewRouter()
	mux.Delete("/api/vote/{reportID}", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get(values.HeaderRequestID)
		source = r.Header.Get(values.HeaderRequestSource)
		device = r.Header.Get(values.HeaderDeviceID)
		json.NewEncoder(w).Encode(map[string]string{"message": "Vote removed successfully"})
	})

	c := newTestClient(t, mux, staticTokens{token: "tok-123", deviceID: "dev-9"})

	if err := c.RemoveVote(context.Background(), 5); err != nil {
		t.Fatalf("RemoveVote returned error: %v", err)
	}
	if auth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", auth)
	}
	if requestID == "" {
		t.Error("request ID header missing")
	}
	if source != values.RequestSource {
		t.Errorf("request source = %q", source)
	}
	if device != "dev-9" {
		t.Errorf("device header = %q", device)
	}
}

func TestSearchReportsEncodesParams(t *testing.T) {
	var query map[string][]string

	mux := chi.NewRouter()
	mux.Get("/api/report/search", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		json.NewEncoder(w).Encode(model.ReportPage{
			Reports:      []model.ReportListItem{{ReportID: 1, Title: "Pothole on Main St"}},
			TotalPages:   1,
			CurrentPage:  2,
			TotalReports: 1,
		})
	})

	c := newTestClient(t, mux, nil)

	page, err := c.SearchReports(context.Background(), SearchReportsParams{
		Query:    "pothole",
		Category: "Roads",
		Page:     2,
		Limit:    25,
		SortBy:   "upvotes_desc",
	})
	if err != nil {
		t.Fatalf("SearchReports returned error: %v", err)
	}

	wantParams := map[string]string{
		"query":    "pothole",
		"category": "Roads",
		"page":     "2",
		"limit":    "25",
		"sortBy":   "upvotes_desc",
	}
	for key, want := range wantParams {
		if got := query[key]; len(got) != 1 || got[0] != want {
			t.Errorf("query[%s] = %v; want %s", key, got, want)
		}
	}
	for _, omitted := range []string{"location", "dateFrom", "dateTo"} {
		if _, ok := query[omitted]; ok {
			t.Errorf("zero-value param %s was sent", omitted)
		}
	}

	if page.CurrentPage != 2 || len(page.Reports) != 1 {
		t.Errorf("page = %+v", page)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	mux := chi.NewRouter()
	mux.Delete("/api/vote/{reportID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "No vote found"})
	})

	c := newTestClient(t, mux, staticTokens{token: "tok"})

	err := c.RemoveVote(context.Background(), 3)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err %T is not *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "No vote found" {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound = false")
	}
}

func TestLoginRoundTrip(t *testing.T) {
	mux := chi.NewRouter()
	mux.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username != "ada" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid username or password"})
			return
		}
		json.NewEncoder(w).Encode(model.LoginResponse{
			Message: "Login successful",
			Token:   "jwt-token",
			User:    model.UserInfo{ID: 12, Username: "ada", Role: "Admin"},
		})
	})

	c := newTestClient(t, mux, nil)

	resp, err := c.Login(context.Background(), "ada", "hunter22")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token != "jwt-token" || resp.User.ID != 12 {
		t.Errorf("resp = %+v", resp)
	}

	_, err = c.Login(context.Background(), "eve", "wrong")
	if !IsUnauthorized(err) {
		t.Errorf("err = %v; want 401", err)
	}
}

func TestCreateReportValidatesBeforeSending(t *testing.T) {
	called := false
	mux := chi.NewRouter()
	mux.Post("/api/report/", func(w http.ResponseWriter, r *http.Request) {
		called = true
		json.NewEncoder(w).Encode(IDResponse{Message: "created", ID: 77})
	})

	c := newTestClient(t, mux, staticTokens{token: "tok"})

	// missing title never reaches the network
	_, err := c.CreateReport(context.Background(), model.CreateReportRequest{
		Description: "d", CategoryID: 1, LocationID: 1,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Fatal("invalid report was sent to the backend")
	}

	id, err := c.CreateReport(context.Background(), model.CreateReportRequest{
		Title: "Broken streetlight", Description: "Out for a week", CategoryID: 2, LocationID: 3,
	})
	if err != nil {
		t.Fatalf("CreateReport returned error: %v", err)
	}
	if id != 77 {
		t.Errorf("id = %d; want 77", id)
	}
}
