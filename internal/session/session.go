package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
)

// Session is the persisted state of a signed-in user: the bearer token,
// the identity it belongs to, and this installation's device ID.
type Session struct {
	Token     string    `json:"token,omitempty"`
	UserID    int       `json:"user_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	DeviceID  string    `json:"device_id"`
}

// Store keeps the session on disk with an init-on-load, mutate-on-action,
// persist-on-change lifecycle. It is safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
	s    Session
}

// Open loads the session file at path, creating it (and a device ID) on
// first use. An empty path resolves to the user config directory.
func Open(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve config dir")
		}
		path = filepath.Join(dir, "reportr", "session.json")
	}

	st := &Store{path: path}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &st.s); err != nil {
			return nil, errors.Wrapf(err, "corrupt session file %s", path)
		}
	case os.IsNotExist(err):
		// first run
	default:
		return nil, errors.Wrapf(err, "failed to read session file %s", path)
	}

	if st.s.DeviceID == "" {
		st.s.DeviceID = uuid.New().String()
		if err := st.persist(); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// SetFromLogin stores the token and identity from a successful login.
// Token expiry is read from the JWT claims; the signature stays the
// server's business.
func (st *Store) SetFromLogin(resp model.LoginResponse) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.s.Token = resp.Token
	st.s.UserID = resp.User.ID
	st.s.Username = resp.User.Username
	st.s.Role = resp.User.Role
	st.s.ExpiresAt = tokenExpiry(resp.Token)

	return st.persist()
}

// Clear signs the user out. The device ID survives.
func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.s = Session{DeviceID: st.s.DeviceID}
	return st.persist()
}

// Authenticated reports whether a usable session exists.
func (st *Store) Authenticated() bool {
	return st.Token() != ""
}

// Token returns the bearer token, or "" when signed out or expired.
func (st *Store) Token() string {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.s.Token == "" {
		return ""
	}
	if !st.s.ExpiresAt.IsZero() && time.Now().After(st.s.ExpiresAt) {
		return ""
	}
	return st.s.Token
}

func (st *Store) DeviceID() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.DeviceID
}

func (st *Store) UserID() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.UserID
}

func (st *Store) Username() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Username
}

func (st *Store) Role() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s.Role
}

func (st *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create session dir")
	}

	data, err := json.MarshalIndent(st.s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}
	return nil
}

// tokenExpiry pulls the exp claim out of the token without verifying it.
// A token we can't parse just has no known expiry.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0)
	case json.Number:
		if n, err := strconv.ParseInt(exp.String(), 10, 64); err == nil {
			return time.Unix(n, 0)
		}
	}
	return time.Time{}
}
