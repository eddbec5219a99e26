package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/util/values"
)

const defaultPageSize = 10

// Preferences is the persisted UI state: theme and search page size.
type Preferences struct {
	Theme    string `json:"theme"`
	PageSize int    `json:"page_size"`
}

// Store keeps preferences on disk, same lifecycle as the session store.
type Store struct {
	mu   sync.Mutex
	path string
	p    Preferences
}

// Open loads preferences from path, falling back to defaults for a
// missing or unreadable file. An empty path resolves to the user config
// directory.
func Open(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve config dir")
		}
		path = filepath.Join(dir, "reportr", "prefs.json")
	}

	st := &Store{
		path: path,
		p:    Preferences{Theme: values.ThemeLight, PageSize: defaultPageSize},
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &st.p)
	}
	if st.p.Theme != values.ThemeDark {
		st.p.Theme = values.ThemeLight
	}
	if st.p.PageSize <= 0 {
		st.p.PageSize = defaultPageSize
	}
	return st, nil
}

// Theme returns the current theme, light or dark.
func (st *Store) Theme() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.p.Theme
}

// ToggleTheme flips between light and dark and persists the result.
func (st *Store) ToggleTheme() (string, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.p.Theme == values.ThemeDark {
		st.p.Theme = values.ThemeLight
	} else {
		st.p.Theme = values.ThemeDark
	}
	return st.p.Theme, st.persist()
}

// PageSize returns the preferred search page size.
func (st *Store) PageSize() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.p.PageSize
}

// SetPageSize persists a new search page size.
func (st *Store) SetPageSize(n int) error {
	if n <= 0 || n > 100 {
		return errors.Errorf("page size %d out of range", n)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.p.PageSize = n
	return st.persist()
}

func (st *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create prefs dir")
	}

	data, err := json.MarshalIndent(st.p, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal prefs")
	}
	return os.WriteFile(st.path, data, 0o600)
}
