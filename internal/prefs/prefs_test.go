package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reportrhq/reportr-go/util/values"
)

func TestDefaults(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "prefs.json"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if st.Theme() != values.ThemeLight {
		t.Errorf("default theme = %q", st.Theme())
	}
	if st.PageSize() != 10 {
		t.Errorf("default page size = %d", st.PageSize())
	}
}

func TestToggleThemePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	theme, err := st.ToggleTheme()
	if err != nil {
		t.Fatalf("ToggleTheme returned error: %v", err)
	}
	if theme != values.ThemeDark {
		t.Errorf("toggled theme = %q; want dark", theme)
	}

	st2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if st2.Theme() != values.ThemeDark {
		t.Errorf("theme after reopen = %q; want dark", st2.Theme())
	}

	if theme, _ = st2.ToggleTheme(); theme != values.ThemeLight {
		t.Errorf("second toggle = %q; want light", theme)
	}
}

func TestPageSizeBounds(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "prefs.json"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	if err := st.SetPageSize(0); err == nil {
		t.Error("page size 0 accepted")
	}
	if err := st.SetPageSize(500); err == nil {
		t.Error("page size 500 accepted")
	}
	if err := st.SetPageSize(25); err != nil {
		t.Errorf("page size 25 rejected: %v", err)
	}
	if st.PageSize() != 25 {
		t.Errorf("page size = %d", st.PageSize())
	}
}

func TestCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if st.Theme() != values.ThemeLight || st.PageSize() != 10 {
		t.Errorf("prefs = %q %d; want defaults", st.Theme(), st.PageSize())
	}
}
