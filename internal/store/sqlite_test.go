package store

import (
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "liftlog.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestGetAbsent verifies that a missing key reports ok=false without error.
func TestGetAbsent(t *testing.T) {
	s := openTemp(t)

	val, ok, err := s.Get("workout_logs")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Errorf("expected absent key, got %q", val)
	}
}

// TestSetGet verifies a round-trip through the kv table.
func TestSetGet(t *testing.T) {
	s := openTemp(t)

	if err := s.Set("workout_logs", `[{"exerciseId":"chest-1"}]`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	val, ok, err := s.Get("workout_logs")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if val != `[{"exerciseId":"chest-1"}]` {
		t.Errorf("unexpected value: %s", val)
	}
}

// TestSetOverwrite verifies that Set replaces an existing value.
func TestSetOverwrite(t *testing.T) {
	s := openTemp(t)

	if err := s.Set("auth_token", "first"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("auth_token", "second"); err != nil {
		t.Fatal(err)
	}

	val, ok, err := s.Get("auth_token")
	if err != nil || !ok {
		t.Fatalf("Get = %q, %v, %v", val, ok, err)
	}
	if val != "second" {
		t.Errorf("expected overwritten value, got %q", val)
	}
}

// TestReopen verifies values survive closing and reopening the store.
func TestReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "liftlog.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("sync_events", "[]"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	val, ok, err := s2.Get("sync_events")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = %q, %v, %v", val, ok, err)
	}
	if val != "[]" {
		t.Errorf("expected persisted value, got %q", val)
	}
}
