package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
storage:
  path: "/var/lib/liftlog/liftlog.db"
sheets:
  api_key: "ro-key"
  spreadsheet_id: "sheet-123"
  sheet_name: "WorkoutLog"
auth:
  api_key: "test-key-123"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Storage.Path != "/var/lib/liftlog/liftlog.db" {
		t.Errorf("storage.path = %q", cfg.Storage.Path)
	}
	if cfg.Sheets.SpreadsheetID != "sheet-123" {
		t.Errorf("sheets.spreadsheet_id = %q, want %q", cfg.Sheets.SpreadsheetID, "sheet-123")
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
}

// TestEnvOverride verifies that LIFTLOG_ env vars take precedence over YAML values.
// This ensures production deployments can override config via environment.
func TestEnvOverride(t *testing.T) {
	t.Setenv("LIFTLOG_SERVER_PORT", "9999")
	t.Setenv("LIFTLOG_SHEETS_BEARER_TOKEN", "env-token")
	t.Setenv("LIFTLOG_AUTH_API_KEY", "env-key")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Sheets.BearerToken != "env-token" {
		t.Errorf("sheets.bearer_token = %q, want %q", cfg.Sheets.BearerToken, "env-token")
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	// Unchanged fields should keep YAML values
	if cfg.Sheets.SheetName != "WorkoutLog" {
		t.Errorf("sheets.sheet_name = %q, want %q", cfg.Sheets.SheetName, "WorkoutLog")
	}
}

// TestValidationMissingPort verifies that missing required fields produce a clear error.
// Prevents starting the server with incomplete configuration.
func TestValidationMissingPort(t *testing.T) {
	yaml := `
server:
  host: "0.0.0.0"
storage:
  path: "/tmp/liftlog.db"
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing port")
	}
}

// TestValidationMissingStoragePath verifies the server refuses to start
// without a durable store location.
func TestValidationMissingStoragePath(t *testing.T) {
	yaml := `
server:
  port: 8080
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing storage.path")
	}
}

// TestLocalOnlyConfig verifies the sheets section is entirely optional.
func TestLocalOnlyConfig(t *testing.T) {
	yaml := `
server:
  port: 8080
storage:
  path: "/tmp/liftlog.db"
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sheets.Enabled() {
		t.Error("empty sheets section reported as enabled")
	}
}

// TestSheetsProblems verifies partial remote configuration is rejected with
// per-field messages.
func TestSheetsProblems(t *testing.T) {
	s := SheetsConfig{APIKey: "ro-key"}
	problems := s.Problems()
	if len(problems) != 2 {
		t.Fatalf("Problems() = %v, want 2 entries", problems)
	}

	yaml := `
server:
  port: 8080
storage:
  path: "/tmp/liftlog.db"
sheets:
  api_key: "ro-key"
`
	if _, err := Load(writeTemp(t, yaml)); err == nil {
		t.Fatal("expected validation error for incomplete sheets section")
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
