package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Sheets    SheetsConfig    `yaml:"sheets"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig locates the local SQLite database backing the durable store.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SheetsConfig describes the remote spreadsheet store. Leaving the whole
// section empty runs the server in local-only mode.
type SheetsConfig struct {
	BaseURL       string    `yaml:"base_url"`
	APIKey        string    `yaml:"api_key"` // read-only key
	SpreadsheetID string    `yaml:"spreadsheet_id"`
	SheetName     string    `yaml:"sheet_name"`
	BearerToken   string    `yaml:"bearer_token"`
	TokenExpiry   time.Time `yaml:"token_expiry"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"` // optional; empty disables request auth
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Enabled reports whether a remote spreadsheet store is configured at all.
func (s SheetsConfig) Enabled() bool {
	return s.SpreadsheetID != "" || s.APIKey != "" || s.BearerToken != ""
}

// Problems returns human-readable validation failures for the sheets section,
// or nil when the section is absent or complete.
func (s SheetsConfig) Problems() []string {
	if !s.Enabled() {
		return nil
	}
	var problems []string
	if s.SpreadsheetID == "" {
		problems = append(problems, "sheets.spreadsheet_id is required when remote sync is configured")
	}
	if s.SheetName == "" {
		problems = append(problems, "sheets.sheet_name is required when remote sync is configured")
	}
	return problems
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix LIFTLOG_ and underscore-separated paths:
//
//	LIFTLOG_SERVER_HOST, LIFTLOG_SERVER_PORT, LIFTLOG_STORAGE_PATH,
//	LIFTLOG_SHEETS_BASE_URL, LIFTLOG_SHEETS_API_KEY,
//	LIFTLOG_SHEETS_SPREADSHEET_ID, LIFTLOG_SHEETS_SHEET_NAME,
//	LIFTLOG_SHEETS_BEARER_TOKEN, LIFTLOG_AUTH_API_KEY,
//	LIFTLOG_TS_HOSTNAME
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("LIFTLOG_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LIFTLOG_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("LIFTLOG_SHEETS_BASE_URL"); v != "" {
		cfg.Sheets.BaseURL = v
	}
	if v := os.Getenv("LIFTLOG_SHEETS_API_KEY"); v != "" {
		cfg.Sheets.APIKey = v
	}
	if v := os.Getenv("LIFTLOG_SHEETS_SPREADSHEET_ID"); v != "" {
		cfg.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("LIFTLOG_SHEETS_SHEET_NAME"); v != "" {
		cfg.Sheets.SheetName = v
	}
	if v := os.Getenv("LIFTLOG_SHEETS_BEARER_TOKEN"); v != "" {
		cfg.Sheets.BearerToken = v
	}
	if v := os.Getenv("LIFTLOG_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("LIFTLOG_TS_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if problems := c.Sheets.Problems(); len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
