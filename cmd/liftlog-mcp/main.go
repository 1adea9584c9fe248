package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/eventlog"
	"github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/sheets"
	"github.com/claude/liftlog/internal/store"
	"github.com/claude/liftlog/internal/synclog"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "LiftLog server URL; when set, data is fetched over the REST API instead of local storage")
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftlog-mcp", Version)
		return
	}

	// Stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *serverURL != "" {
		ds = mcp.NewHTTPClient(*serverURL)
		log.Info("remote mode", "server", *serverURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		st, err := store.Open(cfg.Storage.Path)
		if err != nil {
			log.Error("failed to open local store", "path", cfg.Storage.Path, "error", err)
			os.Exit(1)
		}
		defer st.Close()

		events := eventlog.New(st)

		var client *sheets.Client
		if cfg.Sheets.Enabled() {
			baseURL := cfg.Sheets.BaseURL
			if baseURL == "" {
				baseURL = sheets.DefaultBaseURL
			}
			client = sheets.NewClient(baseURL, cfg.Sheets.SpreadsheetID)
		}

		sync := synclog.New(client, synclog.Config{
			SheetName:   cfg.Sheets.SheetName,
			APIKey:      cfg.Sheets.APIKey,
			BearerToken: cfg.Sheets.BearerToken,
			TokenExpiry: cfg.Sheets.TokenExpiry,
		}, st, events, log)

		ds = mcp.NewLocalSource(sync, events)
		log.Info("local mode", "storage", cfg.Storage.Path)
	}

	s := mcp.New(ds, Version, log)
	if err := mcpserver.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
