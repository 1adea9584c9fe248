package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	liftlog "github.com/claude/liftlog"
	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/eventlog"
	"github.com/claude/liftlog/internal/server"
	"github.com/claude/liftlog/internal/sheets"
	"github.com/claude/liftlog/internal/store"
	"github.com/claude/liftlog/internal/synclog"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftlog", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("LiftLog starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open the local durable store (runs migrations)
	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open local store", "path", cfg.Storage.Path, "error", err)
		os.Exit(1)
	}
	defer st.Close()
	log.Info("local store ready", "path", cfg.Storage.Path)

	events := eventlog.New(st)

	// Remote spreadsheet store, when configured
	var client *sheets.Client
	if cfg.Sheets.Enabled() {
		baseURL := cfg.Sheets.BaseURL
		if baseURL == "" {
			baseURL = sheets.DefaultBaseURL
		}
		client = sheets.NewClient(baseURL, cfg.Sheets.SpreadsheetID)
		log.Info("remote sync enabled", "spreadsheet", cfg.Sheets.SpreadsheetID, "sheet", cfg.Sheets.SheetName)
	} else {
		log.Info("remote sync disabled, running local-only")
	}

	sync := synclog.New(client, synclog.Config{
		SheetName:   cfg.Sheets.SheetName,
		APIKey:      cfg.Sheets.APIKey,
		BearerToken: cfg.Sheets.BearerToken,
		TokenExpiry: cfg.Sheets.TokenExpiry,
	}, st, events, log)

	// Create server
	srv := server.New(sync, events, cfg.Auth.APIKey, log)

	// Serve embedded frontend
	webDist, err := fs.Sub(liftlog.WebFS, "web/dist")
	if err != nil {
		log.Error("failed to load embedded frontend", "error", err)
		os.Exit(1)
	}
	srv.SetFrontend(webDist)

	// Start server — tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
