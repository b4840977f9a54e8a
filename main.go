// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/umpd-yara/yara-records/cliparse"
	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/middleware"
	"github.com/umpd-yara/yara-records/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect and verify
	gw, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL, cfg.Schema)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer gw.Close()

	if cfg.InitSchema {
		if err := db.CreateSchema(ctx, gw); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready")
	}

	if missing, err := db.MissingTables(ctx, gw); err != nil {
		slog.Error("schema check failed", "error", err)
	} else if len(missing) > 0 {
		slog.Warn("tables missing; pages reading them will show errors", "missing", missing)
	}

	// Create router
	mux := router.NewRouter(gw)

	// Create server
	server := http.Server{
		Handler: middleware.WithRequestID(middleware.Recover(mux)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "database", cfg.DatabaseType)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
