package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/zap-roadmap/catalog"
	"github.com/danielhkuo/zap-roadmap/cliparse"
	"github.com/danielhkuo/zap-roadmap/logging"
	"github.com/danielhkuo/zap-roadmap/refresh"
	"github.com/danielhkuo/zap-roadmap/roadapi"
	"github.com/danielhkuo/zap-roadmap/router"
	"github.com/danielhkuo/zap-roadmap/store"
	"github.com/danielhkuo/zap-roadmap/voting"
)

func main() {
	var err error

	cliparse.LoadDotEnv(".env")
	logging.Setup("zap-roadmap")

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Ledger client
	opts := []roadapi.Option{roadapi.WithTimeout(cfg.HTTPTimeout)}
	if cfg.FallbackAPIURL != "" {
		opts = append(opts, roadapi.WithFallback(cfg.FallbackAPIURL))
	}
	client := roadapi.New(cfg.APIURL, opts...)

	st := store.New(catalog.Features())
	votes := voting.NewService(st, client)
	refresher := refresh.NewRefresher(st, client)

	// signal.NotifyContext cancels background work on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial vote counts
	go votes.Run(ctx)

	// Donation refresh: now, then every interval
	loop := refresh.NewLoop(refresher.Run, cfg.RefreshInterval)
	if err := loop.Start(ctx); err != nil {
		slog.Error("refresh loop failed to start", "error", err)
		os.Exit(1)
	}
	defer loop.Stop()

	// Create router
	mux, err := router.NewRouter(st, votes, client, cfg)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	go func() {
		<-ctx.Done()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "api", cfg.APIURL, "refresh", cfg.RefreshInterval.String())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
