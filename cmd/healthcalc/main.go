package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/healthcalc/healthcalc/internal/api"
	"github.com/healthcalc/healthcalc/internal/config"
	"github.com/healthcalc/healthcalc/internal/engine"
	"github.com/healthcalc/healthcalc/internal/metrics"
	"github.com/healthcalc/healthcalc/internal/profile"
	"github.com/healthcalc/healthcalc/internal/remote"
	"github.com/healthcalc/healthcalc/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file; empty runs with defaults")
	uiDir := flag.String("ui-dir", "", "serve the calculator page static files from this directory; leave empty to disable")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	slog.Info("healthcalc starting", "config", *configPath)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			slog.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}

	slog.Info("config loaded",
		"http_port", cfg.Server.HTTPPort,
		"auth_mode", cfg.Server.Auth.Mode,
		"variant", cfg.Formula.Variant,
		"default_locale", cfg.Formula.DefaultLocale,
		"remote_enabled", cfg.Remote.Enabled,
		"profile_backend", cfg.Profile.Backend,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	eng := engine.New(cfg.Formula.ResolveVariant())

	profiles, err := profile.Open(ctx, cfg.Profile)
	if err != nil {
		slog.Error("failed to open profile store", "backend", cfg.Profile.Backend, "err", err)
		os.Exit(1)
	}
	defer profiles.Close()

	// Remote delegation is optional; a nil fetcher keeps every calculator local.
	var fetcher engine.Fetcher
	if cfg.Remote.Enabled {
		client, err := remote.New(cfg.Remote)
		if err != nil {
			slog.Error("failed to build remote client", "err", err)
			os.Exit(1)
		}
		if cfg.Remote.Key() == "" {
			slog.Warn("remote API key is empty", "key_env", cfg.Remote.KeyEnv)
		}
		fetcher = client
	}

	reg := metrics.New()

	// WebSocket hub: pushes profile changes to open pages, resyncs periodically.
	hub := ws.New(profiles, cfg.Server.WSResyncInterval, cfg.Server.CORS.AllowedOrigins)
	reg.SetClientsFunc(hub.Count)
	go hub.Run(ctx)

	srv := api.NewServer(api.Options{
		Engine:        eng,
		Profiles:      profiles,
		Metrics:       reg,
		Fetcher:       fetcher,
		Remote:        cfg.Remote,
		Hub:           hub,
		Auth:          cfg.Server.Auth,
		CORS:          cfg.Server.CORS,
		DefaultLocale: cfg.Formula.Locale(),
	})

	// Hot reload: only the formula section applies without a restart.
	if *configPath != "" {
		go func() {
			err := config.Watch(ctx, *configPath, func(next *config.Config) {
				eng.SetVariant(next.Formula.ResolveVariant())
				srv.SetDefaultLocale(next.Formula.Locale())
			})
			if err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	handler := srv.Router()
	if *uiDir != "" {
		handler = withUI(handler, *uiDir)
		slog.Info("serving UI static files", "dir", *uiDir)
	}

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("healthcalc shutting down")
	shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
	defer done()
	httpSrv.Shutdown(shutdownCtx) //nolint:errcheck
}

// withUI serves files from dir for every path the API does not own. Unknown
// paths get index.html.
func withUI(apiHandler http.Handler, dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	mux := http.NewServeMux()
	for _, prefix := range []string{"/api/", "/calculate/", "/ws/", "/metrics"} {
		mux.Handle(prefix, apiHandler)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		fs.ServeHTTP(w, r)
	})
	return mux
}
