// cmd/web/main.go
//
// Names site – HTTP entry point.
//
// Start-up
// --------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Load config (defaults → conf/global.yaml → NAMES_ env).
//
//  3. Start daily rotating logger (tees to console when running in a TTY).
//
//  4. Open the optional GeoLite2 reader and the optional alias DB.
//
//  5. Build the content client over a shared TTL cache, and the view set.
//
//  6. Build the chi router and serve until SIGINT/SIGTERM.
//
// Request flow
// ------------
//
//	RequestID → RealIP → Recoverer → ForceHTTPS → Security
//	  → requestinfo → Canonicalize → AliasRedirect → component routes
//
// Canonicalize runs before any page handler, so every page sees only
// canonical paths.  /metrics and /healthz are plain routes on the same
// router and are already canonical.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yanizio/babynames/internal/cache"
	"github.com/yanizio/babynames/internal/component"
	"github.com/yanizio/babynames/internal/config"
	"github.com/yanizio/babynames/internal/content"
	"github.com/yanizio/babynames/internal/database"
	"github.com/yanizio/babynames/internal/logger"
	"github.com/yanizio/babynames/internal/middleware"
	"github.com/yanizio/babynames/internal/requestinfo"
	"github.com/yanizio/babynames/internal/routing"
	"github.com/yanizio/babynames/internal/server"
	"github.com/yanizio/babynames/internal/view"

	_ "github.com/yanizio/babynames/components/articles"
	_ "github.com/yanizio/babynames/components/names"
	_ "github.com/yanizio/babynames/components/stories"
)

const serverEnvPath = "/usr/local/etc/babynames/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, cfg.Log.Level, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer logOut.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Request enrichment (GeoLite2 optional) ─────────────────────
	//
	enricher, err := requestinfo.NewEnricher(cfg.Geo.DBPath)
	if err != nil {
		logOut.Fatalw("open geo db", "err", err)
	}
	defer enricher.Close()

	//
	// ── 2.  Alias DB (optional) ─────────────────────────────────────────
	//
	var aliases *routing.AliasCache
	if cfg.Database.DSN != "" {
		db, err := database.Open(ctx, cfg.Database.DSN)
		if err != nil {
			logOut.Fatalw("connect alias DB", "err", err)
		}
		defer db.Close()

		aliases = routing.NewAliasCache(db.DB, cfg.Database.AliasTTL)
		if err := aliases.Load(ctx); err != nil {
			// Not fatal: the cache retries on the next stale read.
			logOut.Warnw("initial alias load failed", "err", err)
		}
		logOut.Infow("alias redirects enabled", "aliases", aliases.Len())
	}

	//
	// ── 3.  Content client and views ───────────────────────────────────
	//
	client, err := content.New(content.Options{
		BaseURL: cfg.Content.BaseURL,
		Timeout: cfg.Content.Timeout,
		Retries: cfg.Content.Retries,
		Cache:   cache.New[content.Key, any](cfg.Content.CacheSize, cfg.Content.CacheTTL),
	})
	if err != nil {
		logOut.Fatalw("content client", "err", err)
	}

	views, err := view.New()
	if err != nil {
		logOut.Fatalw("parse templates", "err", err)
	}

	deps := component.Deps{
		Content:  client,
		View:     views,
		SiteName: cfg.Site.Name,
		BaseURL:  cfg.Site.BaseURL,
	}

	//
	// ── 4.  Router ──────────────────────────────────────────────────────
	//
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.ForceHTTPS(cfg.HTTP.ForceHTTPS))
	r.Use(middleware.Security)
	r.Use(enricher.Middleware)
	r.Use(routing.Canonicalize)
	if aliases != nil {
		r.Use(routing.AliasRedirect(aliases))
	}

	// NotFound must be set before Mount so sub-routers inherit it.
	r.NotFound(deps.NotFound)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	for _, c := range component.All() {
		r.Mount("/"+c.Name(), c.Routes(deps))
		logOut.Debugw("component mounted", "component", c.Name())
	}

	//
	// ── 5.  Serve ───────────────────────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, r, server.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
		Idle:  cfg.HTTP.IdleTimeout,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("shutdown", zap.Error(err))
		}
	}()

	logOut.Infow("listening", "addr", cfg.HTTP.ListenAddr, "base_url", client.BaseURL())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logOut.Fatalw("http server", "err", err)
	}
	logOut.Info("server stopped")
}
