package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/jask/helpie/internal/config"
	"github.com/jask/helpie/internal/metrics"
	"github.com/jask/helpie/internal/notify"
	"github.com/jask/helpie/internal/provider"
	"github.com/jask/helpie/internal/service"
	"github.com/jask/helpie/internal/session"
	"github.com/jask/helpie/internal/tui"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	recorder := metrics.New()
	if cfg.Metrics.ListenAddr != "" {
		srv := &http.Server{Addr: cfg.Metrics.ListenAddr, Handler: metricsMux(recorder), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", "addr", cfg.Metrics.ListenAddr, "err", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("metrics listening", "addr", cfg.Metrics.ListenAddr)
	}

	// state is rebuilt from the seed on every launch
	store := provider.NewStore(provider.Seed())
	tray := notify.NewTray(cfg.UI.ToastDuration, cfg.UI.MaxToasts)
	admin := &service.Admin{
		Providers:         store,
		Notifier:          tray,
		Metrics:           recorder,
		Logger:            logger,
		ActivityAutoClose: cfg.UI.ActivityToastDuration,
	}
	recorder.Providers(admin.Summary())

	app := tui.New(ctx, cfg, tui.Deps{
		Admin:    admin,
		Tray:     tray,
		Identity: session.NewStatic(cfg.Session.User),
		Logger:   logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes slog text records to the configured file. The terminal is
// owned by the program, so an empty path discards logs.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		return nil, nil, fmt.Errorf("parse level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.Path, "helpie")
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", cfg.Path, err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }, nil
}

func metricsMux(m *metrics.Prometheus) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", m.Handler())
	return r
}
