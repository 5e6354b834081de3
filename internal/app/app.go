package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/config"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/httpserver/deps"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/logger"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/store/sqlite"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/version"
	"github.com/achuajays/auto-job-linkedin-tracker-app/internal/web"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
	db     *sql.DB
}

func New() *App {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open SQLite early - fail fast if the file is unusable
	loggerClient.Infof("Opening database at %s", cfg.DBPath)
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		loggerClient.Errorf("Failed to open database: %v", err)
		os.Exit(1)
	}

	store := sqlite.New(db)
	if err := store.Migrate(context.Background()); err != nil {
		loggerClient.Errorf("Failed to migrate database: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Database initialized successfully")

	// Dashboard theme: built-in palette unless a theme file is configured
	theme := web.DefaultTheme()
	if cfg.ThemeFile != "" {
		theme, err = web.LoadTheme(cfg.ThemeFile)
		if err != nil {
			loggerClient.Errorf("Failed to load theme file: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("theme file loaded", logger.String("file", cfg.ThemeFile))
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		loggerClient.Errorf("Failed to parse templates: %v", err)
		os.Exit(1)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		Store:          store,
		Renderer:       renderer,
		Theme:          theme,
		AllowedOrigins: cfg.AllowedOrigins,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
		db:     db,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Job Tracker v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Job Tracker %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warnf("failed to close database: %v", err)
		} else {
			a.logger.Info("✅ Database closed cleanly")
		}
	}

	a.logger.Info("✅ Job Tracker stopped cleanly")
	return nil
}
