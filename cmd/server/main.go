package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hferris/pipecrm/internal/config"
	"github.com/hferris/pipecrm/internal/domain/activity"
	"github.com/hferris/pipecrm/internal/domain/company"
	"github.com/hferris/pipecrm/internal/domain/contact"
	"github.com/hferris/pipecrm/internal/domain/dashboard"
	"github.com/hferris/pipecrm/internal/domain/deal"
	"github.com/hferris/pipecrm/internal/domain/note"
	"github.com/hferris/pipecrm/internal/mcp"
	"github.com/hferris/pipecrm/internal/sqlite"
	"github.com/hferris/pipecrm/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:   parseLogLevel(cfg.Log.Level),
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if cfg.Seed.OnStart {
		seeded, err := db.Seed(context.Background())
		if err != nil {
			logger.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
		if seeded {
			logger.Info("seeded fixture dataset", "path", cfg.DB.Path)
		}
	}

	companyRepo := sqlite.NewCompanyRepository(db)
	contactRepo := sqlite.NewContactRepository(db)
	dealRepo := sqlite.NewDealRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	noteRepo := sqlite.NewNoteRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)

	services := transport.Services{
		Companies:  company.NewService(companyRepo, logger),
		Contacts:   contact.NewService(contactRepo, logger),
		Deals:      deal.NewService(dealRepo, logger),
		Activities: activity.NewService(activityRepo, logger),
		Notes:      note.NewService(noteRepo, logger),
		Dashboard:  dashboard.NewService(statsRepo, logger),
	}

	router := transport.NewRouter(services, db, logger)

	if cfg.MCP.Enabled {
		mcpServer := mcp.NewServer(mcp.Config{
			Services: mcp.Services{
				Contacts:   services.Contacts,
				Deals:      services.Deals,
				Activities: services.Activities,
				Dashboard:  services.Dashboard,
			},
			Logger: logger,
		})
		mcpHandler := sdkmcp.NewStreamableHTTPHandler(
			func(r *http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{
				Stateless:      false,
				SessionTimeout: 30 * time.Minute,
			},
		)
		router.Handle("/mcp", mcpHandler)
		router.Handle("/mcp/*", mcpHandler)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "mcp", cfg.MCP.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
