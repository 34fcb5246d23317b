package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/guardshell/riskscan/internal/adapters/breach"
	"github.com/guardshell/riskscan/internal/adapters/dnsclient"
	"github.com/guardshell/riskscan/internal/adapters/storage"
	"github.com/guardshell/riskscan/internal/application"
	"github.com/guardshell/riskscan/internal/config"
	"github.com/guardshell/riskscan/internal/domain/analyzers"
	"github.com/guardshell/riskscan/internal/handlers"
	"github.com/guardshell/riskscan/internal/ports"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var store ports.Store
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		if err := pg.InitSchema(); err != nil {
			slog.Error("failed to initialize schema", "error", err)
			os.Exit(1)
		}
		store = pg
		slog.Info("using postgres store")
	} else {
		store = storage.NewMemoryStore()
		slog.Info("using in-memory store; history is session-scoped")
	}
	defer store.Close()

	resolver := dnsclient.New(cfg.DoHEndpoint)
	breachDB := breach.New(cfg.BreachAPIURL, cfg.BreachAPIKey)

	// Analyzer construction validates the catalogs; a catalog referencing a
	// category with no recommendation fails here, at startup.
	urlAnalyzer, err := analyzers.NewURLAnalyzer()
	if err != nil {
		slog.Error("invalid url catalog", "error", err)
		os.Exit(1)
	}
	messageAnalyzer, err := analyzers.NewMessageAnalyzer()
	if err != nil {
		slog.Error("invalid message catalog", "error", err)
		os.Exit(1)
	}
	emailAnalyzer, err := analyzers.NewEmailAnalyzer(resolver, breachDB, cfg.EnrichmentTimeout, slog.Default())
	if err != nil {
		slog.Error("invalid email catalog", "error", err)
		os.Exit(1)
	}

	service := application.NewScanService(urlAnalyzer, messageAnalyzer, emailAnalyzer, store, slog.Default())

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handlers.NewScanHandler(service).Register(router)

	slog.Info("riskscan server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
