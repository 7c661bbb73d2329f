package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ersonp/sop-core/internal/application/handlers"
	"github.com/ersonp/sop-core/internal/domain/entities"
	"github.com/ersonp/sop-core/internal/domain/services"
	"github.com/ersonp/sop-core/internal/infrastructure/config"
	llm "github.com/ersonp/sop-core/internal/infrastructure/llm/openai"
	"github.com/ersonp/sop-core/internal/infrastructure/storage/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and storage are internal.
type Deps struct {
	Config         *config.Config
	Logger         *zap.Logger
	AssetHandler   *handlers.AssetHandler
	HistoryHandler *handlers.HistoryHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	store    *sqlite.Store
	history  *services.HistoryService
	registry *services.RegistryService
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	storagePath := cfg.StoragePath(cwd)
	if err := os.MkdirAll(filepath.Dir(storagePath), 0755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}

	store, err := sqlite.NewStore(config.StorageConfig{Path: storagePath})
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring storage schema: %w", err)
	}

	history := services.NewHistoryService(store, logger)
	if _, err := history.Load(ctx); err != nil {
		var corrupt *entities.CorruptStateError
		if !errors.As(err, &corrupt) {
			return fmt.Errorf("loading history: %w", err)
		}
		fmt.Fprintf(os.Stderr, "warning: %v (starting with empty history)\n", err)
	}

	registry := services.NewRegistryService(services.DefaultAssets())

	deps := &internalDeps{
		Deps: Deps{
			Config:         cfg,
			Logger:         logger,
			AssetHandler:   handlers.NewAssetHandler(registry),
			HistoryHandler: handlers.NewHistoryHandler(history),
		},
		store:    store,
		history:  history,
		registry: registry,
	}

	return fn(deps)
}

// withGenerateHandler builds the OpenAI client on top of the shared deps.
// Kept separate so read-only commands work without a configured credential.
func withGenerateHandler(ctx context.Context, fn func(*handlers.GenerateHandler, *Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		client, err := llm.NewClient(d.Config.LLM, d.Logger)
		if err != nil {
			return err
		}
		return fn(handlers.NewGenerateHandler(client, d.history), &d.Deps)
	})
}

// newLogger builds the process logger. Display output stays on stdout via
// fmt; the logger writes structured records to stderr.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if globalVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
