// Package bootstrap wires configuration, fixtures, stores, and services into
// a ready-to-use runtime. It is the only place that knows how everything
// fits together.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"pulseconnect/internal/config"
	"pulseconnect/internal/fixtures"
	"pulseconnect/internal/observability"
	"pulseconnect/internal/service"
	"pulseconnect/internal/store"
)

// Runtime holds the constructed services and their shutdown hook.
type Runtime struct {
	Config  *config.Config
	Users   *service.UserService
	Posts   *service.PostService
	Stories *service.StoryService

	shutdownTracing func(context.Context) error
}

// InitRuntime loads the startup datasets and constructs the three services
// with their stores. The dataset load happens exactly once; everything the
// services touch afterwards is in memory.
func InitRuntime(cfg *config.Config) (*Runtime, error) {
	observability.SetLevel(logLevel(cfg.LogLevel))

	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "pulseconnect",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}

	ds, err := fixtures.Load()
	if err != nil {
		return nil, fmt.Errorf("fixture load failed: %w", err)
	}

	userStore := store.NewUserStore(ds.Users)
	postStore := store.NewPostStore(ds.Posts)
	storyStore := store.NewStoryStore(ds.Stories)

	latency := service.Latency{Scale: cfg.LatencyScale}
	users := service.NewUserService(userStore, cfg.CurrentUsername, latency)
	posts := service.NewPostService(postStore, users, userStore, latency)
	stories := service.NewStoryService(storyStore, users, latency)

	return &Runtime{
		Config:          cfg,
		Users:           users,
		Posts:           posts,
		Stories:         stories,
		shutdownTracing: shutdown,
	}, nil
}

// Shutdown flushes tracing.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r.shutdownTracing == nil {
		return nil
	}
	return r.shutdownTracing(ctx)
}

func logLevel(level string) slog.Level {
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
