package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gym-battle/internal/clients/pokeapi"
	"github.com/KirkDiggler/gym-battle/internal/engine"
	"github.com/KirkDiggler/gym-battle/internal/metrics"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/gym"
	"github.com/KirkDiggler/gym-battle/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/gym-battle/internal/redis"
	"github.com/KirkDiggler/gym-battle/internal/render"
	"github.com/KirkDiggler/gym-battle/internal/repositories/battles"
)

const metricsNamespace = "gym_battle"

// appFlags are shared by every command that runs battles in-process
type appFlags struct {
	pokeAPIURL  string
	httpTimeout time.Duration
	redisAddr   string
	redisPass   string
	recordTTL   time.Duration
	battleTTL   time.Duration
	aiDelay     time.Duration
	movePool    int
	fetchLimit  int
	logLevel    string
}

func (f *appFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pokeAPIURL, "pokeapi-url", pokeapi.DefaultBaseURL, "PokeAPI v2 base URL")
	cmd.Flags().DurationVar(&f.httpTimeout, "http-timeout", 10*time.Second, "PokeAPI request timeout")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", "", "Redis address; battles and records stay in memory when empty")
	cmd.Flags().StringVar(&f.redisPass, "redis-pass", "", "Redis password")
	cmd.Flags().DurationVar(&f.recordTTL, "record-ttl", 24*time.Hour, "How long PokeAPI records stay in Redis")
	cmd.Flags().DurationVar(&f.battleTTL, "battle-ttl", 2*time.Hour, "How long an idle battle stays in Redis")
	cmd.Flags().DurationVar(&f.aiDelay, "ai-delay", battle.DefaultAIDelay, "Pause before the gym leader acts")
	cmd.Flags().IntVar(&f.movePool, "move-pool", gym.DefaultMovePoolSize, "Learnable moves fetched per Pokémon")
	cmd.Flags().IntVar(&f.fetchLimit, "fetch-limit", gym.DefaultFetchConcurrency, "Concurrent PokeAPI requests per stage")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// appOptions are the per-command parts of the wiring
type appOptions struct {
	renderer    render.Renderer
	registerer  prometheus.Registerer
	eventBus    events.EventBus
	autoAdvance bool
	logger      *slog.Logger
}

// app is the wired service graph
type app struct {
	battles battle.Service
	gym     gym.Service
	redis   redisclient.Client
}

func (a *app) close() {
	if a.redis != nil {
		_ = a.redis.Close() // nolint:errcheck // safe to ignore on shutdown
	}
}

func buildApp(ctx context.Context, f *appFlags, opts *appOptions) (*app, error) {
	logger := opts.logger
	a := &app{}

	var (
		repo        battles.Repository
		recordCache pokeapi.RecordCache
	)
	if f.redisAddr != "" {
		client, err := redisclient.NewClient(f.redisAddr, &redisclient.Options{
			Password:   f.redisPass,
			MaxRetries: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close() // nolint:errcheck // already failing
			return nil, fmt.Errorf("failed to reach redis at %s: %w", f.redisAddr, err)
		}
		a.redis = client

		repo, err = battles.NewRedisRepository(&battles.Config{Client: client, TTL: f.battleTTL})
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to create battle repository: %w", err)
		}
		recordCache, err = pokeapi.NewRedisRecordCache(&pokeapi.RedisRecordCacheConfig{Client: client, TTL: f.recordTTL})
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to create record cache: %w", err)
		}
		logger.Info("using redis", "addr", f.redisAddr)
	} else {
		repo = battles.NewInMemory()
		logger.Info("using in-memory battle repository")
	}

	provider, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     f.pokeAPIURL,
		HTTPTimeout: f.httpTimeout,
		RecordCache: recordCache,
		Metrics:     metrics.NewProviderMetrics(metricsNamespace, opts.registerer),
		Logger:      logger.With("component", "pokeapi"),
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	eng, err := engine.New(&engine.Config{Roller: dice.DefaultRoller})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	a.battles, err = battle.NewOrchestrator(&battle.Config{
		Engine:      eng,
		Repository:  repo,
		IDGenerator: idgen.NewUUID("battle_"),
		Renderer:    opts.renderer,
		EventBus:    opts.eventBus,
		Metrics:     metrics.NewBattleMetrics(metricsNamespace, opts.registerer),
		Logger:      logger.With("component", "battle"),
		AutoAdvance: opts.autoAdvance,
		AIDelay:     f.aiDelay,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create battle orchestrator: %w", err)
	}

	a.gym, err = gym.NewOrchestrator(&gym.Config{
		Provider:         provider,
		Battles:          a.battles,
		Roller:           dice.DefaultRoller,
		Logger:           logger.With("component", "gym"),
		MovePoolSize:     f.movePool,
		FetchConcurrency: f.fetchLimit,
	})
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create gym orchestrator: %w", err)
	}

	return a, nil
}
