package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/gym-battle/internal/entities"
	"github.com/KirkDiggler/gym-battle/internal/handlers/battle/v1alpha1"
	"github.com/KirkDiggler/gym-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/gym-battle/internal/render"
	"github.com/KirkDiggler/gym-battle/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort         int
	httpPort         int
	telemetryEnabled bool
	serverFlags      appFlags
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the battle gRPC server. An HTTP listener serves Prometheus metrics
at /metrics and live battle snapshots at /battles/{id}/stream.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8080, "HTTP port for metrics and the render stream")
	serverCmd.Flags().BoolVar(&telemetryEnabled, "telemetry", false, "Export traces over OTLP HTTP")
	serverFlags.register(serverCmd)
}

func runServer(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(serverFlags.logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if telemetryEnabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			return fmt.Errorf("failed to set up telemetry: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				logger.Warn("failed to flush traces", "error", err)
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	hub, err := render.NewHub(&render.HubConfig{Logger: logger.With("component", "stream")})
	if err != nil {
		return fmt.Errorf("failed to create render hub: %w", err)
	}
	defer hub.Close()

	bus := events.NewBus()
	bus.SubscribeFunc(battle.EventBattleEnded, 0, func(_ context.Context, event events.Event) error {
		if state, ok := event.Source().(*entities.BattleState); ok {
			logger.Info("battle finished", "battle_id", state.ID, "winner", state.Winner, "turns", state.Turn)
		}
		return nil
	})

	a, err := buildApp(ctx, &serverFlags, &appOptions{
		renderer:    hub,
		registerer:  registry,
		eventBus:    bus,
		autoAdvance: true,
		logger:      logger,
	})
	if err != nil {
		return err
	}
	defer a.close()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BattleService: a.battles,
		GymService:    a.gym,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle handler: %w", err)
	}

	grpcLogger := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpcLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)
	v1alpha1.RegisterBattleServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	mux.Handle("GET /battles/{id}/stream", hub)
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server starting", "port", grpcPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve gRPC: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("HTTP server starting", "port", httpPort)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP shutdown failed", "error", err)
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}
