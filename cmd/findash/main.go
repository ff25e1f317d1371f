package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/findash/findash/cmd/findash/cli"
	"github.com/findash/findash/internal/app"
	"github.com/findash/findash/internal/dashboard"
	dashboardhttp "github.com/findash/findash/internal/dashboard/http"
	"github.com/findash/findash/internal/dashboard/svg"
	"github.com/findash/findash/internal/finance"
	"github.com/findash/findash/internal/observability"
	"github.com/findash/findash/internal/platform/cache"
	"github.com/findash/findash/internal/view"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "export" {
		os.Exit(runExport(context.Background(), os.Args[2:]))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig(".env")
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	generator := newGenerator(cfg, logger)
	dataset := finance.NewDataset(generator, time.Now())
	logger.Info("dataset generated",
		slog.String("dataset_id", dataset.ID.String()),
		slog.Int("points_per_series", generator.Len()),
	)

	metrics := observability.NewMetrics()
	metrics.ObserveDataset(dataset.ID.String(), map[string]int{
		string(finance.KindActual): len(dataset.Series(finance.KindActual)),
		string(finance.KindPlan):   len(dataset.Series(finance.KindPlan)),
	})

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, using in-process chart cache", slog.Any("error", err))
			redisClient = nil
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
		}
	}

	chartCache := dashboard.NewChartCache(redisClient, cfg.ChartCacheTTL, logger)
	chartCache.SetObserver(metrics)

	renderer := svg.Renderer{}
	service := dashboard.NewService(dataset, chartCache, dashboard.Renderers{
		Line:  renderer,
		Multi: renderer,
		Bar:   renderer,
	}, dashboard.ServiceConfig{VarianceThresholdPct: cfg.VarianceThresholdPct})

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		DashboardHandler: dashboardhttp.NewHandler(logger, service, templates, cfg.ExportRateLimitPerMinute),
		Metrics:          metrics,
		AccessLog:        !cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

func newGenerator(cfg *app.Config, logger *slog.Logger) *finance.Generator {
	seed, ok := cfg.Seed()
	if !ok {
		return finance.NewGenerator()
	}
	logger.Info("using seeded generator", slog.Uint64("seed", seed))
	return finance.NewGenerator(finance.WithSource(finance.NewSeededSource(seed)))
}

func runExport(ctx context.Context, args []string) int {
	opts, err := cli.ParseExportArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, cli.ErrUsage) {
			return 2
		}
		return 1
	}
	return cli.NewExportCLI().ExportCommand(ctx, opts)
}
