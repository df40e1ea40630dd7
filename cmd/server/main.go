package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"studytrack/adapters/excel"
	"studytrack/adapters/llm"
	"studytrack/adapters/postgres"
	"studytrack/adapters/postgres/migrations"
	"studytrack/app"
	"studytrack/internal"
	"studytrack/internal/config"
	"studytrack/internal/ops"
	"studytrack/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

func main() {
	// .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migrator := migrations.NewMigrator(db.DB)
	if err := migrator.Up(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	status, err := migrator.Status(ctx)
	if err != nil {
		log.Fatalf("Failed to read migration status: %v", err)
	}
	logger.Info("database schema ready, %d migrations applied", len(status))

	llmClient, err := llm.NewClient(llm.Config{
		APIKey:        cfg.AI.OpenAIKey,
		SystemContext: cfg.AI.SystemContext,
		Temperature:   cfg.AI.Temperature,
		Timeout:       60 * time.Second,
	})
	if err != nil {
		log.Fatalf("Failed to create LLM client: %v", err)
	}

	sessionRepo := postgres.NewSessionRepository(db)
	observer := logger.StatsObserver()

	dashboard := app.NewDashboardService(sessionRepo, observer)
	history := app.NewHistoryService(sessionRepo, observer)
	insights := app.NewInsightsService(sessionRepo)
	recommendations := app.NewRecommendationService(dashboard, insights, llmClient, cfg.AI.OpenAIModel, cfg.AI.MaxTokens)
	reports := app.NewReportService(sessionRepo, dashboard, history, excel.NewReportWriter())

	server := ui.NewServer(
		ui.Config{Port: cfg.Server.Port, GinMode: cfg.Server.GinMode},
		ui.NewSessionHandlers(sessionRepo, logger),
		dashboard, history, recommendations, reports, logger,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(ctx, cfg.Server.Port)
	})

	if cfg.Profiling.Enabled {
		opsSrv := &http.Server{
			Addr:    ":" + cfg.Profiling.Port,
			Handler: ops.NewRouter(func() bool { return db.Ping() == nil }),
		}
		g.Go(func() error {
			logger.Info("ops server listening on :%s", cfg.Profiling.Port)
			return opsSrv.ListenAndServe()
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return opsSrv.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil && err != http.ErrServerClosed && err != context.Canceled {
		log.Fatalf("Server failed: %v", err)
	}
	logger.Info("shutdown complete")
}
