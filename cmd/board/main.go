package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"departure-board-service/internal/domain/entity"
	"departure-board-service/internal/infrastructure/config"
	"departure-board-service/internal/infrastructure/oauth"
	"departure-board-service/internal/infrastructure/persistence"
	"departure-board-service/internal/infrastructure/router"
	"departure-board-service/internal/interface/feed"
	"departure-board-service/internal/interface/repository"
	"departure-board-service/internal/interface/sink"
	"departure-board-service/internal/interface/web"
	"departure-board-service/internal/usecase"
	"departure-board-service/pkg/logger"
	"departure-board-service/pkg/metrics"
	"departure-board-service/templates"

	domainRepo "departure-board-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger(logger.Options{}).Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer log.Sync()
	log.Info("Starting Departure Board Service",
		"version", cfg.AppVersion,
		"airport", cfg.DepartureAirport,
		"loop", cfg.LoopMode())

	// Set up context with cancellation on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.NewMetrics("departure_board")
	location := cfg.Location()

	table := loadLocalizationTable(ctx, cfg, log)
	log.Info("Loaded localization data", "destinations", table.Len())

	renderer, err := templates.NewBoardRenderer(cfg.RefreshSeconds)
	if err != nil {
		log.Fatal("Failed to create board renderer", "error", err)
	}

	// Set up sinks
	sinkRouter := router.NewFanoutRouter(m, log)
	if cfg.OutputHTMLPath != "" {
		sinkRouter.Register(sink.NewHTMLFileSink(cfg.OutputHTMLPath, renderer))
	}
	if cfg.OutputJSONPath != "" {
		sinkRouter.Register(sink.NewJSONFileSink(cfg.OutputJSONPath))
	}

	if cfg.GCSBucket != "" {
		storageClient, err := oauth.NewGCSCredentials(cfg.GCSCredentialsFile, log).NewStorageClient(ctx)
		if err != nil {
			log.Fatal("Failed to create storage client", "error", err)
		}
		defer storageClient.Close()
		sinkRouter.Register(sink.NewObjectSink(sink.NewGCSStore(storageClient, cfg.GCSBucket), cfg.GCSObjectPrefix, renderer))
	}

	var boardRepo domainRepo.BoardRepository
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		defer disconnectMongo(mongoClient, log)

		boardRepo = repository.NewMongoBoardRepository(db)
		sinkRouter.Register(sink.NewBoardStoreSink(boardRepo, log))
	}

	feedClient := feed.NewAviationStackClient(feed.Options{
		BaseURL:           cfg.FeedBaseURL,
		AccessKey:         cfg.FeedAccessKey,
		PageLimit:         cfg.FeedPageLimit,
		MaxPages:          cfg.FeedMaxPages,
		Timeout:           cfg.FeedTimeout,
		RequestsPerSecond: cfg.FeedRequestsPerSecond,
		CacheTTL:          cfg.SnapshotTTL(),
	}, log)

	opts := usecase.BoardOptions{
		Location:       location,
		Language:       cfg.BoardLanguage,
		DelayThreshold: cfg.DelayThreshold,
	}
	builder := usecase.NewBoardBuilder(table, opts, log)
	processor := usecase.NewBoardProcessor(feedClient, builder, sinkRouter, m, log, cfg.DepartureAirport, opts)

	if !cfg.LoopMode() {
		runOnce(ctx, cfg, processor, m, log)
		return
	}

	server := web.NewBoardServer(renderer, m, log, cfg.AppVersion)
	sinkRouter.Register(server)
	if boardRepo != nil {
		if board, err := boardRepo.FindLatest(ctx, cfg.DepartureAirport); err == nil {
			server.Publish(ctx, board)
			log.Info("Serving stored board until the first run", "runId", board.RunID)
		}
	}

	if err := runLoop(ctx, cfg, processor, server, log); err != nil {
		log.Error("Departure Board Service stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("Departure Board Service stopped")
}

// loadLocalizationTable merges rows stored in Postgres over the built-in
// defaults. A database failure is not fatal.
func loadLocalizationTable(ctx context.Context, cfg *config.Config, log logger.Logger) *entity.LocalizationTable {
	defaults := config.DefaultDestinations()
	if cfg.PostgresDSN == "" {
		return entity.NewLocalizationTable(defaults)
	}

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN, &repository.DestinationName{})
	if err != nil {
		log.Warn("Failed to connect to PostgreSQL, using built-in destinations", "error", err)
		return entity.NewLocalizationTable(defaults)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	stored, err := repository.NewGormDestinationRepository(gormDB).ListAll(ctx)
	if err != nil {
		log.Warn("Failed to load destinations, using built-in destinations", "error", err)
		return entity.NewLocalizationTable(defaults)
	}

	return entity.NewLocalizationTable(defaults, stored)
}

func runOnce(ctx context.Context, cfg *config.Config, processor *usecase.BoardProcessor, m *metrics.Metrics, log logger.Logger) {
	_, runErr := processor.Run(ctx)

	if cfg.PushgatewayURL != "" {
		if err := m.Push(cfg.PushgatewayURL, "departure_board"); err != nil {
			log.Error("Failed to push metrics", "error", err)
		}
	}

	if runErr != nil {
		log.Error("Board run failed", "error", runErr)
		log.Sync()
		os.Exit(1)
	}
}

func runLoop(ctx context.Context, cfg *config.Config, processor *usecase.BoardProcessor, server *web.BoardServer, log logger.Logger) error {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.LoopInterval)
		defer ticker.Stop()

		for {
			// Failed runs are already logged and published as error boards
			processor.Run(ctx)

			select {
			case <-ctx.Done():
				log.Info("Board loop stopped")
				return nil
			case <-ticker.C:
			}
		}
	})

	return g.Wait()
}

func disconnectMongo(client *mongo.Client, log logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}
}
