package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"

	"heatrecovery-cloud/internal/config"
	"heatrecovery-cloud/internal/observability/logging"
	"heatrecovery-cloud/internal/observability/metrics"
	recoveryapp "heatrecovery-cloud/internal/recovery/application"
	recoveryhttp "heatrecovery-cloud/internal/recovery/interfaces/http"
	telemetry "heatrecovery-cloud/internal/telemetry/domain"
	"heatrecovery-cloud/internal/telemetry/infrastructure/cosmos"
	"heatrecovery-cloud/internal/telemetry/infrastructure/instrumented"
	"heatrecovery-cloud/internal/telemetry/infrastructure/memory"
	telemetrypostgres "heatrecovery-cloud/internal/telemetry/infrastructure/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}

	metrics.Init()

	fetcher, closeStore, err := openFetcher(cfg, logger)
	if err != nil {
		logger.Fatalf("store error: %v", err)
	}
	defer closeStore()

	fetcher, err = instrumented.NewFetcher(fetcher, cfg.Store.Driver)
	if err != nil {
		logger.Fatalf("fetcher error: %v", err)
	}

	service, err := recoveryapp.NewService(fetcher, cfg.DeviceID, logger)
	if err != nil {
		logger.Fatalf("recovery service error: %v", err)
	}
	handler, err := recoveryhttp.NewHandler(service, logger)
	if err != nil {
		logger.Fatalf("recovery handler error: %v", err)
	}
	router := recoveryhttp.NewRouter(handler, recoveryhttp.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
	})

	server := &http.Server{Addr: cfg.Addr(), Handler: router}
	logger.WithFields(logrus.Fields{
		"addr":   cfg.Addr(),
		"store":  cfg.Store.Driver,
		"device": cfg.DeviceID,
	}).Info("http listening")
	logger.Fatal(server.ListenAndServe())
}

func openFetcher(cfg config.Config, logger *logrus.Logger) (telemetry.LatestReadingFetcher, func(), error) {
	noop := func() {}
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("pgx", cfg.Postgres.DSN)
		if err != nil {
			return nil, noop, err
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return telemetrypostgres.NewLatestReader(db, telemetrypostgres.WithTable(cfg.Postgres.Table)), func() { _ = db.Close() }, nil
	case config.DriverMemory:
		logger.Warn("memory store selected: readings are not persisted")
		return memory.NewReadingStore(), noop, nil
	default:
		querier, err := cosmos.NewContainerQuerier(cosmos.Options{
			Endpoint:    cfg.Cosmos.Endpoint,
			Key:         cfg.Cosmos.Key,
			DatabaseID:  cfg.Cosmos.DatabaseID,
			ContainerID: cfg.Cosmos.ContainerID,
		})
		if err != nil {
			return nil, noop, err
		}
		reader, err := cosmos.NewLatestReader(querier, cosmos.WithPartitionKey(cfg.Cosmos.PartitionKey))
		if err != nil {
			return nil, noop, err
		}
		return reader, noop, nil
	}
}
