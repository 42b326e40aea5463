package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nba-stats/internal/config"
	"github.com/riskibarqy/nba-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/nba-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/nba-stats/internal/platform/logging"
	"github.com/riskibarqy/nba-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// OpenDB opens the traced Postgres pool and checks that it answers.
func OpenDB(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := otelsqlx.Open("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBQueryTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %s: %w", redactDBURL(cfg.DBURL), err)
	}

	logger.Info("database connected",
		"db", redactDBURL(cfg.DBURL),
		"max_open_conns", cfg.DBMaxOpenConns,
		"max_idle_conns", cfg.DBMaxIdleConns,
	)
	return db, nil
}

func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}

	playerRepo := postgres.NewPlayerRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	franchiseRepo := postgres.NewFranchiseRepository(db)
	retrieveRepo := postgres.NewRetrieveRepository(db)

	playerSvc := usecase.NewPlayerService(playerRepo)
	teamSvc := usecase.NewTeamService(teamRepo)
	franchiseSvc := usecase.NewFranchiseService(franchiseRepo)
	retrieveSvc := usecase.NewRetrieveService(retrieveRepo, logger)

	var metrics *httpapi.Metrics
	if cfg.MetricsEnabled {
		metrics = httpapi.NewMetrics()
	}

	handler := httpapi.NewHandler(
		playerSvc,
		teamSvc,
		franchiseSvc,
		retrieveSvc,
		db,
		metrics,
		logger,
		cfg.ExposeErrorDetails,
	)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		QueryTimeout:       cfg.DBQueryTimeout,
		Metrics:            metrics,
	}, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func NewImportService(cfg config.Config, db *sqlx.DB, logger *logging.Logger) *usecase.ImportService {
	return usecase.NewImportService(
		postgres.NewPlayerRepository(db),
		postgres.NewFranchiseRepository(db),
		cfg.ImportWorkers,
		cfg.ImportBatchSize,
		logger,
	)
}
