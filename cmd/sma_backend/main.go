package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/reolmarked/shelf_market_app/internal/adapters/database/pgsql"
	portssvc "github.com/reolmarked/shelf_market_app/internal/core/ports/services"
	"github.com/reolmarked/shelf_market_app/internal/core/services"
	"github.com/reolmarked/shelf_market_app/internal/dto"
	"github.com/reolmarked/shelf_market_app/internal/handlers"
	"github.com/reolmarked/shelf_market_app/internal/middleware"
	"github.com/reolmarked/shelf_market_app/internal/platform/config"
	"github.com/reolmarked/shelf_market_app/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterValidations(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, buildServices(dbPool))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the repositories and services onto the shared pool.
func buildServices(dbPool *pgxpool.Pool) *portssvc.ServiceContainer {
	tenantRepo := pgsql.NewPgxTenantRepository(dbPool)
	shelfRepo := pgsql.NewPgxShelfRepository(dbPool)
	leaseRepo := pgsql.NewPgxLeaseRepository(dbPool)
	productRepo := pgsql.NewPgxProductRepository(dbPool)
	saleRepo := pgsql.NewPgxSaleRepository(dbPool)
	settlementRepo := pgsql.NewPgxSettlementRepository(dbPool)
	paymentRepo := pgsql.NewPgxPaymentRepository(dbPool)

	return &portssvc.ServiceContainer{
		Lease:      services.NewLeaseService(tenantRepo, shelfRepo, leaseRepo),
		Product:    services.NewProductService(shelfRepo, productRepo),
		Sale:       services.NewSaleService(productRepo, leaseRepo, saleRepo),
		Settlement: services.NewSettlementService(tenantRepo, leaseRepo, saleRepo, settlementRepo),
		Payment:    services.NewPaymentService(tenantRepo, paymentRepo),
	}
}

// runMigrations applies all pending "up" migrations. It opens a temporary
// database/sql connection through the pgx stdlib driver, which is compatible
// with the main pool.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		migrationDB.Close()
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
