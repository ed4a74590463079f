package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/content-site-backend/api"
	"github.com/rpupo63/content-site-backend/config"
	"github.com/rpupo63/content-site-backend/database"
	"github.com/rpupo63/content-site-backend/errs"
	"github.com/rpupo63/content-site-backend/models"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded, using process environment")
	}

	settings, err := config.Load(config.New())
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setupLogging(settings.LogLevel)

	db, err := openDatabase(settings)
	if err != nil {
		log.Fatal().Err(err).Str("dbType", settings.DBType).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	// If generating models, run generation and exit
	if settings.GenerateModels {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db); err != nil {
			log.Fatal().Err(err).Msg("Model generation failed")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if settings.GenerateColumnReport {
		models.GenerateColumnMismatchReport(db)
		return
	}

	if settings.AutoMigrate {
		if err := models.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("Auto migration failed")
		}
		log.Info().Msg("Database schema migrated")
	}

	currentDB := database.New(db)

	if settings.SeedFile != "" {
		if err := seed(currentDB, settings.SeedFile); err != nil {
			log.Fatal().Err(err).Str("file", settings.SeedFile).Msg("Seeding failed")
		}
		log.Info().Str("file", settings.SeedFile).Msg("Seed content loaded")
	}

	server, err := api.NewServer(currentDB, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	// Listen for interrupt signals to gracefully shutdown the server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		server.ShutdownGracefully(30 * time.Second)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339
}

// openDatabase connects to the configured store and attaches read replicas when listed
func openDatabase(settings config.Settings) (*gorm.DB, error) {
	gormLogger := logger.New(
		stdlog.New(log.With().Str("component", "gorm").Logger(), "", 0),
		logger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	gormConfig := &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	}

	var db *gorm.DB
	var err error
	switch settings.DBType {
	case config.DBTypePostgres:
		log.Info().Msg("Connecting to Postgres database...")
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  settings.DatabaseURL,
			PreferSimpleProtocol: true,
		}), gormConfig)
	case config.DBTypeSQLite:
		log.Info().Str("path", settings.SQLitePath).Msg("Opening SQLite database...")
		if err := os.MkdirAll(filepath.Dir(settings.SQLitePath), 0o755); err != nil {
			return nil, err
		}
		db, err = gorm.Open(database.SQLiteDialector(settings.SQLitePath+"?_busy_timeout=5000&_journal_mode=WAL"), gormConfig)
	default:
		return nil, errs.NewEnvironmentVariableError("DB_TYPE")
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	sqlDB.SetMaxIdleConns(settings.MaxIdleConns)

	if len(settings.ReplicaURLs) > 0 {
		if settings.DBType != config.DBTypePostgres {
			log.Warn().Msg("DB_REPLICA_URLS is only used with postgres, ignoring")
			return db, nil
		}
		replicas := make([]gorm.Dialector, 0, len(settings.ReplicaURLs))
		for _, dsn := range settings.ReplicaURLs {
			replicas = append(replicas, postgres.New(postgres.Config{
				DSN:                  dsn,
				PreferSimpleProtocol: true,
			}))
		}
		if err := database.UseReplicas(db, replicas...); err != nil {
			return nil, errs.NewConfigError("DB_REPLICA_URLS", err)
		}
		log.Info().Int("replicas", len(replicas)).Msg("Read replicas registered")
	}

	return db, nil
}

func seed(db database.Database, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return db.Seed(f)
}
