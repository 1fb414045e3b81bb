package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	api "github.com/techsync/techsync-backend/api"
	"github.com/techsync/techsync-backend/config"
	"github.com/techsync/techsync-backend/database"
	"github.com/techsync/techsync-backend/models"
	"github.com/techsync/techsync-backend/services"
)

func main() {
	app := config.NewApp(config.Load())
	setupLogging(app)

	zlog.Info().Str("env", app.Env).Msg("Initializing app...")

	if err := app.Validate(); err != nil {
		zlog.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := openDatabase(app)
	if err != nil {
		zlog.Fatal().Err(err).Msg("error connecting to database")
	}

	// gen_random_uuid() backs the uuid column defaults
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		zlog.Warn().Err(err).Msg("could not enable pgcrypto extension")
	}

	currentDB := database.New(db)

	// If generating models, run generation and exit
	if app.GenerateModels {
		zlog.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db); err != nil {
			zlog.Fatal().Err(err).Msg("model generation failed")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if app.ColumnReportOnly {
		zlog.Info().Msg("Generating column mismatch report...")
		if err := models.GenerateColumnMismatchReport(db); err != nil {
			zlog.Fatal().Err(err).Msg("column report failed")
		}
		return
	}

	if app.AutoMigrate {
		if err := currentDB.Migrate(); err != nil {
			zlog.Fatal().Err(err).Msg("migration failed")
		}
		zlog.Info().Msg("database schema migrated")
	}

	// The server still starts without the assistant; its endpoints answer 503
	generator, err := services.NewGeminiGenerator(context.Background(), app.GeminiAPIKey, app.GeminiModel)
	if err != nil {
		zlog.Warn().Err(err).Msg("AI assistant disabled")
		generator = nil
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(app, currentDB, generator)
	if err != nil {
		zlog.Fatal().Err(err).Msg("error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

func setupLogging(app config.App) {
	zerolog.SetGlobalLevel(app.LogLevel)
	zerolog.TimeFieldFormat = time.RFC3339
	if !app.IsProduction() {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// openDatabase connects to the primary and, when configured, registers a read
// replica. Writes and transactions always go to the primary.
func openDatabase(app config.App) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             app.DBSlowQuery,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !app.IsProduction(),
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  app.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(app.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(app.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(app.DBConnMaxLifetime)

	if app.ReplicaDSN != "" {
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{
				DSN:                  app.ReplicaDSN,
				PreferSimpleProtocol: true,
			})},
			Policy: dbresolver.RandomPolicy{},
		}).
			SetMaxOpenConns(app.DBMaxOpenConns).
			SetMaxIdleConns(app.DBMaxIdleConns).
			SetConnMaxLifetime(app.DBConnMaxLifetime)
		if err := db.Use(resolver); err != nil {
			return nil, fmt.Errorf("register read replica: %w", err)
		}
		zlog.Info().Msg("read replica registered")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("test database connection: %w", err)
	}
	return db, nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
