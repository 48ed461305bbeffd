package common

import (
	"context"
	"log"
	"strings"

	"driveledger-go/internal/api"
	"driveledger-go/internal/database"
	"driveledger-go/internal/formance"
	"driveledger-go/internal/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// init loads environment variables from .env file if it exists
func init() {
	// Environment variables can also be set via shell export, docker, etc.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: No .env file found or unable to load it: %v\n", err)
	}
}

type Services struct {
	DbService       *database.Service
	Ledger          *api.LedgerService
	FormanceService *formance.Service // nil when the journal mirror is not configured
}

// InitializeLogger installs the global zap logger. "debug" selects the development config.
func InitializeLogger(level string) (*zap.Logger, func()) {
	var (
		logger *zap.Logger
		err    error
	)
	if strings.EqualFold(level, "debug") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(logger)

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			if !isIgnorableSyncError(err) {
				log.Printf("Failed to sync logger: %v\n", err)
			}
		}
	}

	return logger, cleanup
}

func InitializeServices(ctx context.Context, cfg *models.Config) (*Services, error) {
	dbService, err := database.NewService(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	services := &Services{
		DbService: dbService,
		Ledger:    api.NewLedgerService(dbService),
	}

	if cfg.Formance.Enabled() {
		formanceService, err := formance.NewService(ctx, cfg.Formance)
		if err != nil {
			dbService.Close()
			return nil, err
		}
		services.FormanceService = formanceService
		services.Ledger.WithJournal(formanceService)
	} else {
		zap.L().Info("Formance journal mirror disabled")
	}

	return services, nil
}

// InitializeDatabaseOnly initializes just the database service without the journal mirror
// Useful for setup and export tools
func InitializeDatabaseOnly(ctx context.Context, cfg *models.Config) (*database.Service, error) {
	dbService, err := database.NewService(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	return dbService, nil
}

func (cs *Services) Close() {
	if cs.DbService != nil {
		cs.DbService.Close()
	}
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "sync /dev/stderr: inappropriate ioctl for device") ||
		strings.Contains(msg, "sync /dev/stdout: inappropriate ioctl for device")
}
