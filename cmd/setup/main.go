package main

import (
	"context"
	"flag"
	"fmt"

	"driveledger-go/internal/common"
	"driveledger-go/internal/config"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	seedFlag := flag.Bool("seed", true, "Load the demo inventory and expenses after creating the tables")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	_, loggerCleanup := common.InitializeLogger(cfg.Log.Level)
	defer loggerCleanup()

	zap.L().Info("Connecting to database", zap.String("path", cfg.Database.Path))
	dbService, err := common.InitializeDatabaseOnly(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbService.Close()

	// Drops and recreates every table
	if err := dbService.Initialize(ctx); err != nil {
		zap.L().Fatal("Failed to initialize schema", zap.Error(err))
	}

	if *seedFlag {
		if err := dbService.Seed(ctx); err != nil {
			zap.L().Fatal("Failed to seed database", zap.Error(err))
		}
	}

	counts, err := dbService.CountRecords(ctx)
	if err != nil {
		zap.L().Fatal("Failed to count records", zap.Error(err))
	}

	common.PrintHeader("LEDGER INITIALIZED", common.DefaultWidth)
	fmt.Printf("Database:  %s\n", cfg.Database.Path)
	fmt.Printf("Seeded:    %t\n", *seedFlag)
	fmt.Printf("Vehicles:  %d\n", counts.Vehicles)
	fmt.Printf("Sales:     %d\n", counts.Sales)
	fmt.Printf("Expenses:  %d\n", counts.Expenses)
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()
}
