package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"driveledger-go/internal/api"
	"driveledger-go/internal/common"
	"driveledger-go/internal/config"
	"driveledger-go/internal/export"

	"go.uber.org/zap"
)

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	ctx := context.Background()

	dirFlag := flag.String("dir", ".", "Directory to write the export files into")
	xlsxFlag := flag.Bool("xlsx", true, "Also write ledger.xlsx")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	_, loggerCleanup := common.InitializeLogger(cfg.Log.Level)
	defer loggerCleanup()

	if err := os.MkdirAll(*dirFlag, 0o755); err != nil {
		zap.L().Fatal("Failed to create export directory", zap.String("dir", *dirFlag), zap.Error(err))
	}

	dbService, err := common.InitializeDatabaseOnly(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbService.Close()

	data, err := export.Collect(ctx, api.NewLedgerService(dbService))
	if err != nil {
		zap.L().Fatal("Failed to load ledger", zap.Error(err))
	}

	var written []string
	for _, kind := range export.Kinds {
		path := filepath.Join(*dirFlag, kind+".csv")
		err := writeFile(path, func(f *os.File) error {
			return export.WriteCSV(f, kind, data)
		})
		if err != nil {
			zap.L().Fatal("CSV export failed", zap.String("kind", kind), zap.Error(err))
		}
		written = append(written, path)
	}

	if *xlsxFlag {
		path := filepath.Join(*dirFlag, "ledger.xlsx")
		if err := writeFile(path, func(f *os.File) error { return export.WriteXLSX(f, data) }); err != nil {
			zap.L().Fatal("XLSX export failed", zap.Error(err))
		}
		written = append(written, path)
	}

	common.PrintHeader("EXPORT COMPLETE", common.DefaultWidth)
	for i, path := range written {
		fmt.Printf("%s%s\n", common.BoxPrefix(i == len(written)-1), path)
	}
	common.PrintFooter(fmt.Sprintf("%d vehicles, %d sales, %d expenses", len(data.Vehicles), len(data.Sales), len(data.Expenses)), common.DefaultWidth)
}
