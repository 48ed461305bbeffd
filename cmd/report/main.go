package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"driveledger-go/internal/common"
	"driveledger-go/internal/config"
	"driveledger-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func printSummary(summary *models.FinancialSummary, currency string) {
	common.PrintHeader("FINANCIAL SUMMARY", common.DefaultWidth)
	fmt.Printf("Cumulative Purchase Cost: %s\n", common.FormatMoney(summary.CumulativePurchaseCost, currency))
	fmt.Printf("Total Revenue:            %s\n", common.FormatMoney(summary.TotalRevenue, currency))
	fmt.Printf("Total Expenses:           %s\n", common.FormatMoney(summary.TotalExpenses, currency))
	fmt.Printf("Net Profit:               %s\n", common.FormatMoney(summary.NetProfit, currency))
	fmt.Printf("Status:                   %s\n", summary.Status)
	fmt.Printf("Vehicles Sold:            %d\n", summary.VehiclesSold)
	fmt.Printf("Vehicles In Inventory:    %d\n", summary.VehiclesInInventory)
}

func printMonthly(breakdown *models.MonthlyBreakdown, currency string) {
	common.PrintHeader(fmt.Sprintf("MONTHLY BREAKDOWN %d", breakdown.Year), common.WideWidth)
	fmt.Printf("%-12s %26s %26s %26s\n", "Month", "Debit", "Credit", "Net")
	common.PrintSeparator("-", common.WideWidth)
	for _, m := range breakdown.Months {
		fmt.Printf("%-12s %26s %26s %26s\n", m.Name,
			common.FormatMoney(m.Debit, currency),
			common.FormatMoney(m.Credit, currency),
			common.FormatMoney(m.Net, currency))
	}
	common.PrintSeparator("-", common.WideWidth)
	fmt.Printf("%-12s %26s %26s\n", "Total",
		common.FormatMoney(breakdown.TotalDebit, currency),
		common.FormatMoney(breakdown.TotalCredit, currency))
	fmt.Printf("Starting Balance: %s\n", common.FormatMoney(breakdown.StartingBalance, currency))
	fmt.Printf("Adjusted Balance: %s\n", common.FormatMoney(breakdown.AdjustedBalance, currency))
}

func main() {
	ctx := context.Background()

	yearFlag := flag.Int("year", time.Now().Year(), "Year for the monthly breakdown")
	startFlag := flag.String("start", "0", "Starting balance carried into the year")
	inventoryFlag := flag.Bool("inventory", false, "Also list unsold vehicles")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	logger, loggerCleanup := common.InitializeLogger(cfg.Log.Level)
	defer loggerCleanup()

	startingBalance, err := decimal.NewFromString(*startFlag)
	if err != nil {
		logger.Fatal("Invalid starting balance", zap.String("start", *startFlag), zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	currency := cfg.Formance.Currency

	summary, err := services.Ledger.FinancialSummary(ctx)
	if err != nil {
		logger.Fatal("Failed to build summary", zap.Error(err))
	}
	printSummary(summary, currency)

	breakdown, err := services.Ledger.MonthlyBreakdown(ctx, *yearFlag, startingBalance)
	if err != nil {
		logger.Fatal("Failed to build monthly breakdown", zap.Error(err))
	}
	printMonthly(breakdown, currency)

	if *inventoryFlag {
		inventory, err := services.Ledger.ListInventory(ctx)
		if err != nil {
			logger.Fatal("Failed to list inventory", zap.Error(err))
		}
		common.PrintHeader(fmt.Sprintf("INVENTORY (%d unsold)", len(inventory)), common.WideWidth)
		for i, v := range inventory {
			common.PrintVehicle(v, currency, i == len(inventory)-1)
		}
	}

	if services.FormanceService != nil {
		cash, err := services.FormanceService.CashBalance(ctx)
		if err != nil {
			logger.Warn("Failed to read mirrored cash balance", zap.Error(err))
		} else {
			fmt.Printf("\nMirrored cash balance (Formance): %s\n", common.FormatMoney(cash, currency))
		}
	}

	years, err := services.Ledger.AvailableYears(ctx)
	if err != nil {
		logger.Fatal("Failed to list years", zap.Error(err))
	}
	common.PrintFooter(fmt.Sprintf("STATUS: %s (years with activity: %v)", summary.Status, years), common.DefaultWidth)

	logger.Info("Report completed",
		zap.Int("year", *yearFlag),
		zap.String("net_profit", summary.NetProfit.String()))
}
