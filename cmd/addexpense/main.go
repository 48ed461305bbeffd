package main

import (
	"context"
	"flag"
	"fmt"

	"driveledger-go/internal/common"
	"driveledger-go/internal/config"
	"driveledger-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	descriptionFlag := flag.String("description", "", "Expense description, e.g. Marketing (required)")
	amountFlag := flag.String("amount", "", "Expense amount (required)")
	dateFlag := flag.String("date", "", "Expense date as YYYY-MM-DD (default: today)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	_, loggerCleanup := common.InitializeLogger(cfg.Log.Level)
	defer loggerCleanup()

	if *descriptionFlag == "" || *amountFlag == "" {
		zap.L().Fatal("Both flags are required: --description and --amount")
	}

	amount, err := decimal.NewFromString(*amountFlag)
	if err != nil {
		zap.L().Fatal("Invalid amount", zap.String("amount", *amountFlag), zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	expense, err := services.Ledger.AddExpense(ctx, store.InsertExpenseParams{
		Description: *descriptionFlag,
		Amount:      amount,
		Date:        *dateFlag,
	})
	if err != nil {
		zap.L().Fatal("Failed to add expense", zap.Error(err))
	}

	common.PrintHeader("EXPENSE RECORDED", common.DefaultWidth)
	fmt.Printf("ID:          %d\n", expense.ExpenseId)
	fmt.Printf("Description: %s\n", expense.Description)
	fmt.Printf("Amount:      %s\n", common.FormatMoney(expense.Amount, cfg.Formance.Currency))
	fmt.Printf("Date:        %s\n", expense.Date)
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()
}
