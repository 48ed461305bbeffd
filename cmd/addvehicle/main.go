/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"driveledger-go/internal/api"
	"driveledger-go/internal/common"
	"driveledger-go/internal/config"
	"driveledger-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func parseAndValidateFlags() (*store.InsertVehicleParams, error) {
	brandFlag := flag.String("brand", "", "Vehicle brand, e.g. Toyota (required)")
	modelFlag := flag.String("model", "", "Vehicle model, e.g. Corolla (required)")
	yearFlag := flag.Int("year", 0, "Model year (required)")
	purchaseFlag := flag.String("purchase", "", "Purchase price (required)")
	sellFlag := flag.String("sell", "", "Expected sell price (required)")
	dateFlag := flag.String("date", "", "Date added as YYYY-MM-DD (default: today)")
	flag.Parse()

	if *brandFlag == "" || *modelFlag == "" || *yearFlag == 0 || *purchaseFlag == "" || *sellFlag == "" {
		return nil, fmt.Errorf("required flags: --brand, --model, --year, --purchase, --sell")
	}

	purchase, err := decimal.NewFromString(*purchaseFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase price: %w", err)
	}
	sell, err := decimal.NewFromString(*sellFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid sell price: %w", err)
	}

	return &store.InsertVehicleParams{
		Brand:             *brandFlag,
		Model:             *modelFlag,
		Year:              *yearFlag,
		PurchasePrice:     purchase,
		ExpectedSellPrice: sell,
		DateAdded:         *dateFlag,
	}, nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		_, _ = zap.NewProduction()
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	_, loggerCleanup := common.InitializeLogger(cfg.Log.Level)
	defer loggerCleanup()

	params, err := parseAndValidateFlags()
	if err != nil {
		zap.L().Fatal("Invalid flags", zap.Error(err))
	}

	zap.L().Info("Initializing services")
	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	vehicle, err := services.Ledger.AddVehicle(ctx, *params)
	if err != nil {
		common.PrintHeader("VEHICLE NOT ADDED", common.DefaultWidth)
		if errors.Is(err, api.ErrValidation) || errors.Is(err, store.ErrConstraintViolation) {
			fmt.Printf("Rejected: %v\n", err)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		common.PrintSeparator("=", common.DefaultWidth)
		zap.L().Fatal("Failed to add vehicle", zap.Error(err))
	}

	common.PrintHeader("VEHICLE ADDED", common.DefaultWidth)
	fmt.Printf("ID:             %d\n", vehicle.Id)
	fmt.Printf("Vehicle:        %s %s (%d)\n", vehicle.Brand, vehicle.Model, vehicle.Year)
	fmt.Printf("Purchase Price: %s\n", common.FormatMoney(vehicle.PurchasePrice, cfg.Formance.Currency))
	fmt.Printf("Asking Price:   %s\n", common.FormatMoney(vehicle.ExpectedSellPrice, cfg.Formance.Currency))
	fmt.Printf("Date Added:     %s\n", vehicle.DateAdded)
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()
}
