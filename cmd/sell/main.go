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

func parseAndValidateFlags() (*store.InsertSaleParams, error) {
	vehicleFlag := flag.Int64("vehicle", 0, "Vehicle ID (required)")
	customerFlag := flag.String("customer", "", "Customer name (required)")
	priceFlag := flag.String("price", "", "Sale price (required)")
	dateFlag := flag.String("date", "", "Sale date as YYYY-MM-DD (default: today)")
	flag.Parse()

	if *vehicleFlag == 0 || *customerFlag == "" || *priceFlag == "" {
		return nil, fmt.Errorf("required flags: --vehicle, --customer, --price")
	}

	price, err := decimal.NewFromString(*priceFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid price format: %w", err)
	}

	return &store.InsertSaleParams{
		VehicleId:    *vehicleFlag,
		CustomerName: *customerFlag,
		SalePrice:    price,
		Date:         *dateFlag,
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

	zap.L().Info("Starting sale",
		zap.Int64("vehicle_id", params.VehicleId),
		zap.String("sale_price", params.SalePrice.String()))

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	sale, err := services.Ledger.SellVehicle(ctx, *params)
	if err != nil {
		common.PrintHeader("SALE FAILED", common.DefaultWidth)
		switch {
		case errors.Is(err, store.ErrVehicleNotFound):
			fmt.Printf("Error: No vehicle with ID %d\n", params.VehicleId)
		case errors.Is(err, api.ErrAlreadySold):
			fmt.Printf("Error: Vehicle %d has already been sold\n", params.VehicleId)
		default:
			fmt.Printf("Error: %v\n", err)
		}
		common.PrintSeparator("=", common.DefaultWidth)
		zap.L().Fatal("Sale failed", zap.Error(err))
	}

	vehicle, err := services.Ledger.GetVehicle(ctx, sale.VehicleId)
	if err != nil {
		zap.L().Fatal("Failed to reload vehicle", zap.Error(err))
	}
	margin := sale.SalePrice.Sub(vehicle.PurchasePrice)

	common.PrintHeader("VEHICLE SOLD", common.DefaultWidth)
	fmt.Printf("Sale ID:        %d\n", sale.SaleId)
	fmt.Printf("Vehicle:        #%d %s %s (%d)\n", vehicle.Id, vehicle.Brand, vehicle.Model, vehicle.Year)
	fmt.Printf("Customer:       %s\n", sale.CustomerName)
	fmt.Printf("Sale Price:     %s\n", common.FormatMoney(sale.SalePrice, cfg.Formance.Currency))
	fmt.Printf("Margin:         %s\n", common.FormatMoney(margin, cfg.Formance.Currency))
	fmt.Printf("Date:           %s\n", sale.Date)
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()
}
