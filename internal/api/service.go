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

package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"driveledger-go/internal/models"
	"driveledger-go/internal/store"

	"go.uber.org/zap"
)

var (
	// ErrValidation is returned when input is rejected before it reaches the store.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadySold is returned when selling a vehicle that already has a sale.
	ErrAlreadySold = errors.New("vehicle already sold")
)

// Journal receives every successfully stored record. Implementations mirror
// the dealership's cash movements into an external ledger.
type Journal interface {
	RecordPurchase(ctx context.Context, vehicle models.Vehicle) error
	RecordSale(ctx context.Context, sale models.Sale) error
	RecordExpense(ctx context.Context, expense models.Expense) error
}

// LedgerService is the application layer over a store.LedgerStore
type LedgerService struct {
	db      store.LedgerStore
	journal Journal
	now     func() time.Time
}

func NewLedgerService(db store.LedgerStore) *LedgerService {
	return &LedgerService{
		db:  db,
		now: time.Now,
	}
}

// WithJournal attaches a journal mirror. Passing nil disables mirroring.
func (s *LedgerService) WithJournal(journal Journal) *LedgerService {
	s.journal = journal
	return s
}

func (s *LedgerService) HealthCheck(ctx context.Context) error {
	if _, err := s.db.CountRecords(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// Reset drops all records and optionally reloads the seed data
func (s *LedgerService) Reset(ctx context.Context, seed bool) (models.RecordCounts, error) {
	if err := s.db.Initialize(ctx); err != nil {
		return models.RecordCounts{}, fmt.Errorf("failed to initialize ledger: %w", err)
	}
	if seed {
		if err := s.db.Seed(ctx); err != nil {
			return models.RecordCounts{}, fmt.Errorf("failed to seed ledger: %w", err)
		}
	}
	return s.db.CountRecords(ctx)
}

func (s *LedgerService) today() string {
	return s.now().UTC().Format(models.DateLayout)
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func (s *LedgerService) AddVehicle(ctx context.Context, params store.InsertVehicleParams) (*models.Vehicle, error) {
	params.Brand = strings.TrimSpace(params.Brand)
	params.Model = strings.TrimSpace(params.Model)
	params.DateAdded = strings.TrimSpace(params.DateAdded)

	if params.Brand == "" || params.Model == "" {
		return nil, validationError("brand and model cannot be empty")
	}
	if params.PurchasePrice.IsNegative() || params.ExpectedSellPrice.IsNegative() {
		return nil, validationError("prices cannot be negative")
	}
	if params.DateAdded == "" {
		params.DateAdded = s.today()
	}

	vehicle, err := s.db.InsertVehicle(ctx, params)
	if err != nil {
		return nil, err
	}

	if s.journal != nil {
		if err := s.journal.RecordPurchase(ctx, *vehicle); err != nil {
			zap.L().Error("Failed to mirror vehicle purchase",
				zap.Int64("vehicle_id", vehicle.Id),
				zap.Error(err))
		}
	}

	return vehicle, nil
}

// SellVehicle records a sale for a vehicle that is still in inventory
func (s *LedgerService) SellVehicle(ctx context.Context, params store.InsertSaleParams) (*models.Sale, error) {
	params.CustomerName = strings.TrimSpace(params.CustomerName)
	params.Date = strings.TrimSpace(params.Date)

	if params.CustomerName == "" {
		return nil, validationError("customer name required")
	}
	if params.SalePrice.IsNegative() {
		return nil, validationError("sale price cannot be negative")
	}
	if params.Date == "" {
		params.Date = s.today()
	}

	if _, err := s.db.GetVehicle(ctx, params.VehicleId); err != nil {
		return nil, err
	}

	inventory, err := s.db.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	if !containsVehicle(inventory, params.VehicleId) {
		return nil, fmt.Errorf("%w: %d", ErrAlreadySold, params.VehicleId)
	}

	sale, err := s.db.InsertSale(ctx, params)
	if err != nil {
		return nil, err
	}

	zap.L().Info("Vehicle sold",
		zap.Int64("vehicle_id", sale.VehicleId),
		zap.Int64("sale_id", sale.SaleId),
		zap.String("sale_price", sale.SalePrice.String()))

	if s.journal != nil {
		if err := s.journal.RecordSale(ctx, *sale); err != nil {
			zap.L().Error("Failed to mirror sale",
				zap.Int64("sale_id", sale.SaleId),
				zap.Error(err))
		}
	}

	return sale, nil
}

func (s *LedgerService) AddExpense(ctx context.Context, params store.InsertExpenseParams) (*models.Expense, error) {
	params.Description = strings.TrimSpace(params.Description)
	params.Date = strings.TrimSpace(params.Date)

	if params.Description == "" {
		return nil, validationError("description required")
	}
	if params.Amount.IsNegative() {
		return nil, validationError("amount cannot be negative")
	}
	if params.Date == "" {
		params.Date = s.today()
	}

	expense, err := s.db.InsertExpense(ctx, params)
	if err != nil {
		return nil, err
	}

	if s.journal != nil {
		if err := s.journal.RecordExpense(ctx, *expense); err != nil {
			zap.L().Error("Failed to mirror expense",
				zap.Int64("expense_id", expense.ExpenseId),
				zap.Error(err))
		}
	}

	return expense, nil
}

func (s *LedgerService) GetVehicle(ctx context.Context, vehicleId int64) (*models.Vehicle, error) {
	return s.db.GetVehicle(ctx, vehicleId)
}

func (s *LedgerService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.db.ListVehicles(ctx)
}

func (s *LedgerService) ListInventory(ctx context.Context) ([]models.Vehicle, error) {
	return s.db.ListInventory(ctx)
}

func (s *LedgerService) ListSales(ctx context.Context) ([]models.Sale, error) {
	return s.db.ListSales(ctx)
}

func (s *LedgerService) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return s.db.ListExpenses(ctx)
}

func containsVehicle(vehicles []models.Vehicle, vehicleId int64) bool {
	for _, v := range vehicles {
		if v.Id == vehicleId {
			return true
		}
	}
	return false
}
