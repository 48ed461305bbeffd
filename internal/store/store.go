package store

import (
	"context"
	"errors"

	"driveledger-go/internal/models"

	"github.com/shopspring/decimal"
)

// Sentinel errors shared across all backend implementations.
var (
	// ErrConstraintViolation covers a NULL required field or a sale whose vehicle does not exist.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorageUnavailable means the backing store could not be reached or initialized.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrVehicleNotFound = errors.New("vehicle not found")
)

// InsertVehicleParams contains the fields of a new inventory item.
type InsertVehicleParams struct {
	Brand             string
	Model             string
	Year              int
	PurchasePrice     decimal.Decimal
	ExpectedSellPrice decimal.Decimal
	DateAdded         string
}

// InsertSaleParams contains the fields of a new sale.
type InsertSaleParams struct {
	VehicleId    int64
	CustomerName string
	SalePrice    decimal.Decimal
	Date         string
}

// InsertExpenseParams contains the fields of a new operating expense.
type InsertExpenseParams struct {
	Description string
	Amount      decimal.Decimal
	Date        string
}

// LedgerStore defines the contract of the dealership record store.
type LedgerStore interface {
	// --- Lifecycle ---
	Initialize(ctx context.Context) error
	Seed(ctx context.Context) error
	Close()

	// --- Writes ---
	InsertVehicle(ctx context.Context, params InsertVehicleParams) (*models.Vehicle, error)
	InsertSale(ctx context.Context, params InsertSaleParams) (*models.Sale, error)
	InsertExpense(ctx context.Context, params InsertExpenseParams) (*models.Expense, error)

	// --- Reads ---
	GetVehicle(ctx context.Context, vehicleId int64) (*models.Vehicle, error)
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	ListInventory(ctx context.Context) ([]models.Vehicle, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CountRecords(ctx context.Context) (models.RecordCounts, error)
}
