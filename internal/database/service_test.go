package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"driveledger-go/internal/models"
	"driveledger-go/internal/store"

	"github.com/shopspring/decimal"
)

func testConfig(t *testing.T) models.DatabaseConfig {
	return models.DatabaseConfig{
		Path:            filepath.Join(t.TempDir(), "ledger.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
		PingTimeout:     time.Second,
	}
}

func setupTestService(t *testing.T) (*Service, func()) {
	service, err := NewService(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := service.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return service, service.Close
}

func corolla() store.InsertVehicleParams {
	return store.InsertVehicleParams{
		Brand:             "Toyota",
		Model:             "Corolla",
		Year:              2023,
		PurchasePrice:     decimal.NewFromInt(18000),
		ExpectedSellPrice: decimal.NewFromInt(22000),
		DateAdded:         "2023-02-15",
	}
}

func mustCount(t *testing.T, service *Service) models.RecordCounts {
	t.Helper()
	counts, err := service.CountRecords(context.Background())
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	return counts
}

func TestNewService_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.DatabaseConfig)
	}{
		{"empty path", func(c *models.DatabaseConfig) { c.Path = "" }},
		{"zero open conns", func(c *models.DatabaseConfig) { c.MaxOpenConns = 0 }},
		{"negative idle conns", func(c *models.DatabaseConfig) { c.MaxIdleConns = -1 }},
		{"zero ping timeout", func(c *models.DatabaseConfig) { c.PingTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			if _, err := NewService(context.Background(), cfg); err == nil {
				t.Fatalf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestNewService_UnreachableStorage(t *testing.T) {
	cfg := testConfig(t)
	cfg.Path = filepath.Join(t.TempDir(), "missing-dir", "ledger.db")

	_, err := NewService(context.Background(), cfg)
	if err == nil {
		t.Fatal("Expected error opening database in a missing directory")
	}
	if !errors.Is(err, store.ErrStorageUnavailable) {
		t.Errorf("Expected ErrStorageUnavailable, got: %v", err)
	}
}

func TestNewService_KeepsExistingRows(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	service, err := NewService(ctx, cfg)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if _, err := service.InsertVehicle(ctx, corolla()); err != nil {
		t.Fatalf("InsertVehicle failed: %v", err)
	}
	service.Close()

	reopened, err := NewService(ctx, cfg)
	if err != nil {
		t.Fatalf("Reopening failed: %v", err)
	}
	defer reopened.Close()

	if counts := mustCount(t, reopened); counts.Vehicles != 1 {
		t.Errorf("Expected 1 vehicle after reopen, got %d", counts.Vehicles)
	}
}

func TestInitialize_EmptyCollections(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	counts := mustCount(t, service)
	if counts != (models.RecordCounts{}) {
		t.Errorf("Expected empty collections, got %+v", counts)
	}
}

func TestInitialize_DiscardsRows(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()
	vehicle, err := service.InsertVehicle(ctx, corolla())
	if err != nil {
		t.Fatalf("InsertVehicle failed: %v", err)
	}
	if _, err := service.InsertSale(ctx, store.InsertSaleParams{VehicleId: vehicle.Id, CustomerName: "Alice", SalePrice: decimal.NewFromInt(21000), Date: "2023-03-01"}); err != nil {
		t.Fatalf("InsertSale failed: %v", err)
	}
	if _, err := service.InsertExpense(ctx, store.InsertExpenseParams{Description: "Marketing", Amount: decimal.NewFromInt(500), Date: "2023-03-02"}); err != nil {
		t.Fatalf("InsertExpense failed: %v", err)
	}

	if err := service.Initialize(ctx); err != nil {
		t.Fatalf("Second Initialize failed: %v", err)
	}

	if counts := mustCount(t, service); counts != (models.RecordCounts{}) {
		t.Errorf("Expected reset to empty collections, got %+v", counts)
	}

	again, err := service.InsertVehicle(ctx, corolla())
	if err != nil {
		t.Fatalf("InsertVehicle after reset failed: %v", err)
	}
	if again.Id != 1 {
		t.Errorf("Expected id counter to restart at 1, got %d", again.Id)
	}
}

func TestCountRecords_AfterSeed(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	if err := service.Seed(context.Background()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	counts := mustCount(t, service)
	if counts.Vehicles != 5 || counts.Expenses != 5 || counts.Sales != 0 {
		t.Errorf("Expected 5 vehicles, 0 sales, 5 expenses, got %+v", counts)
	}
}

func TestClassifyError_PassesContextErrors(t *testing.T) {
	err := classifyError(context.Canceled)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if errors.Is(err, store.ErrStorageUnavailable) {
		t.Errorf("Context errors should not be classified as storage failures")
	}
}

func TestClassifyError_UnknownIsStorageUnavailable(t *testing.T) {
	err := classifyError(errors.New("disk I/O error"))
	if !errors.Is(err, store.ErrStorageUnavailable) {
		t.Errorf("Expected ErrStorageUnavailable, got %v", err)
	}
}
