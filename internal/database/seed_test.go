package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"driveledger-go/internal/models"

	"github.com/shopspring/decimal"
)

func TestDefaultSeed(t *testing.T) {
	records, err := DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed failed: %v", err)
	}

	wantBrands := []string{"Toyota", "Honda", "Suzuki", "Hyundai", "Kia"}
	if len(records.Vehicles) != len(wantBrands) {
		t.Fatalf("Expected %d vehicles, got %d", len(wantBrands), len(records.Vehicles))
	}
	for i, v := range records.Vehicles {
		if v.Brand != wantBrands[i] {
			t.Errorf("Vehicle %d: expected brand %s, got %s", i, wantBrands[i], v.Brand)
		}
		if v.Year < 2023 || v.Year > 2025 {
			t.Errorf("Vehicle %d: year %d outside 2023-2025", i, v.Year)
		}
	}

	wantExpenses := []string{"Showroom Rent", "Marketing", "Maintenance", "Insurance", "Taxes"}
	if len(records.Expenses) != len(wantExpenses) {
		t.Fatalf("Expected %d expenses, got %d", len(wantExpenses), len(records.Expenses))
	}
	for i, e := range records.Expenses {
		if e.Description != wantExpenses[i] {
			t.Errorf("Expense %d: expected %s, got %s", i, wantExpenses[i], e.Description)
		}
	}
	if records.Expenses[0].Date != "2023-01-05" {
		t.Errorf("Expected first expense on 2023-01-05, got %s", records.Expenses[0].Date)
	}
	if records.Expenses[4].Date != "2025-12-20" {
		t.Errorf("Expected last expense on 2025-12-20, got %s", records.Expenses[4].Date)
	}
}

func TestParseSeed_InvalidAmount(t *testing.T) {
	_, err := ParseSeed([]byte("expenses:\n  - description: Rent\n    amount: lots\n    date: \"2024-01-01\"\n"))
	if err == nil {
		t.Fatal("Expected error for invalid amount")
	}
}

func TestSeed_ReproducibleIds(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()
	for round := 0; round < 2; round++ {
		if err := service.Initialize(ctx); err != nil {
			t.Fatalf("Initialize failed: %v", err)
		}
		if err := service.Seed(ctx); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}

		vehicles, err := service.ListVehicles(ctx)
		if err != nil {
			t.Fatalf("ListVehicles failed: %v", err)
		}
		if len(vehicles) != 5 {
			t.Fatalf("Expected 5 vehicles, got %d", len(vehicles))
		}
		if vehicles[0].Id != 1 || vehicles[0].Brand != "Toyota" {
			t.Errorf("Round %d: expected vehicle 1 to be the Toyota, got %+v", round, vehicles[0])
		}
		if !vehicles[0].PurchasePrice.Equal(decimal.NewFromInt(18000)) {
			t.Errorf("Round %d: expected purchase price 18000, got %s", round, vehicles[0].PurchasePrice)
		}
	}
}

func TestSeed_FromFile(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	content := "vehicles:\n" +
		"  - brand: Ford\n    model: Focus\n    year: 2022\n" +
		"    purchase_price: \"9000\"\n    expected_sell_price: \"11000\"\n    date_added: \"2024-02-01\"\n"
	if err := os.WriteFile(seedPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}

	cfg := models.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "ledger.db"),
		MaxOpenConns: 1,
		PingTimeout:  time.Second,
		SeedFile:     seedPath,
	}
	service, err := NewService(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	defer service.Close()

	if err := service.Seed(context.Background()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	vehicles, err := service.ListVehicles(context.Background())
	if err != nil {
		t.Fatalf("ListVehicles failed: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].Brand != "Ford" {
		t.Errorf("Expected the single Ford from the seed file, got %+v", vehicles)
	}
}
