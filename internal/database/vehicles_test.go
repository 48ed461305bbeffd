package database

import (
	"context"
	"errors"
	"testing"

	"driveledger-go/internal/store"

	"github.com/shopspring/decimal"
)

func TestInsertVehicle_EchoesFields(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	params := corolla()
	vehicle, err := service.InsertVehicle(context.Background(), params)
	if err != nil {
		t.Fatalf("InsertVehicle failed: %v", err)
	}

	if vehicle.Id <= 0 {
		t.Errorf("Expected generated id, got %d", vehicle.Id)
	}
	if vehicle.Brand != "Toyota" || vehicle.Model != "Corolla" || vehicle.Year != 2023 {
		t.Errorf("Unexpected vehicle identity: %+v", vehicle)
	}
	if !vehicle.PurchasePrice.Equal(params.PurchasePrice) {
		t.Errorf("Expected purchase price %s, got %s", params.PurchasePrice, vehicle.PurchasePrice)
	}
	if !vehicle.ExpectedSellPrice.Equal(params.ExpectedSellPrice) {
		t.Errorf("Expected sell price %s, got %s", params.ExpectedSellPrice, vehicle.ExpectedSellPrice)
	}
	if vehicle.DateAdded != "2023-02-15" {
		t.Errorf("Expected date_added 2023-02-15, got %s", vehicle.DateAdded)
	}
}

func TestInsertVehicle_IncreasingIds(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()
	var lastId int64
	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		vehicle, err := service.InsertVehicle(ctx, corolla())
		if err != nil {
			t.Fatalf("InsertVehicle %d failed: %v", i, err)
		}
		if vehicle.Id <= lastId {
			t.Fatalf("Expected id greater than %d, got %d", lastId, vehicle.Id)
		}
		if seen[vehicle.Id] {
			t.Fatalf("Duplicate id %d", vehicle.Id)
		}
		seen[vehicle.Id] = true
		lastId = vehicle.Id
	}
}

func TestInsertVehicle_FractionalPrices(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	params := corolla()
	params.PurchasePrice = decimal.RequireFromString("18250.75")
	vehicle, err := service.InsertVehicle(context.Background(), params)
	if err != nil {
		t.Fatalf("InsertVehicle failed: %v", err)
	}
	if !vehicle.PurchasePrice.Equal(params.PurchasePrice) {
		t.Errorf("Expected %s, got %s", params.PurchasePrice, vehicle.PurchasePrice)
	}
}

func TestInsertVehicle_MissingFieldIsConstraintViolation(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()
	params := corolla()
	params.Brand = "  "

	_, err := service.InsertVehicle(ctx, params)
	if !errors.Is(err, store.ErrConstraintViolation) {
		t.Fatalf("Expected ErrConstraintViolation, got: %v", err)
	}
	if errors.Is(err, store.ErrVehicleNotFound) {
		t.Errorf("NOT NULL failure should not report a missing vehicle: %v", err)
	}

	if counts := mustCount(t, service); counts.Vehicles != 0 {
		t.Errorf("Expected no vehicles after failed insert, got %d", counts.Vehicles)
	}
}

func TestGetVehicle(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()
	inserted, err := service.InsertVehicle(ctx, corolla())
	if err != nil {
		t.Fatalf("InsertVehicle failed: %v", err)
	}

	found, err := service.GetVehicle(ctx, inserted.Id)
	if err != nil {
		t.Fatalf("GetVehicle failed: %v", err)
	}
	if found.Id != inserted.Id || found.Model != inserted.Model {
		t.Errorf("Expected %+v, got %+v", inserted, found)
	}

	_, err = service.GetVehicle(ctx, inserted.Id+100)
	if !errors.Is(err, store.ErrVehicleNotFound) {
		t.Errorf("Expected ErrVehicleNotFound, got: %v", err)
	}
}

func TestListInventory_ExcludesSoldVehicles(t *testing.T) {
	service, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()
	first, err := service.InsertVehicle(ctx, corolla())
	if err != nil {
		t.Fatalf("InsertVehicle failed: %v", err)
	}
	second, err := service.InsertVehicle(ctx, corolla())
	if err != nil {
		t.Fatalf("InsertVehicle failed: %v", err)
	}

	_, err = service.InsertSale(ctx, store.InsertSaleParams{
		VehicleId:    first.Id,
		CustomerName: "Alice",
		SalePrice:    decimal.NewFromInt(21000),
		Date:         "2023-03-01",
	})
	if err != nil {
		t.Fatalf("InsertSale failed: %v", err)
	}

	all, err := service.ListVehicles(ctx)
	if err != nil {
		t.Fatalf("ListVehicles failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 vehicles, got %d", len(all))
	}

	inventory, err := service.ListInventory(ctx)
	if err != nil {
		t.Fatalf("ListInventory failed: %v", err)
	}
	if len(inventory) != 1 || inventory[0].Id != second.Id {
		t.Errorf("Expected only vehicle %d in inventory, got %+v", second.Id, inventory)
	}
}
