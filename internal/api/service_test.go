package api

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"driveledger-go/internal/database"
	"driveledger-go/internal/models"
	"driveledger-go/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingJournal struct {
	purchases []models.Vehicle
	sales     []models.Sale
	expenses  []models.Expense
	fail      bool
}

func (j *recordingJournal) RecordPurchase(_ context.Context, vehicle models.Vehicle) error {
	j.purchases = append(j.purchases, vehicle)
	if j.fail {
		return errors.New("ledger offline")
	}
	return nil
}

func (j *recordingJournal) RecordSale(_ context.Context, sale models.Sale) error {
	j.sales = append(j.sales, sale)
	if j.fail {
		return errors.New("ledger offline")
	}
	return nil
}

func (j *recordingJournal) RecordExpense(_ context.Context, expense models.Expense) error {
	j.expenses = append(j.expenses, expense)
	if j.fail {
		return errors.New("ledger offline")
	}
	return nil
}

func newTestLedger(t *testing.T) *LedgerService {
	t.Helper()

	db, err := database.NewService(context.Background(), models.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "ledger.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PingTimeout:  time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ledger := NewLedgerService(db)
	ledger.now = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }
	return ledger
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

func TestAddVehicleAndSell_EndToEnd(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	vehicle, err := ledger.AddVehicle(ctx, corolla())
	require.NoError(t, err)
	assert.Positive(t, vehicle.Id)
	assert.Equal(t, "Toyota", vehicle.Brand)
	assert.Equal(t, "Corolla", vehicle.Model)
	assert.Equal(t, 2023, vehicle.Year)
	assert.True(t, vehicle.PurchasePrice.Equal(decimal.NewFromInt(18000)))
	assert.True(t, vehicle.ExpectedSellPrice.Equal(decimal.NewFromInt(22000)))
	assert.Equal(t, "2023-02-15", vehicle.DateAdded)

	sale, err := ledger.SellVehicle(ctx, store.InsertSaleParams{
		VehicleId:    vehicle.Id,
		CustomerName: "Alice",
		SalePrice:    decimal.NewFromInt(21000),
		Date:         "2023-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, vehicle.Id, sale.VehicleId)

	inventory, err := ledger.ListInventory(ctx)
	require.NoError(t, err)
	assert.Empty(t, inventory)
}

func TestAddVehicle_Validation(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	blank := corolla()
	blank.Model = "   "
	_, err := ledger.AddVehicle(ctx, blank)
	assert.ErrorIs(t, err, ErrValidation)

	negative := corolla()
	negative.PurchasePrice = decimal.NewFromInt(-1)
	_, err = ledger.AddVehicle(ctx, negative)
	assert.ErrorIs(t, err, ErrValidation)

	vehicles, err := ledger.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestAddVehicle_TrimsAndDefaultsDate(t *testing.T) {
	ledger := newTestLedger(t)

	params := corolla()
	params.Brand = "  Toyota "
	params.DateAdded = ""

	vehicle, err := ledger.AddVehicle(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", vehicle.Brand)
	assert.Equal(t, "2025-06-01", vehicle.DateAdded)
}

func TestSellVehicle_UnknownVehicle(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.SellVehicle(context.Background(), store.InsertSaleParams{
		VehicleId:    99,
		CustomerName: "Alice",
		SalePrice:    decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, store.ErrVehicleNotFound)
}

func TestSellVehicle_AlreadySold(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	vehicle, err := ledger.AddVehicle(ctx, corolla())
	require.NoError(t, err)

	params := store.InsertSaleParams{VehicleId: vehicle.Id, CustomerName: "Alice", SalePrice: decimal.NewFromInt(21000)}
	_, err = ledger.SellVehicle(ctx, params)
	require.NoError(t, err)

	params.CustomerName = "Bob"
	_, err = ledger.SellVehicle(ctx, params)
	assert.ErrorIs(t, err, ErrAlreadySold)

	sales, err := ledger.ListSales(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestSellVehicle_RequiresCustomer(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.SellVehicle(context.Background(), store.InsertSaleParams{VehicleId: 1, SalePrice: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddExpense(t *testing.T) {
	ledger := newTestLedger(t)

	expense, err := ledger.AddExpense(context.Background(), store.InsertExpenseParams{
		Description: "Taxes",
		Amount:      decimal.NewFromInt(2000),
		Date:        "2025-12-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "Taxes", expense.Description)
	assert.True(t, expense.Amount.Equal(decimal.NewFromInt(2000)))

	_, err = ledger.AddExpense(context.Background(), store.InsertExpenseParams{Amount: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestJournalMirroring(t *testing.T) {
	ledger := newTestLedger(t)
	journal := &recordingJournal{}
	ledger.WithJournal(journal)
	ctx := context.Background()

	vehicle, err := ledger.AddVehicle(ctx, corolla())
	require.NoError(t, err)
	_, err = ledger.SellVehicle(ctx, store.InsertSaleParams{VehicleId: vehicle.Id, CustomerName: "Alice", SalePrice: decimal.NewFromInt(21000)})
	require.NoError(t, err)
	_, err = ledger.AddExpense(ctx, store.InsertExpenseParams{Description: "Marketing", Amount: decimal.NewFromInt(300)})
	require.NoError(t, err)

	require.Len(t, journal.purchases, 1)
	require.Len(t, journal.sales, 1)
	require.Len(t, journal.expenses, 1)
	assert.Equal(t, vehicle.Id, journal.purchases[0].Id)
	assert.Equal(t, vehicle.Id, journal.sales[0].VehicleId)
}

func TestJournalFailureDoesNotFailWrite(t *testing.T) {
	ledger := newTestLedger(t)
	ledger.WithJournal(&recordingJournal{fail: true})

	vehicle, err := ledger.AddVehicle(context.Background(), corolla())
	require.NoError(t, err)
	assert.Positive(t, vehicle.Id)
}

func TestReset(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	_, err := ledger.AddVehicle(ctx, corolla())
	require.NoError(t, err)

	counts, err := ledger.Reset(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.RecordCounts{}, counts)

	counts, err = ledger.Reset(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.RecordCounts{Vehicles: 5, Sales: 0, Expenses: 5}, counts)

	require.NoError(t, ledger.HealthCheck(ctx))
}
