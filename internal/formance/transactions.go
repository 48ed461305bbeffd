package formance

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"driveledger-go/internal/models"

	"github.com/formancehq/formance-sdk-go/v3/pkg/models/operations"
	"github.com/formancehq/formance-sdk-go/v3/pkg/models/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Numscript templates. Metadata is set inside the script via set_tx_meta()
// so every posting names the dealership row it mirrors.
// ---------------------------------------------------------------------------

const numscriptVehiclePurchase = `vars {
  asset $asset
  number $amount
  account $vehicle_id
  string $brand
  string $model
  string $year
  string $amount_human
}

send [$asset $amount] (
  source = @dealership:cash allowing unbounded overdraft
  destination = @dealership:inventory:$vehicle_id
)

set_tx_meta("event_type", "vehicle_purchase")
set_tx_meta("brand", $brand)
set_tx_meta("model", $model)
set_tx_meta("year", $year)
set_tx_meta("amount_human", $amount_human)
`

const numscriptVehicleSale = `vars {
  asset $asset
  number $amount
  account $sale_id
  string $vehicle_id
  string $customer_name
  string $amount_human
}

send [$asset $amount] (
  source = @customers:$sale_id allowing unbounded overdraft
  destination = @dealership:cash
)

set_tx_meta("event_type", "vehicle_sale")
set_tx_meta("vehicle_id", $vehicle_id)
set_tx_meta("customer_name", $customer_name)
set_tx_meta("amount_human", $amount_human)
`

const numscriptExpense = `vars {
  asset $asset
  number $amount
  account $category
  string $expense_id
  string $description
  string $amount_human
}

send [$asset $amount] (
  source = @dealership:cash allowing unbounded overdraft
  destination = @expenses:$category
)

set_tx_meta("event_type", "expense")
set_tx_meta("expense_id", $expense_id)
set_tx_meta("description", $description)
set_tx_meta("amount_human", $amount_human)
`

// ---------------------------------------------------------------------------
// Journal operations
// ---------------------------------------------------------------------------

// RecordPurchase moves the purchase price from cash into the vehicle's inventory account.
func (s *Service) RecordPurchase(ctx context.Context, vehicle models.Vehicle) error {
	id := strconv.FormatInt(vehicle.Id, 10)
	postTx := s.newPosting("purchase", vehicle.DateAdded, numscriptVehiclePurchase, vehicle.PurchasePrice, map[string]string{
		"vehicle_id": id,
		"brand":      vehicle.Brand,
		"model":      vehicle.Model,
		"year":       strconv.Itoa(vehicle.Year),
	})

	if err := s.post(ctx, postTx); err != nil {
		return fmt.Errorf("error recording vehicle purchase: %w", err)
	}

	zap.L().Info("Vehicle purchase recorded in Formance",
		zap.Int64("vehicle_id", vehicle.Id),
		zap.String("amount", vehicle.PurchasePrice.String()))
	return nil
}

// RecordSale credits cash with the sale price.
func (s *Service) RecordSale(ctx context.Context, sale models.Sale) error {
	postTx := s.newPosting("sale", sale.Date, numscriptVehicleSale, sale.SalePrice, map[string]string{
		"sale_id":       strconv.FormatInt(sale.SaleId, 10),
		"vehicle_id":    strconv.FormatInt(sale.VehicleId, 10),
		"customer_name": sale.CustomerName,
	})

	if err := s.post(ctx, postTx); err != nil {
		return fmt.Errorf("error recording sale: %w", err)
	}

	zap.L().Info("Sale recorded in Formance",
		zap.Int64("sale_id", sale.SaleId),
		zap.String("amount", sale.SalePrice.String()))
	return nil
}

// RecordExpense moves the expense amount from cash into its category account.
func (s *Service) RecordExpense(ctx context.Context, expense models.Expense) error {
	postTx := s.newPosting("expense", expense.Date, numscriptExpense, expense.Amount, map[string]string{
		"category":    expenseCategory(expense.Description),
		"expense_id":  strconv.FormatInt(expense.ExpenseId, 10),
		"description": expense.Description,
	})

	if err := s.post(ctx, postTx); err != nil {
		return fmt.Errorf("error recording expense: %w", err)
	}

	zap.L().Info("Expense recorded in Formance",
		zap.Int64("expense_id", expense.ExpenseId),
		zap.String("amount", expense.Amount.String()))
	return nil
}

// newPosting fills the asset and amount vars shared by every template.
func (s *Service) newPosting(kind, date, script string, amount decimal.Decimal, vars map[string]string) shared.V2PostTransaction {
	vars["asset"] = formanceAsset(s.currency)
	vars["amount"] = toMinorUnits(amount, s.currency)
	vars["amount_human"] = amount.StringFixed(int32(precisionFor(s.currency)))

	postTx := shared.V2PostTransaction{
		Reference: strPtr(kind + "-" + uuid.NewString()),
		Script: &shared.V2PostTransactionScript{
			Plain: script,
			Vars:  vars,
		},
	}
	if ts, ok := recordTimestamp(date); ok {
		postTx.Timestamp = &ts
	}
	return postTx
}

func (s *Service) post(ctx context.Context, postTx shared.V2PostTransaction) error {
	_, err := s.client.Ledger.V2.CreateTransaction(ctx, operations.V2CreateTransactionRequest{
		Ledger:            s.ledger,
		V2PostTransaction: postTx,
	})
	if err != nil {
		if isConflictError(err) {
			return nil // idempotent
		}
		return err
	}
	return nil
}

// toMinorUnits converts a decimal amount into the integer string Numscript expects.
func toMinorUnits(amount decimal.Decimal, currency string) string {
	return amount.Shift(int32(precisionFor(currency))).Round(0).BigInt().String()
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// expenseCategory turns a free-form description into an account segment, e.g. "Showroom Rent" -> "showroom_rent".
func expenseCategory(description string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(description), "_"), "_")
	if slug == "" {
		return "general"
	}
	return slug
}

// recordTimestamp parses a stored date as midnight UTC. Unknown formats post at server time.
func recordTimestamp(date string) (time.Time, bool) {
	for _, layout := range []string{models.DateLayout, time.RFC3339Nano, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func strPtr(s string) *string { return &s }
