package database

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"driveledger-go/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedVehicle struct {
	Brand             string `yaml:"brand"`
	Model             string `yaml:"model"`
	Year              int    `yaml:"year"`
	PurchasePrice     string `yaml:"purchase_price"`
	ExpectedSellPrice string `yaml:"expected_sell_price"`
	DateAdded         string `yaml:"date_added"`
}

type seedExpense struct {
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
	Date        string `yaml:"date"`
}

type seedData struct {
	Vehicles []seedVehicle `yaml:"vehicles"`
	Expenses []seedExpense `yaml:"expenses"`
}

// SeedRecords is the parsed, typed form of a seed file
type SeedRecords struct {
	Vehicles []store.InsertVehicleParams
	Expenses []store.InsertExpenseParams
}

// ParseSeed decodes seed YAML. Prices and amounts are decimal strings.
func ParseSeed(data []byte) (*SeedRecords, error) {
	var raw seedData
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unable to parse seed data: %w", err)
	}

	records := &SeedRecords{}
	for i, v := range raw.Vehicles {
		purchase, err := decimal.NewFromString(v.PurchasePrice)
		if err != nil {
			return nil, fmt.Errorf("vehicle at index %d has invalid purchase_price %q: %w", i, v.PurchasePrice, err)
		}
		expected, err := decimal.NewFromString(v.ExpectedSellPrice)
		if err != nil {
			return nil, fmt.Errorf("vehicle at index %d has invalid expected_sell_price %q: %w", i, v.ExpectedSellPrice, err)
		}
		records.Vehicles = append(records.Vehicles, store.InsertVehicleParams{
			Brand:             v.Brand,
			Model:             v.Model,
			Year:              v.Year,
			PurchasePrice:     purchase,
			ExpectedSellPrice: expected,
			DateAdded:         v.DateAdded,
		})
	}

	for i, e := range raw.Expenses {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return nil, fmt.Errorf("expense at index %d has invalid amount %q: %w", i, e.Amount, err)
		}
		records.Expenses = append(records.Expenses, store.InsertExpenseParams{
			Description: e.Description,
			Amount:      amount,
			Date:        e.Date,
		})
	}

	return records, nil
}

// DefaultSeed returns the embedded sample data
func DefaultSeed() (*SeedRecords, error) {
	return ParseSeed(defaultSeed)
}

func (s *Service) loadSeed() (*SeedRecords, error) {
	if s.seedFile == "" {
		return DefaultSeed()
	}

	data, err := os.ReadFile(s.seedFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", s.seedFile, err)
	}
	return ParseSeed(data)
}

// Seed inserts the seed rows in file order inside one transaction.
// Run it right after Initialize to get the same ids on every reset.
func (s *Service) Seed(ctx context.Context) error {
	records, err := s.loadSeed()
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", classifyError(err))
	}
	defer tx.Rollback()

	for _, v := range records.Vehicles {
		_, err := tx.ExecContext(ctx, querySeedVehicle,
			requiredText(v.Brand), requiredText(v.Model), v.Year,
			v.PurchasePrice, v.ExpectedSellPrice, requiredText(v.DateAdded))
		if err != nil {
			return fmt.Errorf("failed to seed vehicle %s %s: %w", v.Brand, v.Model, classifyError(err))
		}
	}

	for _, e := range records.Expenses {
		_, err := tx.ExecContext(ctx, querySeedExpense, requiredText(e.Description), e.Amount, requiredText(e.Date))
		if err != nil {
			return fmt.Errorf("failed to seed expense %s: %w", e.Description, classifyError(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", classifyError(err))
	}

	zap.L().Info("Seed data loaded",
		zap.Int("vehicles", len(records.Vehicles)),
		zap.Int("expenses", len(records.Expenses)))
	return nil
}
