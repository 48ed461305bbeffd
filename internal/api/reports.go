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
	"fmt"
	"sort"
	"time"

	"driveledger-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// dateLayouts are tried in order when bucketing a record date by month
var dateLayouts = []string{
	models.DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01",
}

// parseRecordDate extracts the calendar year and month from a stored date string
func parseRecordDate(value string) (int, time.Month, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Year(), t.Month(), true
		}
	}
	return 0, 0, false
}

// FinancialSummary totals every record in the ledger
func (s *LedgerService) FinancialSummary(ctx context.Context) (*models.FinancialSummary, error) {
	vehicles, err := s.db.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	sales, err := s.db.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	expenses, err := s.db.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	inventory, err := s.db.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	summary := &models.FinancialSummary{
		CumulativePurchaseCost: decimal.Zero,
		TotalRevenue:           decimal.Zero,
		TotalExpenses:          decimal.Zero,
		VehiclesSold:           len(sales),
		VehiclesInInventory:    len(inventory),
	}
	for _, v := range vehicles {
		summary.CumulativePurchaseCost = summary.CumulativePurchaseCost.Add(v.PurchasePrice)
	}
	for _, sale := range sales {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.SalePrice)
	}
	for _, e := range expenses {
		summary.TotalExpenses = summary.TotalExpenses.Add(e.Amount)
	}

	summary.NetProfit = summary.TotalRevenue.Sub(summary.CumulativePurchaseCost.Add(summary.TotalExpenses))
	switch summary.NetProfit.Sign() {
	case 1:
		summary.Status = models.StatusProfit
	case -1:
		summary.Status = models.StatusLoss
	default:
		summary.Status = models.StatusBreakEven
	}

	return summary, nil
}

// MonthlyBreakdown buckets one year of activity by month.
// Purchases (by date_added) and expenses are debits, sales are credits.
func (s *LedgerService) MonthlyBreakdown(ctx context.Context, year int, startingBalance decimal.Decimal) (*models.MonthlyBreakdown, error) {
	vehicles, err := s.db.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	sales, err := s.db.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	expenses, err := s.db.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	breakdown := &models.MonthlyBreakdown{
		Year:            year,
		Months:          make([]models.MonthlyTotals, 12),
		TotalDebit:      decimal.Zero,
		TotalCredit:     decimal.Zero,
		StartingBalance: startingBalance,
	}
	for i := range breakdown.Months {
		breakdown.Months[i] = models.MonthlyTotals{
			Month:  i + 1,
			Name:   time.Month(i + 1).String(),
			Debit:  decimal.Zero,
			Credit: decimal.Zero,
		}
	}

	add := func(kind string, date string, amount decimal.Decimal, credit bool) {
		y, m, ok := parseRecordDate(date)
		if !ok {
			zap.L().Warn("Skipping record with unparseable date",
				zap.String("kind", kind),
				zap.String("date", date))
			return
		}
		if y != year {
			return
		}
		month := &breakdown.Months[m-1]
		if credit {
			month.Credit = month.Credit.Add(amount)
		} else {
			month.Debit = month.Debit.Add(amount)
		}
	}

	for _, v := range vehicles {
		add("vehicle", v.DateAdded, v.PurchasePrice, false)
	}
	for _, e := range expenses {
		add("expense", e.Date, e.Amount, false)
	}
	for _, sale := range sales {
		add("sale", sale.Date, sale.SalePrice, true)
	}

	for i := range breakdown.Months {
		month := &breakdown.Months[i]
		month.Net = month.Credit.Sub(month.Debit)
		breakdown.TotalDebit = breakdown.TotalDebit.Add(month.Debit)
		breakdown.TotalCredit = breakdown.TotalCredit.Add(month.Credit)
	}
	breakdown.AdjustedBalance = startingBalance.Add(breakdown.TotalCredit).Sub(breakdown.TotalDebit)

	return breakdown, nil
}

// AvailableYears lists every year with activity plus the current year, ascending
func (s *LedgerService) AvailableYears(ctx context.Context) ([]int, error) {
	vehicles, err := s.db.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	sales, err := s.db.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	expenses, err := s.db.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	seen := map[int]bool{s.now().UTC().Year(): true}
	mark := func(date string) {
		if y, _, ok := parseRecordDate(date); ok {
			seen[y] = true
		}
	}
	for _, v := range vehicles {
		mark(v.DateAdded)
	}
	for _, sale := range sales {
		mark(sale.Date)
	}
	for _, e := range expenses {
		mark(e.Date)
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, nil
}
