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

package models

import (
	"github.com/shopspring/decimal"
)

// Profit status labels
const (
	StatusProfit    = "PROFIT"
	StatusLoss      = "LOSS"
	StatusBreakEven = "BREAK-EVEN"
)

// DateLayout is the calendar date format used for record dates
const DateLayout = "2006-01-02"

// FinancialSummary is the dealership's all-time profit and loss
type FinancialSummary struct {
	CumulativePurchaseCost decimal.Decimal `json:"cumulative_purchase_cost"`
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	TotalExpenses          decimal.Decimal `json:"total_expenses"`
	NetProfit              decimal.Decimal `json:"net_profit"`
	Status                 string          `json:"status"`
	VehiclesSold           int             `json:"vehicles_sold"`
	VehiclesInInventory    int             `json:"vehicles_in_inventory"`
}

// MonthlyTotals is the debit and credit of a single calendar month
type MonthlyTotals struct {
	Month  int             `json:"month"`
	Name   string          `json:"name"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
	Net    decimal.Decimal `json:"net"`
}

// MonthlyBreakdown is the debit/credit view of one year.
// Debits are expenses and vehicle purchases, credits are sales.
type MonthlyBreakdown struct {
	Year            int             `json:"year"`
	Months          []MonthlyTotals `json:"months"`
	TotalDebit      decimal.Decimal `json:"total_debit"`
	TotalCredit     decimal.Decimal `json:"total_credit"`
	StartingBalance decimal.Decimal `json:"starting_balance"`
	AdjustedBalance decimal.Decimal `json:"adjusted_balance"`
}
