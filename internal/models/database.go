package models

import (
	"github.com/shopspring/decimal"
)

// Vehicle represents a dealership inventory item
type Vehicle struct {
	Id                int64           `db:"id" json:"id"`
	Brand             string          `db:"brand" json:"brand"`
	Model             string          `db:"model" json:"model"`
	Year              int             `db:"year" json:"year"`
	PurchasePrice     decimal.Decimal `db:"purchase_price" json:"purchase_price"`
	ExpectedSellPrice decimal.Decimal `db:"expected_sell_price" json:"expected_sell_price"`
	DateAdded         string          `db:"date_added" json:"date_added"`
}

// Sale represents a completed transaction for one vehicle
type Sale struct {
	SaleId       int64           `db:"sale_id" json:"sale_id"`
	VehicleId    int64           `db:"vehicle_id" json:"vehicle_id"`
	CustomerName string          `db:"customer_name" json:"customer_name"`
	SalePrice    decimal.Decimal `db:"sale_price" json:"sale_price"`
	Date         string          `db:"date" json:"date"`
}

// Expense represents a standalone operating cost
type Expense struct {
	ExpenseId   int64           `db:"expense_id" json:"expense_id"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Date        string          `db:"date" json:"date"`
}

// RecordCounts holds the row count of each table
type RecordCounts struct {
	Vehicles int `json:"vehicles"`
	Sales    int `json:"sales"`
	Expenses int `json:"expenses"`
}
