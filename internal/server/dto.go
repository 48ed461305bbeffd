package server

import (
	"driveledger-go/internal/models"

	"github.com/shopspring/decimal"
)

// Request bodies accept amounts as JSON strings or numbers.

type CreateVehicleRequest struct {
	Brand             string          `json:"brand"`
	Model             string          `json:"model"`
	Year              int             `json:"year"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	ExpectedSellPrice decimal.Decimal `json:"expected_sell_price"`
	DateAdded         string          `json:"date_added"`
}

type CreateSaleRequest struct {
	VehicleId    int64           `json:"vehicle_id"`
	CustomerName string          `json:"customer_name"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Date         string          `json:"date"`
}

type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

type ResetResponse struct {
	Seeded bool                `json:"seeded"`
	Counts models.RecordCounts `json:"counts"`
}

type YearsResponse struct {
	Years []int `json:"years"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
