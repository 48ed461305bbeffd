package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"driveledger-go/internal/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrUnknownKind is returned for a CSV export that names no table.
var ErrUnknownKind = errors.New("unknown export kind")

// Kinds lists the tables that can be exported as CSV.
var Kinds = []string{"vehicles", "sales", "expenses"}

// Source is the read side needed to build an export.
type Source interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	FinancialSummary(ctx context.Context) (*models.FinancialSummary, error)
}

// Dataset is a point-in-time snapshot of every table plus the summary.
type Dataset struct {
	Vehicles []models.Vehicle
	Sales    []models.Sale
	Expenses []models.Expense
	Summary  *models.FinancialSummary
}

var (
	vehicleHeader = []string{"ID", "Brand", "Model", "Year", "Purchase Price", "Expected Sell Price", "Date Added"}
	saleHeader    = []string{"Sale ID", "Vehicle ID", "Customer", "Sale Price", "Date"}
	expenseHeader = []string{"Expense ID", "Description", "Amount", "Date"}
)

// Collect loads a Dataset from the source.
func Collect(ctx context.Context, src Source) (*Dataset, error) {
	vehicles, err := src.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	sales, err := src.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	expenses, err := src.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	summary, err := src.FinancialSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	return &Dataset{Vehicles: vehicles, Sales: sales, Expenses: expenses, Summary: summary}, nil
}

// WriteCSV writes one table of the dataset as CSV.
func WriteCSV(w io.Writer, kind string, data *Dataset) error {
	var rows [][]string
	switch kind {
	case "vehicles":
		rows = append(rows, vehicleHeader)
		for _, v := range data.Vehicles {
			rows = append(rows, []string{
				strconv.FormatInt(v.Id, 10),
				v.Brand,
				v.Model,
				strconv.Itoa(v.Year),
				v.PurchasePrice.StringFixed(2),
				v.ExpectedSellPrice.StringFixed(2),
				v.DateAdded,
			})
		}
	case "sales":
		rows = append(rows, saleHeader)
		for _, s := range data.Sales {
			rows = append(rows, []string{
				strconv.FormatInt(s.SaleId, 10),
				strconv.FormatInt(s.VehicleId, 10),
				s.CustomerName,
				s.SalePrice.StringFixed(2),
				s.Date,
			})
		}
	case "expenses":
		rows = append(rows, expenseHeader)
		for _, e := range data.Expenses {
			rows = append(rows, []string{
				strconv.FormatInt(e.ExpenseId, 10),
				e.Description,
				e.Amount.StringFixed(2),
				e.Date,
			})
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s csv: %w", kind, err)
	}
	return nil
}

// Workbook builds an XLSX file with one sheet per table and a summary sheet.
func Workbook(data *Dataset) (*excelize.File, error) {
	f := excelize.NewFile()

	vehicleRows := make([][]interface{}, 0, len(data.Vehicles))
	for _, v := range data.Vehicles {
		vehicleRows = append(vehicleRows, []interface{}{
			v.Id, v.Brand, v.Model, v.Year,
			v.PurchasePrice.InexactFloat64(), v.ExpectedSellPrice.InexactFloat64(), v.DateAdded,
		})
	}
	saleRows := make([][]interface{}, 0, len(data.Sales))
	for _, s := range data.Sales {
		saleRows = append(saleRows, []interface{}{
			s.SaleId, s.VehicleId, s.CustomerName, s.SalePrice.InexactFloat64(), s.Date,
		})
	}
	expenseRows := make([][]interface{}, 0, len(data.Expenses))
	for _, e := range data.Expenses {
		expenseRows = append(expenseRows, []interface{}{
			e.ExpenseId, e.Description, e.Amount.InexactFloat64(), e.Date,
		})
	}

	sheets := []struct {
		name   string
		header []string
		rows   [][]interface{}
	}{
		{"Vehicles", vehicleHeader, vehicleRows},
		{"Sales", saleHeader, saleRows},
		{"Expenses", expenseHeader, expenseRows},
	}

	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
		}
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows); err != nil {
			return nil, err
		}
	}

	if data.Summary != nil {
		if _, err := f.NewSheet("Summary"); err != nil {
			return nil, fmt.Errorf("failed to create sheet Summary: %w", err)
		}
		summaryRows := [][]interface{}{
			{"Cumulative Purchase Cost", data.Summary.CumulativePurchaseCost.InexactFloat64()},
			{"Total Revenue", data.Summary.TotalRevenue.InexactFloat64()},
			{"Total Expenses", data.Summary.TotalExpenses.InexactFloat64()},
			{"Net Profit", data.Summary.NetProfit.InexactFloat64()},
			{"Status", data.Summary.Status},
			{"Vehicles Sold", data.Summary.VehiclesSold},
			{"Vehicles In Inventory", data.Summary.VehiclesInInventory},
		}
		if err := writeSheet(f, "Summary", []string{"Metric", "Value"}, summaryRows); err != nil {
			return nil, err
		}
	}

	f.DeleteSheet("Sheet1")
	if index, err := f.GetSheetIndex("Vehicles"); err == nil && index >= 0 {
		f.SetActiveSheet(index)
	}

	return f, nil
}

// WriteXLSX builds the workbook and streams it to w.
func WriteXLSX(w io.Writer, data *Dataset) error {
	f, err := Workbook(data)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			zap.L().Warn("Failed to close workbook", zap.Error(err))
		}
	}()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}
