package database

import (
	"context"
	"fmt"

	"driveledger-go/internal/models"
	"driveledger-go/internal/store"

	"go.uber.org/zap"
)

// InsertSale records a sale. The vehicles foreign key is checked by SQLite;
// an unknown vehicle fails with store.ErrConstraintViolation and store.ErrVehicleNotFound.
func (s *Service) InsertSale(ctx context.Context, params store.InsertSaleParams) (*models.Sale, error) {
	zap.L().Info("Inserting sale",
		zap.Int64("vehicle_id", params.VehicleId),
		zap.String("customer_name", params.CustomerName),
		zap.String("sale_price", params.SalePrice.String()))

	sale := &models.Sale{}
	err := s.db.QueryRowContext(ctx, queryInsertSale,
		params.VehicleId, requiredText(params.CustomerName), params.SalePrice, requiredText(params.Date)).
		Scan(&sale.SaleId, &sale.VehicleId, &sale.CustomerName, &sale.SalePrice, &sale.Date)
	if err != nil {
		zap.L().Warn("Failed to insert sale", zap.Int64("vehicle_id", params.VehicleId), zap.Error(err))
		return nil, fmt.Errorf("unable to insert sale: %w", classifyError(err))
	}

	zap.L().Info("Sale inserted",
		zap.Int64("sale_id", sale.SaleId),
		zap.Int64("vehicle_id", sale.VehicleId))
	return sale, nil
}

func (s *Service) ListSales(ctx context.Context) ([]models.Sale, error) {
	rows, err := s.db.QueryContext(ctx, queryListSales)
	if err != nil {
		zap.L().Error("Failed to query sales", zap.Error(err))
		return nil, fmt.Errorf("unable to query sales: %w", classifyError(err))
	}
	defer closeRows(rows)

	var sales []models.Sale
	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.SaleId, &sale.VehicleId, &sale.CustomerName, &sale.SalePrice, &sale.Date); err != nil {
			zap.L().Error("Failed to scan sale row", zap.Error(err))
			return nil, fmt.Errorf("unable to scan sale row: %w", classifyError(err))
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		zap.L().Error("Error during sale row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating sale rows: %w", classifyError(err))
	}

	zap.L().Debug("Retrieved sales", zap.Int("count", len(sales)))
	return sales, nil
}
