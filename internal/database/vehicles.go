package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"driveledger-go/internal/models"
	"driveledger-go/internal/store"

	"go.uber.org/zap"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner, v *models.Vehicle) error {
	return row.Scan(&v.Id, &v.Brand, &v.Model, &v.Year, &v.PurchasePrice, &v.ExpectedSellPrice, &v.DateAdded)
}

func (s *Service) InsertVehicle(ctx context.Context, params store.InsertVehicleParams) (*models.Vehicle, error) {
	zap.L().Info("Inserting vehicle",
		zap.String("brand", params.Brand),
		zap.String("model", params.Model),
		zap.Int("year", params.Year),
		zap.String("purchase_price", params.PurchasePrice.String()))

	vehicle := &models.Vehicle{}
	row := s.db.QueryRowContext(ctx, queryInsertVehicle,
		requiredText(params.Brand), requiredText(params.Model), params.Year,
		params.PurchasePrice, params.ExpectedSellPrice, requiredText(params.DateAdded))
	if err := scanVehicle(row, vehicle); err != nil {
		zap.L().Error("Failed to insert vehicle", zap.String("brand", params.Brand), zap.Error(err))
		return nil, fmt.Errorf("unable to insert vehicle: %w", classifyError(err))
	}

	zap.L().Info("Vehicle inserted", zap.Int64("vehicle_id", vehicle.Id))
	return vehicle, nil
}

func (s *Service) GetVehicle(ctx context.Context, vehicleId int64) (*models.Vehicle, error) {
	zap.L().Debug("Querying vehicle by ID", zap.Int64("vehicle_id", vehicleId))

	vehicle := &models.Vehicle{}
	if err := scanVehicle(s.db.QueryRowContext(ctx, queryGetVehicle, vehicleId), vehicle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", store.ErrVehicleNotFound, vehicleId)
		}
		zap.L().Error("Failed to query vehicle", zap.Int64("vehicle_id", vehicleId), zap.Error(err))
		return nil, fmt.Errorf("unable to query vehicle: %w", classifyError(err))
	}

	return vehicle, nil
}

func (s *Service) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.queryVehicles(ctx, queryListVehicles)
}

// ListInventory returns the vehicles no sale references, newest first
func (s *Service) ListInventory(ctx context.Context) ([]models.Vehicle, error) {
	return s.queryVehicles(ctx, queryListInventory)
}

func (s *Service) queryVehicles(ctx context.Context, query string) ([]models.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		zap.L().Error("Failed to query vehicles", zap.Error(err))
		return nil, fmt.Errorf("unable to query vehicles: %w", classifyError(err))
	}
	defer closeRows(rows)

	var vehicles []models.Vehicle
	for rows.Next() {
		var vehicle models.Vehicle
		if err := scanVehicle(rows, &vehicle); err != nil {
			zap.L().Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("unable to scan vehicle row: %w", classifyError(err))
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		zap.L().Error("Error during vehicle row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating vehicle rows: %w", classifyError(err))
	}

	zap.L().Debug("Retrieved vehicles", zap.Int("count", len(vehicles)))
	return vehicles, nil
}
