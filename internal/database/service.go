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

package database

import (
	"context"
	"database/sql"
	"fmt"

	"driveledger-go/internal/models"
	"driveledger-go/internal/store"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Compile-time check: *Service must satisfy store.LedgerStore.
var _ store.LedgerStore = (*Service)(nil)

type Service struct {
	db       *sql.DB
	seedFile string
}

func NewService(ctx context.Context, cfg models.DatabaseConfig) (*Service, error) {
	// Validate configuration
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if cfg.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("max open connections must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns < 0 {
		return nil, fmt.Errorf("max idle connections cannot be negative, got %d", cfg.MaxIdleConns)
	}
	if cfg.PingTimeout <= 0 {
		return nil, fmt.Errorf("ping timeout must be positive, got %v", cfg.PingTimeout)
	}

	zap.L().Info("Opening SQLite database", zap.String("file", cfg.Path))
	db, err := sql.Open("sqlite3", cfg.Path+"?_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w: %w", store.ErrStorageUnavailable, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			zap.L().Warn("Failed to close database after ping failure", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("unable to ping database: %w: %w", store.ErrStorageUnavailable, err)
	}

	service := &Service{db: db, seedFile: cfg.SeedFile}

	// Opening an existing ledger keeps its rows; Initialize is the only reset.
	if _, err := db.ExecContext(ctx, schemaCreate); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			zap.L().Warn("Failed to close database after schema failure", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("unable to create schema: %w: %w", store.ErrStorageUnavailable, err)
	}

	zap.L().Info("Database service initialized successfully")
	return service, nil
}

func (s *Service) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("Failed to close database connection", zap.Error(err))
	}
}

// Ping checks that the database is still reachable
func (s *Service) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", store.ErrStorageUnavailable, err)
	}
	return nil
}

// Initialize drops and recreates the vehicles, sales and expenses tables.
// All existing rows are lost.
func (s *Service) Initialize(ctx context.Context) error {
	zap.L().Info("Resetting ledger schema")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", classifyError(err))
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaDrop); err != nil {
		return fmt.Errorf("failed to drop tables: %w", classifyError(err))
	}
	if _, err := tx.ExecContext(ctx, schemaCreate); err != nil {
		return fmt.Errorf("failed to create tables: %w", classifyError(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", classifyError(err))
	}

	zap.L().Info("Ledger schema reset")
	return nil
}

func (s *Service) CountRecords(ctx context.Context) (models.RecordCounts, error) {
	var counts models.RecordCounts
	err := s.db.QueryRowContext(ctx, queryCountRecords).Scan(&counts.Vehicles, &counts.Sales, &counts.Expenses)
	if err != nil {
		zap.L().Error("Failed to count records", zap.Error(err))
		return models.RecordCounts{}, fmt.Errorf("unable to count records: %w", classifyError(err))
	}
	return counts, nil
}

// closeRows closes a result set, logging instead of failing
func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		zap.L().Warn("Failed to close rows", zap.Error(err))
	}
}
