package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"driveledger-go/internal/store"

	"github.com/mattn/go-sqlite3"
)

// classifyError maps a driver error onto the store's sentinel errors.
// The driver error stays in the chain for errors.As.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch {
		case sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%w: %w: %w", store.ErrConstraintViolation, store.ErrVehicleNotFound, err)
		case sqliteErr.Code == sqlite3.ErrConstraint:
			return fmt.Errorf("%w: %w", store.ErrConstraintViolation, err)
		}
	}

	return fmt.Errorf("%w: %w", store.ErrStorageUnavailable, err)
}

// requiredText turns blank text into NULL so the NOT NULL constraint rejects it
func requiredText(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
