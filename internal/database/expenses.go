package database

import (
	"context"
	"fmt"

	"driveledger-go/internal/models"
	"driveledger-go/internal/store"

	"go.uber.org/zap"
)

func (s *Service) InsertExpense(ctx context.Context, params store.InsertExpenseParams) (*models.Expense, error) {
	zap.L().Info("Inserting expense",
		zap.String("description", params.Description),
		zap.String("amount", params.Amount.String()),
		zap.String("date", params.Date))

	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx, queryInsertExpense,
		requiredText(params.Description), params.Amount, requiredText(params.Date)).
		Scan(&expense.ExpenseId, &expense.Description, &expense.Amount, &expense.Date)
	if err != nil {
		zap.L().Error("Failed to insert expense", zap.String("description", params.Description), zap.Error(err))
		return nil, fmt.Errorf("unable to insert expense: %w", classifyError(err))
	}

	zap.L().Info("Expense inserted", zap.Int64("expense_id", expense.ExpenseId))
	return expense, nil
}

func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, queryListExpenses)
	if err != nil {
		zap.L().Error("Failed to query expenses", zap.Error(err))
		return nil, fmt.Errorf("unable to query expenses: %w", classifyError(err))
	}
	defer closeRows(rows)

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ExpenseId, &expense.Description, &expense.Amount, &expense.Date); err != nil {
			zap.L().Error("Failed to scan expense row", zap.Error(err))
			return nil, fmt.Errorf("unable to scan expense row: %w", classifyError(err))
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		zap.L().Error("Error during expense row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating expense rows: %w", classifyError(err))
	}

	zap.L().Debug("Retrieved expenses", zap.Int("count", len(expenses)))
	return expenses, nil
}
