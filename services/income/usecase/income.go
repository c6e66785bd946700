package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jazahq/jaza-backend/internal/pkg/logger"
	"github.com/jazahq/jaza-backend/internal/pkg/models"
)

// Record inserts a new income row scoped to userID. The amount arrives
// already type-checked by the handler; created_at is assigned by the
// store.
func (u *IncomeUC) Record(ctx context.Context, userID uuid.UUID, amount float64, source string) (*models.IncomeRecord, error) {
	record := &models.IncomeRecord{
		UserID: userID,
		Amount: amount,
		Source: source,
	}

	if err := u.incomeRepo.CreateIncome(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record income: %w", err)
	}

	logger.Info("Income recorded",
		logger.String("user_id", userID.String()),
		logger.Float64("amount", amount),
		logger.String("source", source))

	return record, nil
}

// List returns the user's income records newest first, optionally
// bounded by the inclusive created_at range in req.
func (u *IncomeUC) List(ctx context.Context, userID uuid.UUID, req models.IncomeListRequest) ([]models.IncomeRecord, error) {
	records, err := u.incomeRepo.ListIncome(ctx, userID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	return records, nil
}
