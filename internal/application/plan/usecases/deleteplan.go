package usecases

import (
	"context"
	"fmt"

	"platewise/internal/application/plan/dto"
	"platewise/internal/domain/plan"
	apperrors "platewise/internal/shared/errors"
	"platewise/internal/shared/logger"
)

// DeletePlanUseCase removes the plan for a date. The operation is
// idempotent: deleting a date that never had a plan succeeds with zero
// rows removed. Confirmation, when wanted, happens upstream.
type DeletePlanUseCase struct {
	repo   plan.Repository
	logger logger.Interface
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase
func NewDeletePlanUseCase(repo plan.Repository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute deletes all entries for the date
func (uc *DeletePlanUseCase) Execute(ctx context.Context, date string) (*dto.DeletePlanResult, error) {
	if !plan.ValidDate(date) {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD form", "date")
	}

	removed, err := uc.repo.DeleteEntriesForDate(ctx, date)
	if err != nil {
		uc.logger.Errorw("failed to delete plan", "date", date, "error", err)
		return nil, fmt.Errorf("failed to delete plan: %w", err)
	}

	return &dto.DeletePlanResult{
		Date:    date,
		Removed: removed,
	}, nil
}
