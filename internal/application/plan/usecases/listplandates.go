package usecases

import (
	"context"
	"fmt"

	"platewise/internal/domain/plan"
	"platewise/internal/shared/logger"
)

// ListPlanDatesUseCase lists the dates that have a saved plan
type ListPlanDatesUseCase struct {
	repo   plan.Repository
	logger logger.Interface
}

// NewListPlanDatesUseCase creates a new ListPlanDatesUseCase
func NewListPlanDatesUseCase(repo plan.Repository, logger logger.Interface) *ListPlanDatesUseCase {
	return &ListPlanDatesUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute returns the distinct plan dates, most recent first
func (uc *ListPlanDatesUseCase) Execute(ctx context.Context) ([]string, error) {
	dates, err := uc.repo.GetAllDates(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plan dates", "error", err)
		return nil, fmt.Errorf("failed to list plan dates: %w", err)
	}

	return dates, nil
}
