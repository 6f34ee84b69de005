package usecases

import (
	"context"
	"fmt"

	"platewise/internal/application/plan/dto"
	"platewise/internal/domain/plan"
	apperrors "platewise/internal/shared/errors"
	"platewise/internal/shared/logger"
)

// GetPlanUseCase loads the order plan for a date with joined item costs
type GetPlanUseCase struct {
	repo   plan.Repository
	logger logger.Interface
}

// NewGetPlanUseCase creates a new GetPlanUseCase
func NewGetPlanUseCase(repo plan.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute retrieves the plan for a date. A date without entries is a not
// found outcome, distinct from a plan whose cost happens to be zero. A
// negative remaining budget is surfaced as-is.
func (uc *GetPlanUseCase) Execute(ctx context.Context, date string) (*dto.PlanResponse, error) {
	if !plan.ValidDate(date) {
		return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD form", "date")
	}

	entries, err := uc.repo.GetEntriesForDate(ctx, date)
	if err != nil {
		uc.logger.Errorw("failed to load plan", "date", date, "error", err)
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if len(entries) == 0 {
		return nil, apperrors.NewNotFoundError("order plan", date)
	}

	orderPlan, err := plan.NewOrderPlan(date, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to build plan view: %w", err)
	}

	entryResponses := make([]dto.PlanEntryResponse, 0, len(entries))
	for _, e := range orderPlan.Entries() {
		entryResponses = append(entryResponses, dto.PlanEntryResponse{
			FoodItemID:   e.FoodItemID,
			FoodItemName: e.FoodItemName,
			FoodItemCost: e.FoodItemCost,
		})
	}

	return &dto.PlanResponse{
		Date:       orderPlan.Date(),
		TargetCost: orderPlan.TargetCost(),
		ActualCost: orderPlan.ActualCost(),
		Remaining:  orderPlan.Remaining(),
		Entries:    entryResponses,
	}, nil
}
