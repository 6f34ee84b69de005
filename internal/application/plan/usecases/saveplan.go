// Package usecases implements the order plan workflows: saving a plan
// through the builder, plan lookup with joined costs, date listing, and
// plan deletion.
package usecases

import (
	"context"
	"errors"
	"fmt"

	"platewise/internal/application/plan/dto"
	"platewise/internal/domain/catalog"
	"platewise/internal/domain/plan"
	apperrors "platewise/internal/shared/errors"
	"platewise/internal/shared/logger"
	"platewise/internal/shared/utils"
)

// SavePlanUseCase drives a plan-construction session from plain input: it
// snapshots the catalog, applies budget and selections through the
// builder, and commits the plan. Selection refusals are reported in the
// result, never raised as errors.
type SavePlanUseCase struct {
	catalogRepo catalog.Repository
	planRepo    plan.Repository
	logger      logger.Interface
}

// NewSavePlanUseCase creates a new SavePlanUseCase
func NewSavePlanUseCase(catalogRepo catalog.Repository, planRepo plan.Repository, logger logger.Interface) *SavePlanUseCase {
	return &SavePlanUseCase{
		catalogRepo: catalogRepo,
		planRepo:    planRepo,
		logger:      logger,
	}
}

// Execute runs the session. Saving over a date that already has a plan
// requires req.ConfirmReplace; without it the save is declined with a
// conflict error so the caller can ask for confirmation.
func (uc *SavePlanUseCase) Execute(ctx context.Context, req dto.SavePlanRequest) (*dto.SavePlanResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	items, err := uc.catalogRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load catalog", "error", err)
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	builder := plan.NewBuilder(items, uc.planRepo)
	builder.SetBudget(req.Budget)

	// An omitted date means today, which still needs the confirm check:
	// a plan may already exist for the default date too.
	date := req.Date
	if date == "" {
		date = builder.Date()
	}
	adopted, err := builder.SetDate(ctx, date, func(string) bool { return req.ConfirmReplace })
	if err != nil {
		if errors.Is(err, plan.ErrInvalidDate) {
			return nil, apperrors.NewValidationError("date must be in YYYY-MM-DD form", "date")
		}
		uc.logger.Errorw("failed to adopt plan date", "date", date, "error", err)
		return nil, fmt.Errorf("failed to adopt plan date: %w", err)
	}
	if !adopted {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("a plan already exists for %s; confirm replacement to proceed", date),
			date,
		)
	}

	var skipped []dto.SkippedItem
	for _, id := range req.ItemIDs {
		refusal, err := builder.Select(id)
		if err != nil {
			if errors.Is(err, plan.ErrItemNotInCatalog) {
				return nil, apperrors.NewNotFoundError("food item", fmt.Sprintf("%d", id))
			}
			return nil, fmt.Errorf("failed to select item %d: %w", id, err)
		}
		if !refusal.OK() {
			skipped = append(skipped, dto.SkippedItem{FoodItemID: id, Reason: refusal.String()})
		}
	}

	refusal, err := builder.Commit(ctx)
	if err != nil {
		uc.logger.Errorw("failed to commit plan", "date", builder.Date(), "error", err)
		return nil, fmt.Errorf("failed to commit plan: %w", err)
	}

	result := &dto.SavePlanResult{
		Saved:      refusal.OK(),
		Date:       builder.Date(),
		TargetCost: builder.TargetCost(),
		Selected:   builder.SelectedIDs(),
		Skipped:    skipped,
	}
	if !refusal.OK() {
		// Nothing was persisted, so the cost fields stay zero.
		result.Refusal = refusal.String()
		return result, nil
	}
	result.ActualCost = builder.SelectedTotal()
	result.Remaining = builder.Remaining()

	uc.logger.Infow("plan saved",
		"date", result.Date,
		"target_cost", result.TargetCost,
		"actual_cost", result.ActualCost,
		"entries", len(result.Selected),
	)

	return result, nil
}
