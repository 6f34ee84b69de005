package usecases

import (
	"context"
	"fmt"

	"platewise/internal/application/catalog/dto"
	"platewise/internal/domain/catalog"
	apperrors "platewise/internal/shared/errors"
	"platewise/internal/shared/logger"
	"platewise/internal/shared/utils"
)

// UpdateFoodItemUseCase handles updating an existing catalog item
type UpdateFoodItemUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

// NewUpdateFoodItemUseCase creates a new UpdateFoodItemUseCase
func NewUpdateFoodItemUseCase(repo catalog.Repository, logger logger.Interface) *UpdateFoodItemUseCase {
	return &UpdateFoodItemUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute updates the name and cost of an existing food item. The item ID
// never changes. An unknown ID maps the store's zero-rows signal to a not
// found error.
func (uc *UpdateFoodItemUseCase) Execute(ctx context.Context, req dto.UpdateFoodItemRequest) (*dto.FoodItemResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	item, err := catalog.NewFoodItem(req.Name, req.Cost)
	if err != nil {
		return nil, mapCatalogError(err)
	}
	if err := item.SetID(req.ID); err != nil {
		return nil, apperrors.NewValidationError("id must be a positive integer", "id")
	}

	rows, err := uc.repo.Update(ctx, item)
	if err != nil {
		uc.logger.Errorw("failed to update food item", "id", req.ID, "error", err)
		return nil, fmt.Errorf("failed to update food item: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.NewNotFoundError("food item", fmt.Sprintf("%d", req.ID))
	}

	uc.logger.Infow("food item updated", "id", item.ID(), "name", item.Name(), "cost", item.Cost())

	return toResponse(item), nil
}
