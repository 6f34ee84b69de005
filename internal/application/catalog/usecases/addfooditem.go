// Package usecases implements the food catalog manager: thin wrappers over
// the catalog repository that validate input and map domain outcomes to
// application errors.
package usecases

import (
	"context"
	"errors"
	"fmt"

	"platewise/internal/application/catalog/dto"
	"platewise/internal/domain/catalog"
	apperrors "platewise/internal/shared/errors"
	"platewise/internal/shared/logger"
	"platewise/internal/shared/utils"
)

// AddFoodItemUseCase handles adding a new item to the catalog
type AddFoodItemUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

// NewAddFoodItemUseCase creates a new AddFoodItemUseCase
func NewAddFoodItemUseCase(repo catalog.Repository, logger logger.Interface) *AddFoodItemUseCase {
	return &AddFoodItemUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute adds a new food item to the catalog
func (uc *AddFoodItemUseCase) Execute(ctx context.Context, req dto.AddFoodItemRequest) (*dto.FoodItemResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	item, err := catalog.NewFoodItem(req.Name, req.Cost)
	if err != nil {
		return nil, mapCatalogError(err)
	}

	if err := uc.repo.Create(ctx, item); err != nil {
		uc.logger.Errorw("failed to save food item", "error", err)
		return nil, fmt.Errorf("failed to save food item: %w", err)
	}

	uc.logger.Infow("food item added", "id", item.ID(), "name", item.Name(), "cost", item.Cost())

	return toResponse(item), nil
}

// mapCatalogError converts domain validation sentinels into field-level
// validation errors.
func mapCatalogError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrEmptyName):
		return apperrors.NewValidationError("name must not be empty", "name")
	case errors.Is(err, catalog.ErrNonPositiveCost):
		return apperrors.NewValidationError("cost must be a positive number", "cost")
	default:
		return err
	}
}

func toResponse(item *catalog.FoodItem) *dto.FoodItemResponse {
	return &dto.FoodItemResponse{
		ID:   item.ID(),
		Name: item.Name(),
		Cost: item.Cost(),
	}
}
