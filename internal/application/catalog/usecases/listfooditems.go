package usecases

import (
	"context"
	"fmt"

	"platewise/internal/application/catalog/dto"
	"platewise/internal/domain/catalog"
	"platewise/internal/shared/logger"
)

// ListFoodItemsUseCase retrieves the full catalog in insertion order
type ListFoodItemsUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

// NewListFoodItemsUseCase creates a new ListFoodItemsUseCase
func NewListFoodItemsUseCase(repo catalog.Repository, logger logger.Interface) *ListFoodItemsUseCase {
	return &ListFoodItemsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute lists all food items
func (uc *ListFoodItemsUseCase) Execute(ctx context.Context) ([]dto.FoodItemResponse, error) {
	items, err := uc.repo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list food items", "error", err)
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}

	responses := make([]dto.FoodItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *toResponse(item))
	}

	return responses, nil
}
