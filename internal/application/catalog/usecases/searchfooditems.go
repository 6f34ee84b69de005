package usecases

import (
	"context"
	"fmt"

	"platewise/internal/application/catalog/dto"
	"platewise/internal/domain/catalog"
	"platewise/internal/shared/logger"
)

// SearchFoodItemsUseCase retrieves catalog items matching a name substring
type SearchFoodItemsUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

// NewSearchFoodItemsUseCase creates a new SearchFoodItemsUseCase
func NewSearchFoodItemsUseCase(repo catalog.Repository, logger logger.Interface) *SearchFoodItemsUseCase {
	return &SearchFoodItemsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute searches food items by name substring. An empty substring
// matches the whole catalog.
func (uc *SearchFoodItemsUseCase) Execute(ctx context.Context, substring string) ([]dto.FoodItemResponse, error) {
	items, err := uc.repo.Search(ctx, substring)
	if err != nil {
		uc.logger.Errorw("failed to search food items", "substring", substring, "error", err)
		return nil, fmt.Errorf("failed to search food items: %w", err)
	}

	responses := make([]dto.FoodItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *toResponse(item))
	}

	return responses, nil
}
