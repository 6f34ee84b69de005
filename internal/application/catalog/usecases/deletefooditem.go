package usecases

import (
	"context"
	"fmt"

	"platewise/internal/domain/catalog"
	apperrors "platewise/internal/shared/errors"
	"platewise/internal/shared/logger"
)

// DeleteFoodItemUseCase handles removing an item from the catalog. The
// delete itself is unconditional; any confirmation happens upstream.
type DeleteFoodItemUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

// NewDeleteFoodItemUseCase creates a new DeleteFoodItemUseCase
func NewDeleteFoodItemUseCase(repo catalog.Repository, logger logger.Interface) *DeleteFoodItemUseCase {
	return &DeleteFoodItemUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute deletes a food item. Order entries referencing it are removed by
// the store's cascade rule.
func (uc *DeleteFoodItemUseCase) Execute(ctx context.Context, id uint) error {
	if id == 0 {
		return apperrors.NewValidationError("id must be a positive integer", "id")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete food item", "id", id, "error", err)
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	uc.logger.Infow("food item deleted", "id", id)
	return nil
}
