package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platewise/internal/application/catalog/dto"
	"platewise/internal/domain/catalog"
	apperrors "platewise/internal/shared/errors"
)

func TestUpdateFoodItemUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and cost, id unchanged", func(t *testing.T) {
		var updated *catalog.FoodItem
		repo := &mockFoodItemRepository{
			UpdateFunc: func(ctx context.Context, item *catalog.FoodItem) (int64, error) {
				updated = item
				return 1, nil
			},
		}
		uc := NewUpdateFoodItemUseCase(repo, &mockLogger{})

		resp, err := uc.Execute(ctx, dto.UpdateFoodItemRequest{ID: 3, Name: "Iced Tea", Cost: 2.50})
		require.NoError(t, err)

		assert.Equal(t, uint(3), resp.ID)
		assert.Equal(t, "Iced Tea", resp.Name)
		assert.Equal(t, 2.50, resp.Cost)
		require.NotNil(t, updated)
		assert.Equal(t, uint(3), updated.ID())
	})

	t.Run("zero rows updated maps to not found", func(t *testing.T) {
		repo := &mockFoodItemRepository{
			UpdateFunc: func(ctx context.Context, item *catalog.FoodItem) (int64, error) {
				return 0, nil
			},
		}
		uc := NewUpdateFoodItemUseCase(repo, &mockLogger{})

		_, err := uc.Execute(ctx, dto.UpdateFoodItemRequest{ID: 99, Name: "Iced Tea", Cost: 2.50})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("missing id is a validation error", func(t *testing.T) {
		uc := NewUpdateFoodItemUseCase(&mockFoodItemRepository{}, &mockLogger{})

		_, err := uc.Execute(ctx, dto.UpdateFoodItemRequest{Name: "Iced Tea", Cost: 2.50})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("non positive cost is a validation error", func(t *testing.T) {
		uc := NewUpdateFoodItemUseCase(&mockFoodItemRepository{}, &mockLogger{})

		_, err := uc.Execute(ctx, dto.UpdateFoodItemRequest{ID: 3, Name: "Iced Tea", Cost: 0})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
