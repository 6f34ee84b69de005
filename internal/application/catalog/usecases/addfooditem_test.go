package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platewise/internal/application/catalog/dto"
	"platewise/internal/domain/catalog"
	apperrors "platewise/internal/shared/errors"
)

func TestAddFoodItemUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a valid item and returns its assigned id", func(t *testing.T) {
		repo := &mockFoodItemRepository{
			CreateFunc: func(ctx context.Context, item *catalog.FoodItem) error {
				return item.SetID(7)
			},
		}
		uc := NewAddFoodItemUseCase(repo, &mockLogger{})

		resp, err := uc.Execute(ctx, dto.AddFoodItemRequest{Name: "Tomato Soup", Cost: 5.40})
		require.NoError(t, err)

		assert.Equal(t, uint(7), resp.ID)
		assert.Equal(t, "Tomato Soup", resp.Name)
		assert.Equal(t, 5.40, resp.Cost)
	})

	t.Run("missing name is a validation error", func(t *testing.T) {
		uc := NewAddFoodItemUseCase(&mockFoodItemRepository{}, &mockLogger{})

		_, err := uc.Execute(ctx, dto.AddFoodItemRequest{Cost: 5.40})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("non positive cost is a validation error", func(t *testing.T) {
		uc := NewAddFoodItemUseCase(&mockFoodItemRepository{}, &mockLogger{})

		_, err := uc.Execute(ctx, dto.AddFoodItemRequest{Name: "Soda", Cost: -1})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("whitespace only name is a validation error", func(t *testing.T) {
		uc := NewAddFoodItemUseCase(&mockFoodItemRepository{}, &mockLogger{})

		_, err := uc.Execute(ctx, dto.AddFoodItemRequest{Name: "   ", Cost: 5.40})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := &mockFoodItemRepository{
			CreateFunc: func(ctx context.Context, item *catalog.FoodItem) error {
				return errors.New("store unavailable")
			},
		}
		uc := NewAddFoodItemUseCase(repo, &mockLogger{})

		_, err := uc.Execute(ctx, dto.AddFoodItemRequest{Name: "Soda", Cost: 2.00})
		assert.Error(t, err)
	})
}
