package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platewise/internal/application/plan/dto"
	"platewise/internal/domain/catalog"
	"platewise/internal/domain/plan"
	apperrors "platewise/internal/shared/errors"
)

func catalogFixture(t *testing.T) []*catalog.FoodItem {
	t.Helper()

	pizza, err := catalog.ReconstructFoodItem(1, "Margherita Pizza", 12.99)
	require.NoError(t, err)
	salad, err := catalog.ReconstructFoodItem(2, "Caesar Salad", 8.50)
	require.NoError(t, err)
	soda, err := catalog.ReconstructFoodItem(3, "Soda", 2.00)
	require.NoError(t, err)

	return []*catalog.FoodItem{pizza, salad, soda}
}

func TestSavePlanUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("saves within budget and skips the item that would exceed it", func(t *testing.T) {
		var replacedDate string
		var replaced []*plan.OrderEntry
		catalogRepo := &mockCatalogRepository{
			GetAllFunc: func(ctx context.Context) ([]*catalog.FoodItem, error) {
				return catalogFixture(t), nil
			},
		}
		planRepo := &mockPlanRepository{
			ReplaceFunc: func(ctx context.Context, date string, entries []*plan.OrderEntry) error {
				replacedDate = date
				replaced = entries
				return nil
			},
		}
		uc := NewSavePlanUseCase(catalogRepo, planRepo, &mockLogger{})

		result, err := uc.Execute(ctx, dto.SavePlanRequest{
			Date:    "2025-11-25",
			Budget:  15.00,
			ItemIDs: []uint{1, 2, 3},
		})
		require.NoError(t, err)

		assert.True(t, result.Saved)
		assert.Equal(t, "2025-11-25", result.Date)
		assert.Equal(t, 15.00, result.TargetCost)
		assert.InDelta(t, 14.99, result.ActualCost, 1e-9)
		assert.InDelta(t, 0.01, result.Remaining, 1e-9)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, uint(2), result.Skipped[0].FoodItemID)
		assert.Equal(t, "over budget", result.Skipped[0].Reason)

		assert.Equal(t, "2025-11-25", replacedDate)
		assert.Len(t, replaced, 2)
	})

	t.Run("refused without a budget", func(t *testing.T) {
		catalogRepo := &mockCatalogRepository{
			GetAllFunc: func(ctx context.Context) ([]*catalog.FoodItem, error) {
				return catalogFixture(t), nil
			},
		}
		uc := NewSavePlanUseCase(catalogRepo, &mockPlanRepository{}, &mockLogger{})

		result, err := uc.Execute(ctx, dto.SavePlanRequest{
			Date:    "2025-11-25",
			ItemIDs: []uint{1},
		})
		require.NoError(t, err)

		assert.False(t, result.Saved)
		assert.Equal(t, "budget required", result.Refusal)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, "budget required", result.Skipped[0].Reason)
		assert.Equal(t, 0.0, result.ActualCost)
		assert.Equal(t, 0.0, result.Remaining)
	})

	t.Run("refused with a budget but no selection", func(t *testing.T) {
		catalogRepo := &mockCatalogRepository{
			GetAllFunc: func(ctx context.Context) ([]*catalog.FoodItem, error) {
				return catalogFixture(t), nil
			},
		}
		uc := NewSavePlanUseCase(catalogRepo, &mockPlanRepository{}, &mockLogger{})

		result, err := uc.Execute(ctx, dto.SavePlanRequest{
			Date:   "2025-11-25",
			Budget: 15.00,
		})
		require.NoError(t, err)

		assert.False(t, result.Saved)
		assert.Equal(t, "no items selected", result.Refusal)
	})

	t.Run("existing plan requires confirmation", func(t *testing.T) {
		catalogRepo := &mockCatalogRepository{
			GetAllFunc: func(ctx context.Context) ([]*catalog.FoodItem, error) {
				return catalogFixture(t), nil
			},
		}
		planRepo := &mockPlanRepository{
			HasEntriesForDateFunc: func(ctx context.Context, date string) (bool, error) {
				return true, nil
			},
		}
		uc := NewSavePlanUseCase(catalogRepo, planRepo, &mockLogger{})

		_, err := uc.Execute(ctx, dto.SavePlanRequest{
			Date:    "2025-11-25",
			Budget:  15.00,
			ItemIDs: []uint{3},
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("existing plan for the defaulted date requires confirmation", func(t *testing.T) {
		var checkedDate string
		catalogRepo := &mockCatalogRepository{
			GetAllFunc: func(ctx context.Context) ([]*catalog.FoodItem, error) {
				return catalogFixture(t), nil
			},
		}
		planRepo := &mockPlanRepository{
			HasEntriesForDateFunc: func(ctx context.Context, date string) (bool, error) {
				checkedDate = date
				return true, nil
			},
		}
		uc := NewSavePlanUseCase(catalogRepo, planRepo, &mockLogger{})

		_, err := uc.Execute(ctx, dto.SavePlanRequest{
			Budget:  15.00,
			ItemIDs: []uint{3},
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		assert.Equal(t, plan.Today(), checkedDate)
	})

	t.Run("defaulted date saves once confirmed", func(t *testing.T) {
		catalogRepo := &mockCatalogRepository{
			GetAllFunc: func(ctx context.Context) ([]*catalog.FoodItem, error) {
				return catalogFixture(t), nil
			},
		}
		planRepo := &mockPlanRepository{
			HasEntriesForDateFunc: func(ctx context.Context, date string) (bool, error) {
				return true, nil
			},
		}
		uc := NewSavePlanUseCase(catalogRepo, planRepo, &mockLogger{})

		result, err := uc.Execute(ctx, dto.SavePlanRequest{
			Budget:         15.00,
			ItemIDs:        []uint{3},
			ConfirmReplace: true,
		})
		require.NoError(t, err)
		assert.True(t, result.Saved)
		assert.Equal(t, plan.Today(), result.Date)
	})

	t.Run("confirmed replacement proceeds over an existing plan", func(t *testing.T) {
		catalogRepo := &mockCatalogRepository{
			GetAllFunc: func(ctx context.Context) ([]*catalog.FoodItem, error) {
				return catalogFixture(t), nil
			},
		}
		planRepo := &mockPlanRepository{
			HasEntriesForDateFunc: func(ctx context.Context, date string) (bool, error) {
				return true, nil
			},
		}
		uc := NewSavePlanUseCase(catalogRepo, planRepo, &mockLogger{})

		result, err := uc.Execute(ctx, dto.SavePlanRequest{
			Date:           "2025-11-25",
			Budget:         15.00,
			ItemIDs:        []uint{3},
			ConfirmReplace: true,
		})
		require.NoError(t, err)
		assert.True(t, result.Saved)
	})

	t.Run("unknown item id is a not found error", func(t *testing.T) {
		catalogRepo := &mockCatalogRepository{
			GetAllFunc: func(ctx context.Context) ([]*catalog.FoodItem, error) {
				return catalogFixture(t), nil
			},
		}
		uc := NewSavePlanUseCase(catalogRepo, &mockPlanRepository{}, &mockLogger{})

		_, err := uc.Execute(ctx, dto.SavePlanRequest{
			Date:    "2025-11-25",
			Budget:  15.00,
			ItemIDs: []uint{99},
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("malformed date is a validation error", func(t *testing.T) {
		uc := NewSavePlanUseCase(&mockCatalogRepository{}, &mockPlanRepository{}, &mockLogger{})

		_, err := uc.Execute(ctx, dto.SavePlanRequest{
			Date:   "25.11.2025",
			Budget: 15.00,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
