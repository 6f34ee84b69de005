package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"platewise/internal/domain/catalog"
	"platewise/internal/infrastructure/persistence/mappers"
	"platewise/internal/infrastructure/persistence/models"
	apperrors "platewise/internal/shared/errors"
	"platewise/internal/shared/logger"
)

// FoodItemRepositoryImpl implements the catalog.Repository interface.
type FoodItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.FoodItemMapper
	logger logger.Interface
}

// NewFoodItemRepository creates a new food item repository instance.
func NewFoodItemRepository(db *gorm.DB, logger logger.Interface) catalog.Repository {
	return &FoodItemRepositoryImpl{
		db:     db,
		mapper: mappers.NewFoodItemMapper(),
		logger: logger,
	}
}

// Create inserts a new food item and assigns its store ID.
func (r *FoodItemRepositoryImpl) Create(ctx context.Context, item *catalog.FoodItem) error {
	model := r.mapper.ToModel(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsConstraintViolation(err) {
			return apperrors.NewConstraintError("food item violates store constraints", err.Error())
		}
		r.logger.Errorw("failed to create food item", "error", err)
		return fmt.Errorf("failed to create food item: %w", err)
	}

	if err := item.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set food item ID", "error", err)
		return fmt.Errorf("failed to set food item ID: %w", err)
	}

	r.logger.Infow("food item created", "id", model.ID, "name", model.Name)
	return nil
}

// GetAll retrieves all food items in insertion order.
func (r *FoodItemRepositoryImpl) GetAll(ctx context.Context) ([]*catalog.FoodItem, error) {
	var modelList []models.FoodItemModel

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list food items", "error", err)
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}

	items, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map food items", "error", err)
		return nil, fmt.Errorf("failed to map food items: %w", err)
	}

	return items, nil
}

// GetByID retrieves a food item by its ID. Absence is (nil, nil).
func (r *FoodItemRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.FoodItem, error) {
	var model models.FoodItemModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get food item", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map food item", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map food item: %w", err)
	}

	return entity, nil
}

// Update updates name and cost of an existing food item and reports the
// rows affected. An unknown ID yields zero rows, which is the caller's
// signal, not an error.
func (r *FoodItemRepositoryImpl) Update(ctx context.Context, item *catalog.FoodItem) (int64, error) {
	model := r.mapper.ToModel(item)

	result := r.db.WithContext(ctx).Model(&models.FoodItemModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name": model.Name,
			"cost": model.Cost,
		})

	if result.Error != nil {
		if apperrors.IsConstraintViolation(result.Error) {
			return 0, apperrors.NewConstraintError("food item violates store constraints", result.Error.Error())
		}
		r.logger.Errorw("failed to update food item", "id", model.ID, "error", result.Error)
		return 0, fmt.Errorf("failed to update food item: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Infow("food item updated", "id", model.ID, "name", model.Name)
	}
	return result.RowsAffected, nil
}

// Delete removes a food item. The ON DELETE CASCADE rule removes any order
// entries referencing it.
func (r *FoodItemRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.FoodItemModel{}, id)

	if result.Error != nil {
		r.logger.Errorw("failed to delete food item", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete food item: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("food item", fmt.Sprintf("%d", id))
	}

	r.logger.Infow("food item deleted", "id", id)
	return nil
}

// escapeLike quotes LIKE metacharacters so a substring matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Search retrieves food items whose name contains the substring. Matching
// follows SQLite LIKE semantics, case-insensitive for ASCII, consistently
// across calls; LIKE metacharacters in the substring match literally.
func (r *FoodItemRepositoryImpl) Search(ctx context.Context, substring string) ([]*catalog.FoodItem, error) {
	var modelList []models.FoodItemModel

	if err := r.db.WithContext(ctx).
		Where("name LIKE ? ESCAPE '\\'", "%"+escapeLike(substring)+"%").
		Order("id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to search food items", "substring", substring, "error", err)
		return nil, fmt.Errorf("failed to search food items: %w", err)
	}

	items, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map food items", "error", err)
		return nil, fmt.Errorf("failed to map food items: %w", err)
	}

	return items, nil
}
