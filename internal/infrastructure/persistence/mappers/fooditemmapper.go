package mappers

import (
	"platewise/internal/domain/catalog"
	"platewise/internal/infrastructure/persistence/models"
)

// FoodItemMapper handles conversion between the FoodItem domain entity and
// its GORM model.
type FoodItemMapper interface {
	ToModel(item *catalog.FoodItem) *models.FoodItemModel
	ToEntity(model *models.FoodItemModel) (*catalog.FoodItem, error)
	ToEntities(models []models.FoodItemModel) ([]*catalog.FoodItem, error)
}

// FoodItemMapperImpl is the concrete implementation of FoodItemMapper.
type FoodItemMapperImpl struct{}

// NewFoodItemMapper creates a new FoodItemMapper.
func NewFoodItemMapper() FoodItemMapper {
	return &FoodItemMapperImpl{}
}

// ToModel converts domain entity to GORM model
func (m *FoodItemMapperImpl) ToModel(item *catalog.FoodItem) *models.FoodItemModel {
	return &models.FoodItemModel{
		ID:   item.ID(),
		Name: item.Name(),
		Cost: item.Cost(),
	}
}

// ToEntity converts GORM model to domain entity
func (m *FoodItemMapperImpl) ToEntity(model *models.FoodItemModel) (*catalog.FoodItem, error) {
	return catalog.ReconstructFoodItem(model.ID, model.Name, model.Cost)
}

// ToEntities converts a slice of GORM models to domain entities
func (m *FoodItemMapperImpl) ToEntities(modelList []models.FoodItemModel) ([]*catalog.FoodItem, error) {
	entities := make([]*catalog.FoodItem, 0, len(modelList))
	for i := range modelList {
		entity, err := m.ToEntity(&modelList[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
