package mappers

import (
	"platewise/internal/domain/plan"
	"platewise/internal/infrastructure/persistence/models"
)

// OrderEntryMapper handles conversion between order entry domain shapes and
// their GORM models.
type OrderEntryMapper interface {
	ToModel(entry *plan.OrderEntry) *models.OrderEntryModel
	ToEntry(model *models.OrderEntryModel) (*plan.OrderEntry, error)
}

// OrderEntryMapperImpl is the concrete implementation of OrderEntryMapper.
type OrderEntryMapperImpl struct{}

// NewOrderEntryMapper creates a new OrderEntryMapper.
func NewOrderEntryMapper() OrderEntryMapper {
	return &OrderEntryMapperImpl{}
}

// ToModel converts the write-time entry shape to its GORM model. Joined
// item fields never travel on writes.
func (m *OrderEntryMapperImpl) ToModel(entry *plan.OrderEntry) *models.OrderEntryModel {
	return &models.OrderEntryModel{
		ID:         entry.ID(),
		Date:       entry.Date(),
		TargetCost: entry.TargetCost(),
		FoodItemID: entry.FoodItemID(),
	}
}

// ToEntry converts a GORM model back to the write-time entry shape
func (m *OrderEntryMapperImpl) ToEntry(model *models.OrderEntryModel) (*plan.OrderEntry, error) {
	return plan.ReconstructOrderEntry(model.ID, model.Date, model.TargetCost, model.FoodItemID)
}
