package models

import (
	"platewise/internal/shared/constants"
)

// FoodItemModel represents the database persistence model for food items.
type FoodItemModel struct {
	ID   uint    `gorm:"primarykey"`
	Name string  `gorm:"not null"`
	Cost float64 `gorm:"not null"`
}

// TableName specifies the table name for GORM.
func (FoodItemModel) TableName() string {
	return constants.TableFoodItems
}
