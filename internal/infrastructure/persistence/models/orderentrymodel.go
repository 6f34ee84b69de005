package models

import (
	"platewise/internal/shared/constants"
)

// OrderEntryModel represents the database persistence model for order plan
// entries: one row per selected food item per date.
type OrderEntryModel struct {
	ID         uint    `gorm:"primarykey"`
	Date       string  `gorm:"not null;index:idx_order_plans_date"`
	TargetCost float64 `gorm:"not null"`
	FoodItemID uint    `gorm:"not null;index:idx_order_plans_food_item_id"`

	// FoodItem declares the foreign key so schema creation carries the
	// ON DELETE CASCADE rule.
	FoodItem *FoodItemModel `gorm:"foreignKey:FoodItemID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (OrderEntryModel) TableName() string {
	return constants.TableOrderPlans
}
