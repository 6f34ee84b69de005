// Package catalog provides the domain model for the food catalog.
package catalog

import (
	"fmt"
	"strings"
)

// FoodItem represents a purchasable food item with a name and a fixed cost.
// The zero id means the item has not been persisted yet; the store assigns
// the id on insert and it is stable afterwards.
type FoodItem struct {
	id   uint
	name string
	cost float64
}

// NewFoodItem creates a new food item. The name must be non-empty after
// trimming and the cost must be positive.
func NewFoodItem(name string, cost float64) (*FoodItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if cost <= 0 {
		return nil, ErrNonPositiveCost
	}

	return &FoodItem{
		name: name,
		cost: cost,
	}, nil
}

// ReconstructFoodItem reconstructs a food item from persistence.
func ReconstructFoodItem(id uint, name string, cost float64) (*FoodItem, error) {
	if id == 0 {
		return nil, fmt.Errorf("food item ID cannot be zero")
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if cost <= 0 {
		return nil, ErrNonPositiveCost
	}

	return &FoodItem{
		id:   id,
		name: name,
		cost: cost,
	}, nil
}

// ID returns the item ID, zero before the item is persisted.
func (f *FoodItem) ID() uint {
	return f.id
}

// Name returns the item name
func (f *FoodItem) Name() string {
	return f.name
}

// Cost returns the item cost
func (f *FoodItem) Cost() float64 {
	return f.cost
}

// SetID sets the item ID (only for persistence layer use)
func (f *FoodItem) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("food item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("food item ID cannot be zero")
	}
	f.id = id
	return nil
}

// Rename updates the item name
func (f *FoodItem) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	f.name = name
	return nil
}

// Reprice updates the item cost
func (f *FoodItem) Reprice(cost float64) error {
	if cost <= 0 {
		return ErrNonPositiveCost
	}
	f.cost = cost
	return nil
}

// Equal reports whether two food items match on id, name and cost.
func (f *FoodItem) Equal(other *FoodItem) bool {
	if other == nil {
		return false
	}
	return f.id == other.id && f.name == other.name && f.cost == other.cost
}
