// Package plan provides the domain model for budget-constrained order
// plans: the write-time order entry, the read-time joined plan view, and
// the plan builder that enforces the budget rules.
package plan

import (
	"time"

	"platewise/internal/shared/constants"
)

// OrderEntry is the write-time shape of one persisted plan row: one
// selected food item for one date, carrying the budget in force when the
// plan was saved. It deliberately has no denormalized item fields; joined
// reads use PlanEntry instead.
type OrderEntry struct {
	id         uint
	date       string
	targetCost float64
	foodItemID uint
}

// NewOrderEntry creates a new order entry for a date.
func NewOrderEntry(date string, targetCost float64, foodItemID uint) (*OrderEntry, error) {
	if !ValidDate(date) {
		return nil, ErrInvalidDate
	}
	if targetCost <= 0 {
		return nil, ErrInvalidTargetCost
	}
	if foodItemID == 0 {
		return nil, ErrMissingFoodItem
	}

	return &OrderEntry{
		date:       date,
		targetCost: targetCost,
		foodItemID: foodItemID,
	}, nil
}

// ReconstructOrderEntry reconstructs an order entry from persistence.
func ReconstructOrderEntry(id uint, date string, targetCost float64, foodItemID uint) (*OrderEntry, error) {
	entry, err := NewOrderEntry(date, targetCost, foodItemID)
	if err != nil {
		return nil, err
	}
	entry.id = id
	return entry, nil
}

// ID returns the entry ID, zero before the entry is persisted.
func (e *OrderEntry) ID() uint {
	return e.id
}

// Date returns the plan date in YYYY-MM-DD form
func (e *OrderEntry) Date() string {
	return e.date
}

// TargetCost returns the budget in force when the entry's plan was created
func (e *OrderEntry) TargetCost() float64 {
	return e.targetCost
}

// FoodItemID returns the referenced food item ID
func (e *OrderEntry) FoodItemID() uint {
	return e.foodItemID
}

// SetID sets the entry ID (only for persistence layer use)
func (e *OrderEntry) SetID(id uint) {
	e.id = id
}

// ValidDate reports whether the date is in canonical YYYY-MM-DD form.
func ValidDate(date string) bool {
	_, err := time.Parse(constants.DateLayout, date)
	return err == nil
}

// Today returns the current local date in canonical form.
func Today() string {
	return time.Now().Format(constants.DateLayout)
}
