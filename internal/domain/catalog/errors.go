package catalog

import "errors"

var (
	// ErrEmptyName indicates the item name is empty after trimming
	ErrEmptyName = errors.New("food item name cannot be empty")

	// ErrNonPositiveCost indicates the item cost is zero or negative
	ErrNonPositiveCost = errors.New("food item cost must be positive")

	// ErrItemNotFound indicates the food item was not found
	ErrItemNotFound = errors.New("food item not found")
)
