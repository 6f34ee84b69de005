package plan

import "errors"

var (
	// ErrPlanNotFound indicates no plan exists for the date
	ErrPlanNotFound = errors.New("order plan not found")

	// ErrItemNotInCatalog indicates a selection referenced an item that is
	// not part of the builder's catalog snapshot
	ErrItemNotInCatalog = errors.New("food item not in catalog")

	// ErrInvalidDate indicates a date not in the canonical YYYY-MM-DD form
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD form")

	// ErrInvalidTargetCost indicates a zero or negative target cost on a
	// persisted entry
	ErrInvalidTargetCost = errors.New("target cost must be positive")

	// ErrMissingFoodItem indicates an entry without a food item reference
	ErrMissingFoodItem = errors.New("order entry requires a food item")

	// ErrEmptyPlan indicates an order plan constructed without entries
	ErrEmptyPlan = errors.New("order plan requires at least one entry")
)
