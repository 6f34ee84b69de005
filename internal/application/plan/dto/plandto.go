// Package dto defines the plain-data request and response shapes of the
// order plan use cases.
package dto

// SavePlanRequest drives one non-interactive plan-construction session.
// Budget and item selection are judged by the plan builder, which answers
// with refusals rather than validation errors; only the date format is
// checked here.
type SavePlanRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	// Budget is the target cost for the plan; 0 means unset and the
	// builder will refuse the commit.
	Budget float64 `json:"budget"`
	// ItemIDs are catalog item IDs to select, in the given order.
	ItemIDs []uint `json:"item_ids"`
	// ConfirmReplace approves replacing an existing plan for the date.
	ConfirmReplace bool `json:"confirm_replace"`
}

// SkippedItem reports one selection the builder refused.
type SkippedItem struct {
	FoodItemID uint   `json:"food_item_id"`
	Reason     string `json:"reason"`
}

// SavePlanResult reports the outcome of a save session. Saved is false
// when the commit was refused; Refusal then names the reason.
type SavePlanResult struct {
	Saved      bool          `json:"saved"`
	Refusal    string        `json:"refusal,omitempty"`
	Date       string        `json:"date"`
	TargetCost float64       `json:"target_cost"`
	ActualCost float64       `json:"actual_cost"`
	Remaining  float64       `json:"remaining"`
	Selected   []uint        `json:"selected"`
	Skipped    []SkippedItem `json:"skipped,omitempty"`
}

// PlanEntryResponse is the plain-data view of one joined plan entry.
type PlanEntryResponse struct {
	FoodItemID   uint    `json:"food_item_id"`
	FoodItemName string  `json:"food_item_name"`
	FoodItemCost float64 `json:"food_item_cost"`
}

// PlanResponse is the plain-data view of an order plan for one date.
type PlanResponse struct {
	Date       string              `json:"date"`
	TargetCost float64             `json:"target_cost"`
	ActualCost float64             `json:"actual_cost"`
	Remaining  float64             `json:"remaining"`
	Entries    []PlanEntryResponse `json:"entries"`
}

// DeletePlanResult reports how many entries a plan deletion removed.
// Deleting a date without a plan succeeds with zero removed.
type DeletePlanResult struct {
	Date    string `json:"date"`
	Removed int64  `json:"removed"`
}
