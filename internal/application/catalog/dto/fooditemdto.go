// Package dto defines the plain-data request and response shapes of the
// catalog use cases. No domain or storage types cross this boundary.
package dto

// AddFoodItemRequest carries the input for adding a catalog item.
type AddFoodItemRequest struct {
	Name string  `json:"name" validate:"required"`
	Cost float64 `json:"cost" validate:"required,gt=0"`
}

// UpdateFoodItemRequest carries the input for updating a catalog item.
type UpdateFoodItemRequest struct {
	ID   uint    `json:"id" validate:"required"`
	Name string  `json:"name" validate:"required"`
	Cost float64 `json:"cost" validate:"required,gt=0"`
}

// FoodItemResponse is the plain-data view of a catalog item.
type FoodItemResponse struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}
