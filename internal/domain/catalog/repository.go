package catalog

import "context"

// Repository defines the interface for food item persistence operations
type Repository interface {
	// Create inserts a new food item and assigns its store ID
	Create(ctx context.Context, item *FoodItem) error

	// GetAll retrieves all food items in insertion order
	GetAll(ctx context.Context) ([]*FoodItem, error)

	// GetByID retrieves a food item by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id uint) (*FoodItem, error)

	// Update updates an existing food item and reports the number of rows
	// affected. Zero rows is a signal for the caller, not an error.
	Update(ctx context.Context, item *FoodItem) (int64, error)

	// Delete removes a food item by ID. Order entries referencing the item
	// are removed by the store's cascade rule.
	Delete(ctx context.Context, id uint) error

	// Search retrieves food items whose name contains the substring
	Search(ctx context.Context, substring string) ([]*FoodItem, error)
}
