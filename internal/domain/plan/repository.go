package plan

import "context"

// Repository defines the interface for order plan persistence operations
type Repository interface {
	// InsertEntry inserts a single order entry and returns its store ID
	InsertEntry(ctx context.Context, entry *OrderEntry) (uint, error)

	// GetEntriesForDate retrieves the entries for a date joined with their
	// food items, ordered by food item name ascending
	GetEntriesForDate(ctx context.Context, date string) ([]PlanEntry, error)

	// GetAllDates retrieves the distinct plan dates, most recent first
	GetAllDates(ctx context.Context) ([]string, error)

	// DeleteEntriesForDate removes all entries for a date and reports the
	// number of rows removed. Deleting a date with no entries is not an
	// error.
	DeleteEntriesForDate(ctx context.Context, date string) (int64, error)

	// TotalCostForDate returns the summed food item cost for a date, 0 when
	// no entries exist
	TotalCostForDate(ctx context.Context, date string) (float64, error)

	// HasEntriesForDate reports whether any entries exist for a date
	HasEntriesForDate(ctx context.Context, date string) (bool, error)

	// Replace atomically swaps the plan for a date: existing entries are
	// deleted and the given entries inserted inside one transaction, so no
	// observer sees a transiently empty plan.
	Replace(ctx context.Context, date string, entries []*OrderEntry) error
}
