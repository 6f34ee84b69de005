package plan

import "context"

type mockPlanRepository struct {
	InsertEntryFunc          func(ctx context.Context, entry *OrderEntry) (uint, error)
	GetEntriesForDateFunc    func(ctx context.Context, date string) ([]PlanEntry, error)
	GetAllDatesFunc          func(ctx context.Context) ([]string, error)
	DeleteEntriesForDateFunc func(ctx context.Context, date string) (int64, error)
	TotalCostForDateFunc     func(ctx context.Context, date string) (float64, error)
	HasEntriesForDateFunc    func(ctx context.Context, date string) (bool, error)
	ReplaceFunc              func(ctx context.Context, date string, entries []*OrderEntry) error
}

func (m *mockPlanRepository) InsertEntry(ctx context.Context, entry *OrderEntry) (uint, error) {
	if m.InsertEntryFunc != nil {
		return m.InsertEntryFunc(ctx, entry)
	}
	return 1, nil
}

func (m *mockPlanRepository) GetEntriesForDate(ctx context.Context, date string) ([]PlanEntry, error) {
	if m.GetEntriesForDateFunc != nil {
		return m.GetEntriesForDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *mockPlanRepository) GetAllDates(ctx context.Context) ([]string, error) {
	if m.GetAllDatesFunc != nil {
		return m.GetAllDatesFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepository) DeleteEntriesForDate(ctx context.Context, date string) (int64, error) {
	if m.DeleteEntriesForDateFunc != nil {
		return m.DeleteEntriesForDateFunc(ctx, date)
	}
	return 0, nil
}

func (m *mockPlanRepository) TotalCostForDate(ctx context.Context, date string) (float64, error) {
	if m.TotalCostForDateFunc != nil {
		return m.TotalCostForDateFunc(ctx, date)
	}
	return 0, nil
}

func (m *mockPlanRepository) HasEntriesForDate(ctx context.Context, date string) (bool, error) {
	if m.HasEntriesForDateFunc != nil {
		return m.HasEntriesForDateFunc(ctx, date)
	}
	return false, nil
}

func (m *mockPlanRepository) Replace(ctx context.Context, date string, entries []*OrderEntry) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, date, entries)
	}
	return nil
}
