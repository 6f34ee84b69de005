package usecases

import (
	"context"

	"platewise/internal/domain/catalog"
	"platewise/internal/domain/plan"
	"platewise/internal/shared/logger"
)

type mockCatalogRepository struct {
	CreateFunc  func(ctx context.Context, item *catalog.FoodItem) error
	GetAllFunc  func(ctx context.Context) ([]*catalog.FoodItem, error)
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.FoodItem, error)
	UpdateFunc  func(ctx context.Context, item *catalog.FoodItem) (int64, error)
	DeleteFunc  func(ctx context.Context, id uint) error
	SearchFunc  func(ctx context.Context, substring string) ([]*catalog.FoodItem, error)
}

func (m *mockCatalogRepository) Create(ctx context.Context, item *catalog.FoodItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *mockCatalogRepository) GetAll(ctx context.Context) ([]*catalog.FoodItem, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetByID(ctx context.Context, id uint) (*catalog.FoodItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalogRepository) Update(ctx context.Context, item *catalog.FoodItem) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return 1, nil
}

func (m *mockCatalogRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCatalogRepository) Search(ctx context.Context, substring string) ([]*catalog.FoodItem, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, substring)
	}
	return nil, nil
}

type mockPlanRepository struct {
	InsertEntryFunc          func(ctx context.Context, entry *plan.OrderEntry) (uint, error)
	GetEntriesForDateFunc    func(ctx context.Context, date string) ([]plan.PlanEntry, error)
	GetAllDatesFunc          func(ctx context.Context) ([]string, error)
	DeleteEntriesForDateFunc func(ctx context.Context, date string) (int64, error)
	TotalCostForDateFunc     func(ctx context.Context, date string) (float64, error)
	HasEntriesForDateFunc    func(ctx context.Context, date string) (bool, error)
	ReplaceFunc              func(ctx context.Context, date string, entries []*plan.OrderEntry) error
}

func (m *mockPlanRepository) InsertEntry(ctx context.Context, entry *plan.OrderEntry) (uint, error) {
	if m.InsertEntryFunc != nil {
		return m.InsertEntryFunc(ctx, entry)
	}
	return 1, nil
}

func (m *mockPlanRepository) GetEntriesForDate(ctx context.Context, date string) ([]plan.PlanEntry, error) {
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

func (m *mockPlanRepository) Replace(ctx context.Context, date string, entries []*plan.OrderEntry) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, date, entries)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
