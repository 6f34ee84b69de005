package usecases

import (
	"context"

	"platewise/internal/domain/catalog"
	"platewise/internal/shared/logger"
)

type mockFoodItemRepository struct {
	CreateFunc  func(ctx context.Context, item *catalog.FoodItem) error
	GetAllFunc  func(ctx context.Context) ([]*catalog.FoodItem, error)
	GetByIDFunc func(ctx context.Context, id uint) (*catalog.FoodItem, error)
	UpdateFunc  func(ctx context.Context, item *catalog.FoodItem) (int64, error)
	DeleteFunc  func(ctx context.Context, id uint) error
	SearchFunc  func(ctx context.Context, substring string) ([]*catalog.FoodItem, error)
}

func (m *mockFoodItemRepository) Create(ctx context.Context, item *catalog.FoodItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return item.SetID(1)
}

func (m *mockFoodItemRepository) GetAll(ctx context.Context) ([]*catalog.FoodItem, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockFoodItemRepository) GetByID(ctx context.Context, id uint) (*catalog.FoodItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFoodItemRepository) Update(ctx context.Context, item *catalog.FoodItem) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return 1, nil
}

func (m *mockFoodItemRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockFoodItemRepository) Search(ctx context.Context, substring string) ([]*catalog.FoodItem, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, substring)
	}
	return nil, nil
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
