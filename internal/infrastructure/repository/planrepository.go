package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"platewise/internal/domain/plan"
	"platewise/internal/infrastructure/persistence/mappers"
	"platewise/internal/infrastructure/persistence/models"
	"platewise/internal/shared/constants"
	"platewise/internal/shared/db"
	apperrors "platewise/internal/shared/errors"
	"platewise/internal/shared/logger"
)

// planEntryRow is the scan target for entries joined with their food item.
type planEntryRow struct {
	ID           uint
	Date         string
	TargetCost   float64
	FoodItemID   uint
	FoodItemName string
	FoodItemCost float64
}

// PlanRepositoryImpl implements the plan.Repository interface.
type PlanRepositoryImpl struct {
	db     *gorm.DB
	tm     *db.TransactionManager
	mapper mappers.OrderEntryMapper
	logger logger.Interface
}

// NewPlanRepository creates a new order plan repository instance.
func NewPlanRepository(gormDB *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     gormDB,
		tm:     db.NewTransactionManager(gormDB),
		mapper: mappers.NewOrderEntryMapper(),
		logger: logger,
	}
}

// InsertEntry inserts a single order entry and returns its store ID.
func (r *PlanRepositoryImpl) InsertEntry(ctx context.Context, entry *plan.OrderEntry) (uint, error) {
	model := r.mapper.ToModel(entry)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsConstraintViolation(err) {
			return 0, apperrors.NewConstraintError("order entry violates store constraints", err.Error())
		}
		r.logger.Errorw("failed to insert order entry", "date", entry.Date(), "error", err)
		return 0, fmt.Errorf("failed to insert order entry: %w", err)
	}

	entry.SetID(model.ID)
	return model.ID, nil
}

// GetEntriesForDate retrieves the entries for a date joined with their food
// items, ordered by food item name ascending.
func (r *PlanRepositoryImpl) GetEntriesForDate(ctx context.Context, date string) ([]plan.PlanEntry, error) {
	var rows []planEntryRow

	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableOrderPlans+" op").
		Select("op.id, op.date, op.target_cost, op.food_item_id, fi.name AS food_item_name, fi.cost AS food_item_cost").
		Joins("JOIN "+constants.TableFoodItems+" fi ON fi.id = op.food_item_id").
		Where("op.date = ?", date).
		Order("fi.name ASC").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to get entries for date", "date", date, "error", err)
		return nil, fmt.Errorf("failed to get entries for date: %w", err)
	}

	entries := make([]plan.PlanEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, plan.PlanEntry{
			ID:           row.ID,
			Date:         row.Date,
			TargetCost:   row.TargetCost,
			FoodItemID:   row.FoodItemID,
			FoodItemName: row.FoodItemName,
			FoodItemCost: row.FoodItemCost,
		})
	}

	return entries, nil
}

// GetAllDates retrieves the distinct plan dates, most recent first. Dates
// in canonical form sort chronologically as text.
func (r *PlanRepositoryImpl) GetAllDates(ctx context.Context) ([]string, error) {
	var dates []string

	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableOrderPlans).
		Distinct("date").
		Order("date DESC").
		Pluck("date", &dates).Error
	if err != nil {
		r.logger.Errorw("failed to list plan dates", "error", err)
		return nil, fmt.Errorf("failed to list plan dates: %w", err)
	}

	return dates, nil
}

// DeleteEntriesForDate removes all entries for a date. Zero rows removed is
// a normal outcome for a date that never had a plan.
func (r *PlanRepositoryImpl) DeleteEntriesForDate(ctx context.Context, date string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("date = ?", date).
		Delete(&models.OrderEntryModel{})

	if result.Error != nil {
		r.logger.Errorw("failed to delete entries for date", "date", date, "error", result.Error)
		return 0, fmt.Errorf("failed to delete entries for date: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Infow("plan deleted", "date", date, "entries", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

// TotalCostForDate returns the summed food item cost for a date, 0.0 when
// no entries exist.
func (r *PlanRepositoryImpl) TotalCostForDate(ctx context.Context, date string) (float64, error) {
	var total float64

	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableOrderPlans+" op").
		Select("COALESCE(SUM(fi.cost), 0)").
		Joins("JOIN "+constants.TableFoodItems+" fi ON fi.id = op.food_item_id").
		Where("op.date = ?", date).
		Row().Scan(&total)
	if err != nil {
		r.logger.Errorw("failed to total cost for date", "date", date, "error", err)
		return 0, fmt.Errorf("failed to total cost for date: %w", err)
	}

	return total, nil
}

// HasEntriesForDate reports whether any entries exist for a date.
func (r *PlanRepositoryImpl) HasEntriesForDate(ctx context.Context, date string) (bool, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderEntryModel{}).
		Where("date = ?", date).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check entries for date", "date", date, "error", err)
		return false, fmt.Errorf("failed to check entries for date: %w", err)
	}

	return count > 0, nil
}

// Replace atomically swaps the plan for a date. The delete and the inserts
// run inside one transaction so no reader observes a transiently empty
// plan.
func (r *PlanRepositoryImpl) Replace(ctx context.Context, date string, entries []*plan.OrderEntry) error {
	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := r.DeleteEntriesForDate(txCtx, date); err != nil {
			return err
		}
		for _, entry := range entries {
			if _, err := r.InsertEntry(txCtx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Infow("plan replaced", "date", date, "entries", len(entries))
	return nil
}
