package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nutrilog/backend/internal/domain"
)

// MealRepo persists the meal log in sqlite.
type MealRepo struct {
	db *gorm.DB
}

// NewMealRepo creates a meal repository backed by db.
func NewMealRepo(db *gorm.DB) *MealRepo {
	return &MealRepo{db: db}
}

// Create appends one record to the log.
func (r *MealRepo) Create(ctx context.Context, record *domain.MealRecord) error {
	row := mealRowFrom(record)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	record.ID = row.ID
	return nil
}

// ListByDateRange returns meals with start <= date <= end, newest first.
// Dates are ISO strings, so BETWEEN compares them chronologically.
func (r *MealRepo) ListByDateRange(ctx context.Context, start, end string) ([]domain.MealRecord, error) {
	var rows []mealRow
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").Order("time DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}

	records := make([]domain.MealRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toDomain())
	}
	return records, nil
}

// Delete removes one record from the log.
func (r *MealRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&mealRow{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete meal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}
