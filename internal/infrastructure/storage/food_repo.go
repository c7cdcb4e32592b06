package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nutrilog/backend/internal/domain"
)

// FoodRepo persists the food library in sqlite.
type FoodRepo struct {
	db *gorm.DB
}

// NewFoodRepo creates a food repository backed by db.
func NewFoodRepo(db *gorm.DB) *FoodRepo {
	return &FoodRepo{db: db}
}

// Create inserts a library entry. A name collision fails with
// ErrFoodAlreadyExists and leaves the table unchanged.
func (r *FoodRepo) Create(ctx context.Context, entry *domain.FoodLibraryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	row := foodRowFrom(entry)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", domain.ErrFoodAlreadyExists, entry.Name)
		}
		return fmt.Errorf("failed to create food: %w", err)
	}
	entry.ID = row.ID
	return nil
}

// GetByID fetches one entry.
func (r *FoodRepo) GetByID(ctx context.Context, id uint) (*domain.FoodLibraryEntry, error) {
	var row foodRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	entry := row.toDomain()
	return &entry, nil
}

// List returns the whole library ordered by food name.
func (r *FoodRepo) List(ctx context.Context) ([]domain.FoodLibraryEntry, error) {
	var rows []foodRow
	if err := r.db.WithContext(ctx).Order("food_name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	entries := make([]domain.FoodLibraryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].toDomain())
	}
	return entries, nil
}

// Update saves changed name/nutrients for an existing entry.
func (r *FoodRepo) Update(ctx context.Context, entry *domain.FoodLibraryEntry) error {
	row := foodRowFrom(entry)
	result := r.db.WithContext(ctx).Model(&foodRow{}).Where("id = ?", entry.ID).
		Select("*").Omit("id", "created_date").Updates(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", domain.ErrFoodAlreadyExists, entry.Name)
		}
		return fmt.Errorf("failed to update food: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}

// Delete removes one entry.
func (r *FoodRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&foodRow{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete food: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}
