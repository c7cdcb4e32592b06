package domain

import "context"

// FoodRepository defines persistence for the food library.
type FoodRepository interface {
	Create(ctx context.Context, entry *FoodLibraryEntry) error
	GetByID(ctx context.Context, id uint) (*FoodLibraryEntry, error)
	// List returns every entry ordered by food name.
	List(ctx context.Context) ([]FoodLibraryEntry, error)
	Update(ctx context.Context, entry *FoodLibraryEntry) error
	Delete(ctx context.Context, id uint) error
}

// MealRepository defines persistence for the date-indexed meal log.
type MealRepository interface {
	Create(ctx context.Context, record *MealRecord) error
	// ListByDateRange returns meals with start <= date <= end, ordered by
	// date descending then time descending.
	ListByDateRange(ctx context.Context, start, end string) ([]MealRecord, error)
	Delete(ctx context.Context, id uint) error
}
