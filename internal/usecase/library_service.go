package usecase

import (
	"context"
	"strings"

	"github.com/nutrilog/backend/internal/domain"
)

// LibraryService manages the food library: reusable per-serving nutrient
// profiles keyed by a unique food name.
type LibraryService struct {
	foods domain.FoodRepository
}

// NewLibraryService creates a new library service.
func NewLibraryService(foods domain.FoodRepository) *LibraryService {
	return &LibraryService{foods: foods}
}

// CreateFood adds a food to the library. A duplicate name fails with
// ErrFoodAlreadyExists without touching existing state.
func (s *LibraryService) CreateFood(ctx context.Context, name string, nutrients domain.NutrientProfile) (*domain.FoodLibraryEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidRequest
	}

	entry := &domain.FoodLibraryEntry{
		Name:      name,
		Nutrients: nutrients,
	}
	if err := s.foods.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetFood fetches a single library entry by ID.
func (s *LibraryService) GetFood(ctx context.Context, id uint) (*domain.FoodLibraryEntry, error) {
	return s.foods.GetByID(ctx, id)
}

// ListFoods returns the whole library ordered by food name.
func (s *LibraryService) ListFoods(ctx context.Context) ([]domain.FoodLibraryEntry, error) {
	return s.foods.List(ctx)
}

// UpdateFood replaces the name and nutrient profile of an existing entry.
func (s *LibraryService) UpdateFood(ctx context.Context, id uint, name string, nutrients domain.NutrientProfile) (*domain.FoodLibraryEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidRequest
	}

	entry, err := s.foods.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.Name = name
	entry.Nutrients = nutrients
	if err := s.foods.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteFood removes a library entry. Meals already logged from it keep
// their snapshots.
func (s *LibraryService) DeleteFood(ctx context.Context, id uint) error {
	return s.foods.Delete(ctx, id)
}
