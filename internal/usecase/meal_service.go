package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/nutrilog/backend/internal/domain"
)

// LogMealInput describes one meal to append to the log.
type LogMealInput struct {
	FoodID     uint
	Date       string // YYYY-MM-DD, defaults to today when empty
	Time       string // HH:MM, optional
	Multiplier float64
	Notes      string
}

// MealService logs meals against the date-indexed log by scaling a library
// entry's per-serving profile with a portion multiplier.
type MealService struct {
	foods domain.FoodRepository
	meals domain.MealRepository
}

// NewMealService creates a new meal service.
func NewMealService(foods domain.FoodRepository, meals domain.MealRepository) *MealService {
	return &MealService{foods: foods, meals: meals}
}

// LogMeal creates an immutable meal record from a library entry. Every
// numeric nutrient is scaled by the multiplier; the calorie string is
// normalized first, then scaled and re-stringified, so a stored range
// collapses into its scaled midpoint at logging time.
func (s *MealService) LogMeal(ctx context.Context, input LogMealInput) (*domain.MealRecord, error) {
	if input.Multiplier <= 0 {
		return nil, fmt.Errorf("%w: portion multiplier must be positive", domain.ErrInvalidRequest)
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(domain.DateLayout)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidRequest, input.Date)
	}
	if input.Time != "" {
		if _, err := time.Parse(domain.TimeLayout, input.Time); err != nil {
			return nil, fmt.Errorf("%w: invalid time %q", domain.ErrInvalidRequest, input.Time)
		}
	}

	food, err := s.foods.GetByID(ctx, input.FoodID)
	if err != nil {
		return nil, err
	}

	nutrients := food.Nutrients.ScaleNumeric(input.Multiplier)
	nutrients.Calories = FormatCalorieValue(ParseCalorieValue(food.Nutrients.Calories) * input.Multiplier)

	record := &domain.MealRecord{
		Date:      date,
		Time:      input.Time,
		FoodName:  food.Name,
		Portion:   formatPortion(input.Multiplier),
		Nutrients: nutrients,
		Notes:     input.Notes,
	}
	if err := s.meals.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListMeals returns the log entries between start and end inclusive, newest
// first. Both bounds must be valid dates.
func (s *MealService) ListMeals(ctx context.Context, start, end string) ([]domain.MealRecord, error) {
	if _, err := time.Parse(domain.DateLayout, start); err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", domain.ErrInvalidRequest, start)
	}
	if _, err := time.Parse(domain.DateLayout, end); err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", domain.ErrInvalidRequest, end)
	}
	return s.meals.ListByDateRange(ctx, start, end)
}

// DeleteMeal removes one entry from the log.
func (s *MealService) DeleteMeal(ctx context.Context, id uint) error {
	return s.meals.Delete(ctx, id)
}

// formatPortion renders the multiplier as the portion label, e.g. "1.5x".
func formatPortion(multiplier float64) string {
	return strconv.FormatFloat(multiplier, 'f', -1, 64) + "x"
}
