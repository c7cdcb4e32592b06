package usecase

import (
	"math"
	"sort"

	"github.com/nutrilog/backend/internal/domain"
)

// AggregationService computes nutrient totals and per-day averages over a set
// of meal records. It is a pure fold over its input: no state, no I/O, safe
// for concurrent use.
type AggregationService struct{}

// NewAggregationService creates a new aggregation service.
func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// Aggregate sums every nutrient across records and divides by the number of
// distinct dates for the per-day averages. Calorie strings are normalized
// before summing; malformed numeric fields contribute 0. An empty input
// yields all-zero totals with DaysCount 0 and no division by zero.
func (s *AggregationService) Aggregate(records []domain.MealRecord) domain.AggregateResult {
	result := domain.AggregateResult{
		Totals:   make(map[domain.Nutrient]float64, len(domain.AllNutrients)),
		Averages: make(map[domain.Nutrient]float64, len(domain.AllNutrients)),
	}
	for _, n := range domain.AllNutrients {
		result.Totals[n] = 0
		result.Averages[n] = 0
	}
	if len(records) == 0 {
		return result
	}

	result.MealCount = len(records)
	result.DaysCount = countDistinctDates(records)

	for _, rec := range records {
		result.Totals[domain.NutrientCalories] += ParseCalorieValue(rec.Nutrients.Calories)
		for _, n := range domain.AllNutrients {
			if n == domain.NutrientCalories {
				continue
			}
			result.Totals[n] += safeValue(rec.Nutrients.Value(n))
		}
	}

	if result.DaysCount > 0 {
		for _, n := range domain.AllNutrients {
			result.Averages[n] = result.Totals[n] / float64(result.DaysCount)
		}
	}
	return result
}

// DailySeries groups records by date and returns the calorie and macro totals
// of each day, sorted by date ascending.
func (s *AggregationService) DailySeries(records []domain.MealRecord) []domain.DailyTotals {
	byDate := make(map[string]*domain.DailyTotals)
	for _, rec := range records {
		day, ok := byDate[rec.Date]
		if !ok {
			day = &domain.DailyTotals{Date: rec.Date}
			byDate[rec.Date] = day
		}
		day.Calories += ParseCalorieValue(rec.Nutrients.Calories)
		day.Protein += safeValue(rec.Nutrients.Protein)
		day.Fat += safeValue(rec.Nutrients.Fat)
		day.Carbs += safeValue(rec.Nutrients.Carbs)
	}

	series := make([]domain.DailyTotals, 0, len(byDate))
	for _, day := range byDate {
		series = append(series, *day)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// countDistinctDates counts the unique date strings across records.
func countDistinctDates(records []domain.MealRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Date] = struct{}{}
	}
	return len(seen)
}

// safeValue coerces NaN and infinities to 0 so dirty rows never poison a sum.
func safeValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
