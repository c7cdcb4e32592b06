package usecase

import (
	"math"
	"testing"

	"github.com/nutrilog/backend/internal/domain"
)

func TestAggregateEmptyInput(t *testing.T) {
	svc := NewAggregationService()

	result := svc.Aggregate(nil)

	if result.MealCount != 0 {
		t.Errorf("MealCount = %d, want 0", result.MealCount)
	}
	if result.DaysCount != 0 {
		t.Errorf("DaysCount = %d, want 0", result.DaysCount)
	}
	for _, n := range domain.AllNutrients {
		if result.Totals[n] != 0 {
			t.Errorf("Totals[%s] = %v, want 0", n, result.Totals[n])
		}
		if result.Averages[n] != 0 {
			t.Errorf("Averages[%s] = %v, want 0", n, result.Averages[n])
		}
	}
}

func TestAggregateSingleDay(t *testing.T) {
	svc := NewAggregationService()

	// Two meals on the same day: calories "300" and "450-550" (normalizes to
	// 500), protein 20 and 35.
	records := []domain.MealRecord{
		{Date: "2024-03-01", Nutrients: domain.NutrientProfile{Calories: "300", Protein: 20}},
		{Date: "2024-03-01", Nutrients: domain.NutrientProfile{Calories: "450-550", Protein: 35}},
	}

	result := svc.Aggregate(records)

	if result.MealCount != 2 {
		t.Errorf("MealCount = %d, want 2", result.MealCount)
	}
	if result.DaysCount != 1 {
		t.Errorf("DaysCount = %d, want 1", result.DaysCount)
	}
	if got := result.Totals[domain.NutrientCalories]; got != 800 {
		t.Errorf("total calories = %v, want 800", got)
	}
	if got := result.Averages[domain.NutrientCalories]; got != 800 {
		t.Errorf("avg calories = %v, want 800", got)
	}
	if got := result.Totals[domain.NutrientProtein]; got != 55 {
		t.Errorf("total protein = %v, want 55", got)
	}
	if got := result.Averages[domain.NutrientProtein]; got != 55 {
		t.Errorf("avg protein = %v, want 55", got)
	}
}

func TestAggregateAveragesOverDistinctDays(t *testing.T) {
	svc := NewAggregationService()

	records := []domain.MealRecord{
		{Date: "2024-03-01", Nutrients: domain.NutrientProfile{Calories: "400", Fat: 10}},
		{Date: "2024-03-01", Nutrients: domain.NutrientProfile{Calories: "200", Fat: 5}},
		{Date: "2024-03-02", Nutrients: domain.NutrientProfile{Calories: "600", Fat: 15}},
	}

	result := svc.Aggregate(records)

	if result.DaysCount != 2 {
		t.Fatalf("DaysCount = %d, want 2", result.DaysCount)
	}
	if got := result.Totals[domain.NutrientCalories]; got != 1200 {
		t.Errorf("total calories = %v, want 1200", got)
	}
	if got := result.Averages[domain.NutrientCalories]; got != 600 {
		t.Errorf("avg calories = %v, want 600", got)
	}
	if got := result.Averages[domain.NutrientFat]; got != 15 {
		t.Errorf("avg fat = %v, want 15", got)
	}
}

func TestAggregateToleratesDirtyValues(t *testing.T) {
	svc := NewAggregationService()

	records := []domain.MealRecord{
		{Date: "2024-03-01", Nutrients: domain.NutrientProfile{
			Calories: "not a number",
			Protein:  math.NaN(),
			Fat:      math.Inf(1),
			Carbs:    30,
		}},
		{Date: "2024-03-01", Nutrients: domain.NutrientProfile{Calories: "100", Carbs: 20}},
	}

	result := svc.Aggregate(records)

	if got := result.Totals[domain.NutrientCalories]; got != 100 {
		t.Errorf("total calories = %v, want 100", got)
	}
	if got := result.Totals[domain.NutrientProtein]; got != 0 {
		t.Errorf("total protein = %v, want 0 (NaN contributes nothing)", got)
	}
	if got := result.Totals[domain.NutrientFat]; got != 0 {
		t.Errorf("total fat = %v, want 0 (Inf contributes nothing)", got)
	}
	if got := result.Totals[domain.NutrientCarbs]; got != 50 {
		t.Errorf("total carbs = %v, want 50", got)
	}
	for _, n := range domain.AllNutrients {
		if math.IsNaN(result.Totals[n]) {
			t.Errorf("Totals[%s] is NaN, want finite", n)
		}
	}
}

func TestDailySeries(t *testing.T) {
	svc := NewAggregationService()

	t.Run("empty input yields empty series", func(t *testing.T) {
		if got := svc.DailySeries(nil); len(got) != 0 {
			t.Errorf("len(series) = %d, want 0", len(got))
		}
	})

	t.Run("groups by date sorted ascending", func(t *testing.T) {
		records := []domain.MealRecord{
			{Date: "2024-03-02", Nutrients: domain.NutrientProfile{Calories: "600", Protein: 25}},
			{Date: "2024-03-01", Nutrients: domain.NutrientProfile{Calories: "300", Protein: 10}},
			{Date: "2024-03-01", Nutrients: domain.NutrientProfile{Calories: "450-550", Protein: 20}},
		}

		series := svc.DailySeries(records)
		if len(series) != 2 {
			t.Fatalf("len(series) = %d, want 2", len(series))
		}
		if series[0].Date != "2024-03-01" || series[1].Date != "2024-03-02" {
			t.Errorf("series dates = [%s, %s], want ascending", series[0].Date, series[1].Date)
		}
		if series[0].Calories != 800 {
			t.Errorf("day 1 calories = %v, want 800", series[0].Calories)
		}
		if series[0].Protein != 30 {
			t.Errorf("day 1 protein = %v, want 30", series[0].Protein)
		}
		if series[1].Calories != 600 {
			t.Errorf("day 2 calories = %v, want 600", series[1].Calories)
		}
	})
}
