package domain

// DateLayout is the calendar-date format used for meal dates and range
// queries. Dates are stored and compared as strings, so lexical order equals
// chronological order.
const DateLayout = "2006-01-02"

// TimeLayout is the optional time-of-day format on a meal record.
const TimeLayout = "15:04"

// MealRecord is one logged meal: a nutrient snapshot tagged with a date.
// Records are immutable once created; the only later operation is deletion.
type MealRecord struct {
	ID        uint            `json:"id"`
	Date      string          `json:"date"`
	Time      string          `json:"time,omitempty"`
	FoodName  string          `json:"food_name"`
	Portion   string          `json:"portion,omitempty"`
	Nutrients NutrientProfile `json:"nutrients"`
	Notes     string          `json:"notes,omitempty"`
}

// AggregateResult holds per-nutrient sums over a set of meal records.
// It is derived data, recomputed on every query and never persisted.
type AggregateResult struct {
	Totals    map[Nutrient]float64 `json:"totals"`
	Averages  map[Nutrient]float64 `json:"averages"`
	MealCount int                  `json:"meal_count"`
	DaysCount int                  `json:"days_count"`
}

// DailyTotals is one point of a per-day trend series: the summed calories and
// macros of every meal logged on Date.
type DailyTotals struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}
