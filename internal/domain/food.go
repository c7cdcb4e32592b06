package domain

import "time"

// FoodLibraryEntry is a reusable food template. Meal records are derived from
// an entry by scaling its per-serving profile with a portion multiplier.
type FoodLibraryEntry struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Nutrients NutrientProfile `json:"nutrients"`
	CreatedAt time.Time       `json:"created_at"`
}
