package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrilog/backend/internal/domain"
)

func TestFoodRowRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	entry := domain.FoodLibraryEntry{
		ID:   7,
		Name: "Oatmeal",
		Nutrients: domain.NutrientProfile{
			Calories:   "300-400",
			Protein:    10,
			VitaminB12: 0.6,
			Omega3:     0.2,
			Ash:        1.1,
		},
		CreatedAt: createdAt,
	}

	row := foodRowFrom(&entry)
	require.Equal(t, uint(7), row.ID)
	require.Equal(t, "Oatmeal", row.FoodName)
	require.Equal(t, "300-400", row.Nutrients.Calories)
	require.Equal(t, createdAt.Format(time.RFC3339), row.CreatedDate)

	back := row.toDomain()
	assert.Equal(t, entry.ID, back.ID)
	assert.Equal(t, entry.Name, back.Name)
	assert.Equal(t, entry.Nutrients, back.Nutrients)
	assert.True(t, back.CreatedAt.Equal(createdAt))
}

func TestFoodRowFromZeroCreatedAt(t *testing.T) {
	entry := domain.FoodLibraryEntry{Name: "Egg"}

	row := foodRowFrom(&entry)
	assert.Empty(t, row.CreatedDate)

	back := row.toDomain()
	assert.True(t, back.CreatedAt.IsZero())
}

func TestMealRowRoundTrip(t *testing.T) {
	record := domain.MealRecord{
		ID:       3,
		Date:     "2024-03-01",
		Time:     "08:30",
		FoodName: "Oatmeal",
		Portion:  "1.5x",
		Nutrients: domain.NutrientProfile{
			Calories: "525",
			Protein:  15,
			Fiber:    6,
		},
		Notes: "post workout",
	}

	row := mealRowFrom(&record)
	require.Equal(t, "2024-03-01", row.Date)
	require.Equal(t, "meals", row.TableName())

	back := row.toDomain()
	assert.Equal(t, record, back)
}
