package storage

import (
	"time"

	"github.com/nutrilog/backend/internal/domain"
)

// nutrientColumns mirrors domain.NutrientProfile field-for-field so the two
// convert directly; only the tags differ. Column names are pinned to the
// legacy schema.
type nutrientColumns struct {
	Calories     string  `gorm:"column:calories"`
	Protein      float64 `gorm:"column:protein"`
	Fat          float64 `gorm:"column:fat"`
	Carbs        float64 `gorm:"column:carbs"`
	Fiber        float64 `gorm:"column:fiber"`
	Sodium       float64 `gorm:"column:sodium"`
	Cholesterol  float64 `gorm:"column:cholesterol"`
	Sugar        float64 `gorm:"column:sugar"`
	SaturatedFat float64 `gorm:"column:saturated_fat"`
	VitaminA     float64 `gorm:"column:vitamin_a"`
	VitaminB1    float64 `gorm:"column:vitamin_b1"`
	VitaminB2    float64 `gorm:"column:vitamin_b2"`
	VitaminB3    float64 `gorm:"column:vitamin_b3"`
	VitaminB5    float64 `gorm:"column:vitamin_b5"`
	VitaminB6    float64 `gorm:"column:vitamin_b6"`
	VitaminB12   float64 `gorm:"column:vitamin_b12"`
	VitaminC     float64 `gorm:"column:vitamin_c"`
	VitaminD     float64 `gorm:"column:vitamin_d"`
	VitaminE     float64 `gorm:"column:vitamin_e"`
	VitaminK     float64 `gorm:"column:vitamin_k"`
	Folate       float64 `gorm:"column:folate"`
	Calcium      float64 `gorm:"column:calcium"`
	Iron         float64 `gorm:"column:iron"`
	Magnesium    float64 `gorm:"column:magnesium"`
	Phosphorus   float64 `gorm:"column:phosphorus"`
	Potassium    float64 `gorm:"column:potassium"`
	Zinc         float64 `gorm:"column:zinc"`
	Copper       float64 `gorm:"column:copper"`
	Manganese    float64 `gorm:"column:manganese"`
	Selenium     float64 `gorm:"column:selenium"`
	Iodine       float64 `gorm:"column:iodine"`
	Chromium     float64 `gorm:"column:chromium"`
	Molybdenum   float64 `gorm:"column:molybdenum"`
	Omega3       float64 `gorm:"column:omega_3"`
	Omega6       float64 `gorm:"column:omega_6"`
	Water        float64 `gorm:"column:water"`
	Ash          float64 `gorm:"column:ash"`
}

// foodRow is the food_library table.
type foodRow struct {
	ID          uint            `gorm:"column:id;primaryKey"`
	FoodName    string          `gorm:"column:food_name;uniqueIndex;not null"`
	Nutrients   nutrientColumns `gorm:"embedded"`
	CreatedDate string          `gorm:"column:created_date"`
}

func (foodRow) TableName() string { return "food_library" }

// mealRow is the meals table.
type mealRow struct {
	ID        uint            `gorm:"column:id;primaryKey"`
	Date      string          `gorm:"column:date;index;not null"`
	Time      string          `gorm:"column:time"`
	FoodName  string          `gorm:"column:food_name;not null"`
	Portion   string          `gorm:"column:portion"`
	Nutrients nutrientColumns `gorm:"embedded"`
	Notes     string          `gorm:"column:notes"`
}

func (mealRow) TableName() string { return "meals" }

func (r *foodRow) toDomain() domain.FoodLibraryEntry {
	createdAt, _ := time.Parse(time.RFC3339, r.CreatedDate)
	return domain.FoodLibraryEntry{
		ID:        r.ID,
		Name:      r.FoodName,
		Nutrients: domain.NutrientProfile(r.Nutrients),
		CreatedAt: createdAt,
	}
}

func foodRowFrom(entry *domain.FoodLibraryEntry) foodRow {
	createdDate := ""
	if !entry.CreatedAt.IsZero() {
		createdDate = entry.CreatedAt.Format(time.RFC3339)
	}
	return foodRow{
		ID:          entry.ID,
		FoodName:    entry.Name,
		Nutrients:   nutrientColumns(entry.Nutrients),
		CreatedDate: createdDate,
	}
}

func (r *mealRow) toDomain() domain.MealRecord {
	return domain.MealRecord{
		ID:        r.ID,
		Date:      r.Date,
		Time:      r.Time,
		FoodName:  r.FoodName,
		Portion:   r.Portion,
		Nutrients: domain.NutrientProfile(r.Nutrients),
		Notes:     r.Notes,
	}
}

func mealRowFrom(record *domain.MealRecord) mealRow {
	return mealRow{
		ID:        record.ID,
		Date:      record.Date,
		Time:      record.Time,
		FoodName:  record.FoodName,
		Portion:   record.Portion,
		Nutrients: nutrientColumns(record.Nutrients),
		Notes:     record.Notes,
	}
}
