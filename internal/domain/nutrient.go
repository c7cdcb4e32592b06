package domain

// Nutrient identifies one tracked nutrient column. The string value doubles
// as the JSON/CSV column name.
type Nutrient string

const (
	NutrientCalories     Nutrient = "calories"
	NutrientProtein      Nutrient = "protein"
	NutrientFat          Nutrient = "fat"
	NutrientCarbs        Nutrient = "carbs"
	NutrientFiber        Nutrient = "fiber"
	NutrientSodium       Nutrient = "sodium"
	NutrientCholesterol  Nutrient = "cholesterol"
	NutrientSugar        Nutrient = "sugar"
	NutrientSaturatedFat Nutrient = "saturated_fat"
	NutrientVitaminA     Nutrient = "vitamin_a"
	NutrientVitaminB1    Nutrient = "vitamin_b1"
	NutrientVitaminB2    Nutrient = "vitamin_b2"
	NutrientVitaminB3    Nutrient = "vitamin_b3"
	NutrientVitaminB5    Nutrient = "vitamin_b5"
	NutrientVitaminB6    Nutrient = "vitamin_b6"
	NutrientVitaminB12   Nutrient = "vitamin_b12"
	NutrientVitaminC     Nutrient = "vitamin_c"
	NutrientVitaminD     Nutrient = "vitamin_d"
	NutrientVitaminE     Nutrient = "vitamin_e"
	NutrientVitaminK     Nutrient = "vitamin_k"
	NutrientFolate       Nutrient = "folate"
	NutrientCalcium      Nutrient = "calcium"
	NutrientIron         Nutrient = "iron"
	NutrientMagnesium    Nutrient = "magnesium"
	NutrientPhosphorus   Nutrient = "phosphorus"
	NutrientPotassium    Nutrient = "potassium"
	NutrientZinc         Nutrient = "zinc"
	NutrientCopper       Nutrient = "copper"
	NutrientManganese    Nutrient = "manganese"
	NutrientSelenium     Nutrient = "selenium"
	NutrientIodine       Nutrient = "iodine"
	NutrientChromium     Nutrient = "chromium"
	NutrientMolybdenum   Nutrient = "molybdenum"
	NutrientOmega3       Nutrient = "omega_3"
	NutrientOmega6       Nutrient = "omega_6"
	NutrientWater        Nutrient = "water"
	NutrientAsh          Nutrient = "ash"
)

// AllNutrients lists every tracked nutrient in storage column order.
// Calories is first and is the only non-numeric field on NutrientProfile.
var AllNutrients = []Nutrient{
	NutrientCalories, NutrientProtein, NutrientFat, NutrientCarbs,
	NutrientFiber, NutrientSodium, NutrientCholesterol, NutrientSugar,
	NutrientSaturatedFat, NutrientVitaminA, NutrientVitaminB1,
	NutrientVitaminB2, NutrientVitaminB3, NutrientVitaminB5,
	NutrientVitaminB6, NutrientVitaminB12, NutrientVitaminC,
	NutrientVitaminD, NutrientVitaminE, NutrientVitaminK, NutrientFolate,
	NutrientCalcium, NutrientIron, NutrientMagnesium, NutrientPhosphorus,
	NutrientPotassium, NutrientZinc, NutrientCopper, NutrientManganese,
	NutrientSelenium, NutrientIodine, NutrientChromium, NutrientMolybdenum,
	NutrientOmega3, NutrientOmega6, NutrientWater, NutrientAsh,
}

// NutrientProfile holds the per-serving nutrient values of a food or a logged
// meal. Calories stays a string because the source data may carry a
// "low-high" range estimate instead of a point value; every other field is a
// plain amount in the unit the column has always used (g, mg, mcg or IU).
type NutrientProfile struct {
	Calories     string  `json:"calories"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbs        float64 `json:"carbs"`
	Fiber        float64 `json:"fiber"`
	Sodium       float64 `json:"sodium"`
	Cholesterol  float64 `json:"cholesterol"`
	Sugar        float64 `json:"sugar"`
	SaturatedFat float64 `json:"saturated_fat"`
	VitaminA     float64 `json:"vitamin_a"`
	VitaminB1    float64 `json:"vitamin_b1"`
	VitaminB2    float64 `json:"vitamin_b2"`
	VitaminB3    float64 `json:"vitamin_b3"`
	VitaminB5    float64 `json:"vitamin_b5"`
	VitaminB6    float64 `json:"vitamin_b6"`
	VitaminB12   float64 `json:"vitamin_b12"`
	VitaminC     float64 `json:"vitamin_c"`
	VitaminD     float64 `json:"vitamin_d"`
	VitaminE     float64 `json:"vitamin_e"`
	VitaminK     float64 `json:"vitamin_k"`
	Folate       float64 `json:"folate"`
	Calcium      float64 `json:"calcium"`
	Iron         float64 `json:"iron"`
	Magnesium    float64 `json:"magnesium"`
	Phosphorus   float64 `json:"phosphorus"`
	Potassium    float64 `json:"potassium"`
	Zinc         float64 `json:"zinc"`
	Copper       float64 `json:"copper"`
	Manganese    float64 `json:"manganese"`
	Selenium     float64 `json:"selenium"`
	Iodine       float64 `json:"iodine"`
	Chromium     float64 `json:"chromium"`
	Molybdenum   float64 `json:"molybdenum"`
	Omega3       float64 `json:"omega_3"`
	Omega6       float64 `json:"omega_6"`
	Water        float64 `json:"water"`
	Ash          float64 `json:"ash"`
}

// Value returns the numeric field for n. NutrientCalories is not addressable
// here (it is a string on the profile); it returns 0 and callers are expected
// to run the calorie field through the normalizer instead.
func (p *NutrientProfile) Value(n Nutrient) float64 {
	switch n {
	case NutrientProtein:
		return p.Protein
	case NutrientFat:
		return p.Fat
	case NutrientCarbs:
		return p.Carbs
	case NutrientFiber:
		return p.Fiber
	case NutrientSodium:
		return p.Sodium
	case NutrientCholesterol:
		return p.Cholesterol
	case NutrientSugar:
		return p.Sugar
	case NutrientSaturatedFat:
		return p.SaturatedFat
	case NutrientVitaminA:
		return p.VitaminA
	case NutrientVitaminB1:
		return p.VitaminB1
	case NutrientVitaminB2:
		return p.VitaminB2
	case NutrientVitaminB3:
		return p.VitaminB3
	case NutrientVitaminB5:
		return p.VitaminB5
	case NutrientVitaminB6:
		return p.VitaminB6
	case NutrientVitaminB12:
		return p.VitaminB12
	case NutrientVitaminC:
		return p.VitaminC
	case NutrientVitaminD:
		return p.VitaminD
	case NutrientVitaminE:
		return p.VitaminE
	case NutrientVitaminK:
		return p.VitaminK
	case NutrientFolate:
		return p.Folate
	case NutrientCalcium:
		return p.Calcium
	case NutrientIron:
		return p.Iron
	case NutrientMagnesium:
		return p.Magnesium
	case NutrientPhosphorus:
		return p.Phosphorus
	case NutrientPotassium:
		return p.Potassium
	case NutrientZinc:
		return p.Zinc
	case NutrientCopper:
		return p.Copper
	case NutrientManganese:
		return p.Manganese
	case NutrientSelenium:
		return p.Selenium
	case NutrientIodine:
		return p.Iodine
	case NutrientChromium:
		return p.Chromium
	case NutrientMolybdenum:
		return p.Molybdenum
	case NutrientOmega3:
		return p.Omega3
	case NutrientOmega6:
		return p.Omega6
	case NutrientWater:
		return p.Water
	case NutrientAsh:
		return p.Ash
	}
	return 0
}

// SetValue assigns the numeric field for n. NutrientCalories and unknown
// nutrients are ignored.
func (p *NutrientProfile) SetValue(n Nutrient, v float64) {
	switch n {
	case NutrientProtein:
		p.Protein = v
	case NutrientFat:
		p.Fat = v
	case NutrientCarbs:
		p.Carbs = v
	case NutrientFiber:
		p.Fiber = v
	case NutrientSodium:
		p.Sodium = v
	case NutrientCholesterol:
		p.Cholesterol = v
	case NutrientSugar:
		p.Sugar = v
	case NutrientSaturatedFat:
		p.SaturatedFat = v
	case NutrientVitaminA:
		p.VitaminA = v
	case NutrientVitaminB1:
		p.VitaminB1 = v
	case NutrientVitaminB2:
		p.VitaminB2 = v
	case NutrientVitaminB3:
		p.VitaminB3 = v
	case NutrientVitaminB5:
		p.VitaminB5 = v
	case NutrientVitaminB6:
		p.VitaminB6 = v
	case NutrientVitaminB12:
		p.VitaminB12 = v
	case NutrientVitaminC:
		p.VitaminC = v
	case NutrientVitaminD:
		p.VitaminD = v
	case NutrientVitaminE:
		p.VitaminE = v
	case NutrientVitaminK:
		p.VitaminK = v
	case NutrientFolate:
		p.Folate = v
	case NutrientCalcium:
		p.Calcium = v
	case NutrientIron:
		p.Iron = v
	case NutrientMagnesium:
		p.Magnesium = v
	case NutrientPhosphorus:
		p.Phosphorus = v
	case NutrientPotassium:
		p.Potassium = v
	case NutrientZinc:
		p.Zinc = v
	case NutrientCopper:
		p.Copper = v
	case NutrientManganese:
		p.Manganese = v
	case NutrientSelenium:
		p.Selenium = v
	case NutrientIodine:
		p.Iodine = v
	case NutrientChromium:
		p.Chromium = v
	case NutrientMolybdenum:
		p.Molybdenum = v
	case NutrientOmega3:
		p.Omega3 = v
	case NutrientOmega6:
		p.Omega6 = v
	case NutrientWater:
		p.Water = v
	case NutrientAsh:
		p.Ash = v
	}
}

// ScaleNumeric returns a copy of the profile with every numeric field
// multiplied by factor. The calorie string is copied unchanged; scaling it
// requires the normalizer and is done by the meal-logging service.
func (p NutrientProfile) ScaleNumeric(factor float64) NutrientProfile {
	scaled := NutrientProfile{Calories: p.Calories}
	for _, n := range AllNutrients {
		if n == NutrientCalories {
			continue
		}
		scaled.SetValue(n, p.Value(n)*factor)
	}
	return scaled
}
