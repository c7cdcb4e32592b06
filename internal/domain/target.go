package domain

// TargetKind says how a nutrient's daily figure is judged: against a desired
// target (too little and too much are both penalized) or against an upper
// limit (only excess is penalized).
type TargetKind string

const (
	KindNormal TargetKind = "normal"
	KindLimit  TargetKind = "limit"
)

// Band is the qualitative verdict for an aggregate value relative to its
// target.
type Band string

const (
	// Limit-kind bands.
	BandWellBelowLimit   Band = "WELL_BELOW_LIMIT"
	BandOptimal          Band = "OPTIMAL"
	BandApproachingLimit Band = "APPROACHING_LIMIT"
	BandLimitExceeded    Band = "LIMIT_EXCEEDED"

	// Normal-kind bands.
	BandDangerouslyHigh Band = "DANGEROUSLY_HIGH"
	BandTooHigh         Band = "TOO_HIGH"
	BandTargetAchieved  Band = "TARGET_ACHIEVED"
	BandBelowOptimal    Band = "BELOW_OPTIMAL"
	BandCriticalLow     Band = "CRITICAL_LOW"
)

// Target is one entry of the target table. Value must be positive; that is a
// precondition owned by whoever builds the table, not checked by the
// classifier.
type Target struct {
	Value float64    `json:"value"`
	Kind  TargetKind `json:"kind"`
}

// TargetTable maps nutrients to their daily target or limit. Callers pass the
// table explicitly; there is no process-wide mutable instance.
type TargetTable map[Nutrient]Target

// DefaultTargets returns the built-in daily target table. Water and ash are
// tracked in profiles but carry no target, so they never get a band.
func DefaultTargets() TargetTable {
	return TargetTable{
		NutrientCalories:     {Value: 1600, Kind: KindNormal},
		NutrientProtein:      {Value: 110, Kind: KindNormal},
		NutrientFat:          {Value: 45, Kind: KindNormal},
		NutrientSaturatedFat: {Value: 15, Kind: KindLimit},
		NutrientCarbs:        {Value: 160, Kind: KindNormal},
		NutrientFiber:        {Value: 30, Kind: KindNormal},
		NutrientSugar:        {Value: 20, Kind: KindLimit},
		NutrientOmega3:       {Value: 1.2, Kind: KindNormal},
		NutrientOmega6:       {Value: 7, Kind: KindNormal},
		NutrientSodium:       {Value: 1800, Kind: KindLimit},
		NutrientPotassium:    {Value: 3500, Kind: KindNormal},
		NutrientCalcium:      {Value: 1000, Kind: KindNormal},
		NutrientMagnesium:    {Value: 350, Kind: KindNormal},
		NutrientPhosphorus:   {Value: 800, Kind: KindNormal},
		NutrientIron:         {Value: 12, Kind: KindNormal},
		NutrientZinc:         {Value: 12, Kind: KindNormal},
		NutrientCopper:       {Value: 1, Kind: KindNormal},
		NutrientManganese:    {Value: 2.5, Kind: KindNormal},
		NutrientSelenium:     {Value: 55, Kind: KindNormal},
		NutrientIodine:       {Value: 150, Kind: KindNormal},
		NutrientChromium:     {Value: 35, Kind: KindNormal},
		NutrientMolybdenum:   {Value: 45, Kind: KindNormal},
		NutrientVitaminA:     {Value: 900, Kind: KindNormal},
		NutrientVitaminB1:    {Value: 1.2, Kind: KindNormal},
		NutrientVitaminB2:    {Value: 1.3, Kind: KindNormal},
		NutrientVitaminB3:    {Value: 16, Kind: KindNormal},
		NutrientVitaminB5:    {Value: 5, Kind: KindNormal},
		NutrientVitaminB6:    {Value: 1.5, Kind: KindNormal},
		NutrientVitaminB12:   {Value: 2.4, Kind: KindNormal},
		NutrientFolate:       {Value: 400, Kind: KindNormal},
		NutrientVitaminC:     {Value: 90, Kind: KindNormal},
		NutrientVitaminD:     {Value: 600, Kind: KindNormal},
		NutrientVitaminE:     {Value: 15, Kind: KindNormal},
		NutrientVitaminK:     {Value: 120, Kind: KindNormal},
		NutrientCholesterol:  {Value: 250, Kind: KindLimit},
	}
}
