package domain

import "testing"

func TestDefaultTargets(t *testing.T) {
	targets := DefaultTargets()

	t.Run("upper-bound nutrients are limit kind", func(t *testing.T) {
		for _, n := range []Nutrient{NutrientSodium, NutrientSugar, NutrientSaturatedFat, NutrientCholesterol} {
			target, ok := targets[n]
			if !ok {
				t.Errorf("missing target for %s", n)
				continue
			}
			if target.Kind != KindLimit {
				t.Errorf("%s kind = %s, want limit", n, target.Kind)
			}
		}
	})

	t.Run("water and ash carry no target", func(t *testing.T) {
		for _, n := range []Nutrient{NutrientWater, NutrientAsh} {
			if _, ok := targets[n]; ok {
				t.Errorf("%s should not have a target", n)
			}
		}
	})

	t.Run("every target value is positive", func(t *testing.T) {
		for n, target := range targets {
			if target.Value <= 0 {
				t.Errorf("%s target = %v, want positive", n, target.Value)
			}
		}
	})

	t.Run("covers every nutrient except water and ash", func(t *testing.T) {
		if len(targets) != len(AllNutrients)-2 {
			t.Errorf("len(targets) = %d, want %d", len(targets), len(AllNutrients)-2)
		}
	})
}
