package usecase

import (
	"math"
	"testing"
)

func TestParseCalorieValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain integer", input: "100", want: 100},
		{name: "plain decimal", input: "99.5", want: 99.5},
		{name: "surrounding whitespace", input: "  250  ", want: 250},
		{name: "range averages to midpoint", input: "450-500", want: 475},
		{name: "range with spaces around bounds", input: "450 - 550", want: 500},
		{name: "decimal range", input: "10.5-20.5", want: 15.5},
		{name: "empty string", input: "", want: 0},
		{name: "garbage text", input: "abc", want: 0},
		{name: "lone hyphen", input: "-", want: 0},
		{name: "half-broken range low", input: "-500", want: 0},
		{name: "half-broken range high", input: "450-", want: 0},
		{name: "range with garbage bound", input: "450-abc", want: 0},
		{name: "NaN literal rejected", input: "NaN", want: 0},
		{name: "Inf literal rejected", input: "Inf", want: 0},
		// More than one hyphen: split on every hyphen, first two segments
		// only. A negative low bound leaves an empty first segment.
		{name: "negative low bound discards range", input: "-50-100", want: 0},
		{name: "triple range uses first two bounds", input: "100-200-300", want: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCalorieValue(tt.input)
			if got != tt.want {
				t.Errorf("ParseCalorieValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCalorieNumber(t *testing.T) {
	t.Run("passes finite values through", func(t *testing.T) {
		if got := NormalizeCalorieNumber(321.5); got != 321.5 {
			t.Errorf("NormalizeCalorieNumber(321.5) = %v, want 321.5", got)
		}
	})

	t.Run("passes negative values through unchanged", func(t *testing.T) {
		if got := NormalizeCalorieNumber(-10); got != -10 {
			t.Errorf("NormalizeCalorieNumber(-10) = %v, want -10", got)
		}
	})

	t.Run("NaN becomes zero", func(t *testing.T) {
		if got := NormalizeCalorieNumber(math.NaN()); got != 0 {
			t.Errorf("NormalizeCalorieNumber(NaN) = %v, want 0", got)
		}
	})

	t.Run("infinity becomes zero", func(t *testing.T) {
		if got := NormalizeCalorieNumber(math.Inf(1)); got != 0 {
			t.Errorf("NormalizeCalorieNumber(+Inf) = %v, want 0", got)
		}
		if got := NormalizeCalorieNumber(math.Inf(-1)); got != 0 {
			t.Errorf("NormalizeCalorieNumber(-Inf) = %v, want 0", got)
		}
	})
}

func TestFormatCalorieValue(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{input: 800, want: "800"},
		{input: 712.5, want: "712.5"},
		{input: 0, want: "0"},
	}

	for _, tt := range tests {
		if got := FormatCalorieValue(tt.input); got != tt.want {
			t.Errorf("FormatCalorieValue(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
