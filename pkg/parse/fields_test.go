package parse

import (
	"math"
	"testing"
)

func TestRevenue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"crore with estimate suffix", "~₹600 Cr (2024 est.)", 600},
		{"plain crore", "₹1,262 Cr", 1262},
		{"lowercase cr", "₹370 cr", 370},
		{"usd converted at fixed rate", "$500", 500 * USDToCrore},
		{"bare number", "9335", 9335},
		{"no digits", "N/A", 0},
		{"first numeric match wins", "N/A (B2B)", 2},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Revenue(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Revenue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"20+ ingredients", 20},
		{"500+ products", 500},
		{"about 12", 12},
		{"unknown", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := Count(tt.input); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"+10% YoY (simulated)", 10},
		{"-2.4% YoY", -2.4},
		{"5.5% annual", 5.5},
		{"flat", 0},
		{"10 percent", 0},
	}

	for _, tt := range tests {
		if got := Growth(tt.input); got != tt.want {
			t.Errorf("Growth(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPatents(t *testing.T) {
	if got := Patents("30+ global patents"); got != 30 {
		t.Errorf("Patents = %d, want 30", got)
	}
	if got := Patents("none filed"); got != 0 {
		t.Errorf("Patents = %d, want 0", got)
	}
}

func TestApprovalCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"US FDA, FSSAI, EU Novel Food, GRAS", 4},
		{"FSSAI", 1},
		{"", 0},
		{"   ", 0},
	}

	for _, tt := range tests {
		if got := ApprovalCount(tt.input); got != tt.want {
			t.Errorf("ApprovalCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// Parsers never fail on digitless input, they degrade to zero.
func TestDigitlessInputsReturnZero(t *testing.T) {
	inputs := []string{"", "n/a", "TBD", "—", "confidential", "₹ Cr", "$"}
	for _, in := range inputs {
		if got := Revenue(in); got != 0 {
			t.Errorf("Revenue(%q) = %v, want 0", in, got)
		}
		if got := Count(in); got != 0 {
			t.Errorf("Count(%q) = %v, want 0", in, got)
		}
		if got := Growth(in); got != 0 {
			t.Errorf("Growth(%q) = %v, want 0", in, got)
		}
	}
}
