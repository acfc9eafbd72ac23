package views

import (
	"testing"

	"riskmap/pkg/models"
)

func TestTopCountryPicksMaximum(t *testing.T) {
	counts := []models.CountryCount{
		{Country: "Mali", Count: 3},
		{Country: "Syria", Count: 9},
		{Country: "Yemen", Count: 4},
	}

	top, ok := TopCountry(counts)
	if !ok || top != "Syria" {
		t.Fatalf("expected Syria, got %q ok=%v", top, ok)
	}
}

func TestTopCountryTieBreaksAlphabetically(t *testing.T) {
	counts := []models.CountryCount{
		{Country: "Zambia", Count: 5},
		{Country: "Angola", Count: 5},
		{Country: "Mali", Count: 5},
	}

	top, ok := TopCountry(counts)
	if !ok || top != "Angola" {
		t.Fatalf("expected alphabetical winner Angola, got %q ok=%v", top, ok)
	}

	// Same result regardless of aggregate order.
	reversed := []models.CountryCount{counts[2], counts[0], counts[1]}
	top2, _ := TopCountry(reversed)
	if top2 != top {
		t.Fatalf("tie-break depends on input order: %q vs %q", top, top2)
	}
}

func TestTopCountryEmptyAggregate(t *testing.T) {
	if top, ok := TopCountry(nil); ok || top != "" {
		t.Fatalf("expected no insight for empty aggregate, got %q ok=%v", top, ok)
	}
}
